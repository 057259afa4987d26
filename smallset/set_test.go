// SPDX-License-Identifier: MIT
package smallset_test

import (
	"testing"

	"github.com/katalvlaran/dualcone/smallset"
	"github.com/stretchr/testify/require"
)

func allKinds() []smallset.Kind {
	return []smallset.Kind{
		smallset.KindBitField32, smallset.KindBitField64,
		smallset.KindBitField96, smallset.KindBitField128,
		smallset.KindVectorUint8, smallset.KindVectorUint16,
		smallset.KindVectorUint32, smallset.KindVectorUint64,
	}
}

func TestSetLaws(t *testing.T) {
	for _, kind := range allKinds() {
		t.Run(kindName(kind), func(t *testing.T) {
			a := smallset.New(kind, 8)
			b := smallset.New(kind, 8)
			for _, x := range []int{1, 3, 5, 7} {
				a.Add(x)
			}
			for _, x := range []int{3, 5} {
				b.Add(x)
			}

			require.Equal(t, 4, a.Size())
			require.Equal(t, 2, smallset.IntersectionSize(a, b))
			require.Equal(t, []int{3, 5}, smallset.Intersection(a, b).ToSlice())

			require.True(t, a.IsSubsetOf(a))
			require.True(t, b.IsSubsetOf(a))
			require.False(t, a.IsSubsetOf(b))

			require.Equal(t, []int{1, 3, 5, 7}, a.ToSlice())
		})
	}
}

func TestSetEquivalenceViaMutualSubset(t *testing.T) {
	a := smallset.New(smallset.KindBitField64, 4)
	b := smallset.New(smallset.KindBitField64, 4)
	for _, x := range []int{2, 4} {
		a.Add(x)
		b.Add(x)
	}
	require.True(t, a.IsSubsetOf(b))
	require.True(t, b.IsSubsetOf(a))
}

func TestChoose(t *testing.T) {
	require.Equal(t, smallset.KindBitField32, smallset.Choose(10, true))
	require.Equal(t, smallset.KindBitField128, smallset.Choose(128, true))
	require.Equal(t, smallset.KindVectorUint8, smallset.Choose(10, false))
	require.Equal(t, smallset.KindVectorUint8, smallset.Choose(129, false))
	require.Equal(t, smallset.KindVectorUint16, smallset.Choose(1000, false))
}

func TestCloneIsIndependent(t *testing.T) {
	a := smallset.New(smallset.KindVectorUint16, 4)
	a.Add(1)
	c := a.Clone()
	c.Add(2)
	require.Equal(t, 1, a.Size())
	require.Equal(t, 2, c.Size())
}

func kindName(k smallset.Kind) string {
	switch k {
	case smallset.KindBitField32:
		return "BitField32"
	case smallset.KindBitField64:
		return "BitField64"
	case smallset.KindBitField96:
		return "BitField96"
	case smallset.KindBitField128:
		return "BitField128"
	case smallset.KindVectorUint8:
		return "VectorUint8"
	case smallset.KindVectorUint16:
		return "VectorUint16"
	case smallset.KindVectorUint32:
		return "VectorUint32"
	default:
		return "VectorUint64"
	}
}
