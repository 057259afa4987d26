// SPDX-License-Identifier: MIT
package ddm_test

import (
	"testing"

	"github.com/katalvlaran/dualcone/ddm"
	"github.com/stretchr/testify/require"
)

func TestPivotingOrderRoundTrip(t *testing.T) {
	for _, o := range []ddm.PivotingOrder{ddm.Quickhull, ddm.MinIndex, ddm.MaxIndex, ddm.LexMin, ddm.LexMax, ddm.Random} {
		parsed, err := ddm.ParsePivotingOrder(o.String())
		require.NoError(t, err)
		require.Equal(t, o, parsed)
	}
	require.True(t, ddm.MinIndex.IsStatic())
	require.False(t, ddm.Quickhull.IsStatic())
}

func TestAdjacencyTestRejectsAlgebraic(t *testing.T) {
	_, err := ddm.ParseAdjacencyTest("algebraic")
	require.ErrorIs(t, err, ddm.ErrUnknownParameter)

	for _, a := range []ddm.AdjacencyTest{ddm.Graph, ddm.Combinatoric} {
		parsed, err := ddm.ParseAdjacencyTest(a.String())
		require.NoError(t, err)
		require.Equal(t, a, parsed)
	}
}

func TestSetRepresentationRoundTrip(t *testing.T) {
	for _, r := range []ddm.SetRepresentation{ddm.SortedVector, ddm.BitField} {
		parsed, err := ddm.ParseSetRepresentation(r.String())
		require.NoError(t, err)
		require.Equal(t, r, parsed)
	}
	_, err := ddm.ParseSetRepresentation("nonsense")
	require.ErrorIs(t, err, ddm.ErrUnknownParameter)
}

func TestDefaultParamsAndOptions(t *testing.T) {
	p := ddm.DefaultParams()
	require.Equal(t, ddm.Quickhull, p.PivotingOrder)
	require.Equal(t, ddm.Combinatoric, p.AdjacencyTest)
	require.False(t, p.UsePlusPlus)

	ddm.WithPivotingOrder(ddm.LexMax)(&p)
	ddm.WithPlusPlus()(&p)
	require.Equal(t, ddm.LexMax, p.PivotingOrder)
	require.True(t, p.UsePlusPlus)
}
