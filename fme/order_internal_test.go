// SPDX-License-Identifier: MIT
package fme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewOrderStaticVariants(t *testing.T) {
	require.Equal(t, []int{0, 1, 2}, newOrder([]int{2, 0, 1}, MinIndex).variables)
	require.Equal(t, []int{2, 1, 0}, newOrder([]int{2, 0, 1}, MaxIndex).variables)
	require.Equal(t, []int{2, 0, 1}, newOrder([]int{2, 0, 1}, Fixed).variables)
}

// TestSelectNextMinMaxPairsPickTrueExtremum pins the sound reading of the
// unsound original MinPairs/MaxPairs orderings: MinPairs must pick the
// variable that truly minimizes numPlus(v)*numMinus(v), MaxPairs the one
// that truly maximizes it, not both driven by the same max-element scan.
//
// Column 0 has numPlus=2, numMinus=1 (product 2). Column 1 has numPlus=1,
// numMinus=0 (product 0).
func TestSelectNextMinMaxPairsPickTrueExtremum(t *testing.T) {
	ineqs := []*Inequality[int64]{
		{Normal: []int64{1, 1}},
		{Normal: []int64{1, 0}},
		{Normal: []int64{-1, 0}},
	}

	minOrder := newOrder([]int{0, 1}, MinPairs)
	got := selectNext(minOrder, ineqs, 0)
	require.Equal(t, 1, got, "MinPairs must pick the lower-product column")
	require.Equal(t, []int{1, 0}, minOrder.variables)

	maxOrder := newOrder([]int{0, 1}, MaxPairs)
	got = selectNext(maxOrder, ineqs, 0)
	require.Equal(t, 0, got, "MaxPairs must pick the higher-product column")
	require.Equal(t, []int{0, 1}, maxOrder.variables)
}

func TestSelectNextStaticIgnoresIneqs(t *testing.T) {
	o := newOrder([]int{2, 0, 1}, Fixed)
	require.Equal(t, 2, selectNext[int64](o, nil, 0))
	require.Equal(t, 0, selectNext[int64](o, nil, 1))
}
