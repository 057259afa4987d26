// SPDX-License-Identifier: MIT
package fme_test

import (
	"testing"

	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/katalvlaran/dualcone/fme"
	"github.com/stretchr/testify/require"
)

// TestEliminateNeitherResultRedundant eliminates x from
// { x+y>=0, x-y>=0, -x>=0 }, which yields y>=0 and -y>=0 (jointly
// equivalent to y=0); neither is redundant with respect to the other so
// both survive Chernikov pruning.
func TestEliminateNeitherResultRedundant(t *testing.T) {
	a, err := dmatrix.NewDenseFromRows([][]int64{
		{1, 1},
		{1, -1},
		{-1, 0},
	})
	require.NoError(t, err)

	result, summary, err := fme.Eliminate(a, []int{0}, fme.WithEliminationOrdering(fme.Fixed))
	require.NoError(t, err)
	require.Equal(t, 2, result.NRows())
	require.Equal(t, []int64{0, 1}, result.Row(0))
	require.Equal(t, []int64{0, -1}, result.Row(1))
	require.NotEmpty(t, summary.String())
}

func TestEliminateRejectsEmptyInput(t *testing.T) {
	a, err := dmatrix.NewDense[int64](0, 2, 0)
	require.NoError(t, err)

	_, _, err = fme.Eliminate(a, []int{0})
	require.ErrorIs(t, err, fme.ErrEmptyInput)
}

func TestEliminateRejectsOutOfRangeVariable(t *testing.T) {
	a, err := dmatrix.NewDenseFromRows([][]int64{{1, 0}})
	require.NoError(t, err)

	_, _, err = fme.Eliminate(a, []int{5})
	require.ErrorIs(t, err, fme.ErrVariableOutOfRange)
}

func TestEliminateRejectsDuplicateVariable(t *testing.T) {
	a, err := dmatrix.NewDenseFromRows([][]int64{{1, 0, 0}})
	require.NoError(t, err)

	_, _, err = fme.Eliminate(a, []int{0, 0})
	require.ErrorIs(t, err, fme.ErrDuplicateVariable)
}

// TestEliminateCarriesZeroRowAndCombination eliminates x from
// { x>=0, y>=0, -x+y>=0 }: y>=0 is already independent of x (a zero row,
// carried through unchanged) and the (x>=0, -x+y>=0) pair combines to
// y>=0 again under a different complementary index, so Chernikov pruning
// (index-subset, not value equality) leaves both copies standing.
func TestEliminateCarriesZeroRowAndCombination(t *testing.T) {
	a, err := dmatrix.NewDenseFromRows([][]int64{
		{1, 0},  // x >= 0
		{0, 1},  // y >= 0 (zero row w.r.t. x)
		{-1, 1}, // -x+y >= 0
	})
	require.NoError(t, err)

	result, _, err := fme.Eliminate(a, []int{0}, fme.WithEliminationOrdering(fme.Fixed))
	require.NoError(t, err)
	require.Equal(t, 2, result.NRows())
	require.Equal(t, []int64{0, 1}, result.Row(0))
	require.Equal(t, []int64{0, 1}, result.Row(1))
}
