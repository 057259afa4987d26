// SPDX-License-Identifier: MIT
package gauss_test

import (
	"testing"

	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/katalvlaran/dualcone/gauss"
	"github.com/katalvlaran/dualcone/numeric"
	"github.com/stretchr/testify/require"
)

func TestEliminateFullRankIntegerIsUntouched(t *testing.T) {
	a, err := dmatrix.NewDenseFromRows([][]int64{{3, 0}, {0, 1}})
	require.NoError(t, err)

	res, err := gauss.Eliminate(a, 2, true, numeric.NewTolerance[int64](0))
	require.NoError(t, err)

	require.Equal(t, 2, res.Rank)
	require.Equal(t, 0, res.Bas.NRows())
	require.Equal(t, []int{0, 1}, res.Perm)
	require.Equal(t, []int64{1, 0}, res.F.Row(0))
	require.Equal(t, []int64{0, 1}, res.F.Row(1))
}

func TestEliminateRedundantRowExactArithmetic(t *testing.T) {
	// Row 1 is 2x row 0, so transpose(a) is rank-deficient: the second row
	// collapses to zero after one pivot step and is diverted into Bas.
	a, err := dmatrix.NewDenseFromRows([][]int64{{1, 2}, {2, 4}})
	require.NoError(t, err)

	res, err := gauss.Eliminate(a, 2, true, numeric.NewTolerance[int64](0))
	require.NoError(t, err)

	require.Equal(t, 1, res.Rank)
	require.Equal(t, []int{1, 0}, res.Perm)
	require.Equal(t, 1, res.F.NRows())
	require.Equal(t, []int64{1, 0}, res.F.Row(0))
	require.Equal(t, 1, res.Bas.NRows())
	require.Equal(t, []int64{-2, 1}, res.Bas.Row(0))
}

func TestEliminateFloatingPointDivision(t *testing.T) {
	a, err := dmatrix.NewDenseFromRows([][]float64{{3, 0}, {0, 1}})
	require.NoError(t, err)

	res, err := gauss.Eliminate(a, 2, false, numeric.NewTolerance(1e-9))
	require.NoError(t, err)

	require.Equal(t, 2, res.Rank)
	require.Equal(t, 0, res.Bas.NRows())
	require.InDelta(t, 1.0/3.0, res.F.Row(0)[0], 1e-12)
	require.InDelta(t, 0.0, res.F.Row(0)[1], 1e-12)
	require.InDelta(t, 1.0, res.F.Row(1)[1], 1e-12)
}

func TestEliminateRejectsOutOfRangeMaxBas(t *testing.T) {
	a, err := dmatrix.NewDenseFromRows([][]int64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	_, err = gauss.Eliminate(a, 3, true, numeric.NewTolerance[int64](0))
	require.ErrorIs(t, err, gauss.ErrMaxBasOutOfRange)
}

func TestEliminateRankPlusBasEqualsColumnCount(t *testing.T) {
	a, err := dmatrix.NewDenseFromRows([][]int64{{1, 2, 3}, {2, 4, 6}, {1, 0, 0}})
	require.NoError(t, err)

	res, err := gauss.Eliminate(a, 3, true, numeric.NewTolerance[int64](0))
	require.NoError(t, err)
	require.Equal(t, 3, res.Rank+res.Bas.NRows())
	require.Equal(t, res.Rank, res.F.NRows())
}
