// SPDX-License-Identifier: MIT
package dmatrix_test

import (
	"testing"

	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseFillAndAccess(t *testing.T) {
	m, err := dmatrix.NewDense[int64](2, 3, 0)
	require.NoError(t, err)
	require.Equal(t, 2, m.NRows())
	require.Equal(t, 3, m.NCols())

	require.NoError(t, m.Set(1, 2, 7))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(7), v)

	_, err = m.At(5, 0)
	require.ErrorIs(t, err, dmatrix.ErrIndexOutOfBounds)
}

func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := dmatrix.NewDense[int64](-1, 3, 0)
	require.ErrorIs(t, err, dmatrix.ErrInvalidDimensions)
}

func TestAssignEye(t *testing.T) {
	m, _ := dmatrix.NewDense[int64](1, 1, 0)
	m.AssignEye(3)
	require.Equal(t, 3, m.NRows())
	require.Equal(t, 3, m.NCols())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := m.At(i, j)
			if i == j {
				require.Equal(t, int64(1), v)
			} else {
				require.Equal(t, int64(0), v)
			}
		}
	}
}

func TestRowOps(t *testing.T) {
	m, _ := dmatrix.NewDenseFromRows([][]int64{{1, 2}, {3, 4}, {5, 6}})

	require.NoError(t, m.MultRow(0, 2))
	require.Equal(t, []int64{2, 4}, m.Row(0))

	require.NoError(t, m.DivRow(0, 2))
	require.Equal(t, []int64{1, 2}, m.Row(0))

	require.NoError(t, m.AddMultRows(1, 0, 10))
	require.Equal(t, []int64{13, 24}, m.Row(1))

	require.NoError(t, m.SwapRows(0, 2))
	require.Equal(t, []int64{5, 6}, m.Row(0))
	require.Equal(t, []int64{1, 2}, m.Row(2))

	require.NoError(t, m.SwapCols(0, 1))
	require.Equal(t, []int64{6, 5}, m.Row(0))

	require.NoError(t, m.InsertRow(1, []int64{9, 9}))
	require.Equal(t, 4, m.NRows())
	require.Equal(t, []int64{9, 9}, m.Row(1))

	taken, err := m.TakeRow(1)
	require.NoError(t, err)
	require.Equal(t, []int64{9, 9}, taken)
	require.Equal(t, 3, m.NRows())

	require.NoError(t, m.EraseRow(0))
	require.Equal(t, 2, m.NRows())
}

func TestTranspose(t *testing.T) {
	m, _ := dmatrix.NewDenseFromRows([][]int64{{1, 2, 3}, {4, 5, 6}})
	mt := dmatrix.Transpose(m)
	require.Equal(t, 3, mt.NRows())
	require.Equal(t, 2, mt.NCols())
	require.Equal(t, []int64{1, 4}, mt.Row(0))
	require.Equal(t, []int64{2, 5}, mt.Row(1))
	require.Equal(t, []int64{3, 6}, mt.Row(2))
}

func TestClone(t *testing.T) {
	m, _ := dmatrix.NewDenseFromRows([][]int64{{1, 2}})
	c := m.Clone()
	c.Row(0)[0] = 99
	require.Equal(t, int64(1), m.Row(0)[0])
}
