// SPDX-License-Identifier: MIT
package dmatrix

import "github.com/katalvlaran/dualcone/numeric"

// Dense is a dense, row-major matrix of T. Rows are independent slices
// (not one flat backing array) so that row insert/erase/take/swap move
// row slice headers rather than copying O(cols) elements per row — the same
// shape as the
// original Matrix<T>'s array-of-row-pointers.
type Dense[T numeric.Value] struct {
	rows [][]T
	cols int
}

// NewDense allocates an nrows x ncols matrix filled with fill.
//
// Complexity: O(nrows*ncols).
func NewDense[T numeric.Value](nrows, ncols int, fill T) (*Dense[T], error) {
	if nrows < 0 || ncols < 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Dense[T]{rows: make([][]T, nrows), cols: ncols}
	for i := range m.rows {
		row := make([]T, ncols)
		if fill != 0 {
			for j := range row {
				row[j] = fill
			}
		}
		m.rows[i] = row
	}
	return m, nil
}

// NewDenseFromRows builds a Dense by taking ownership of rows directly
// (no copy); every row must have the same length.
func NewDenseFromRows[T numeric.Value](rows [][]T) (*Dense[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for _, r := range rows {
		if len(r) != cols {
			return nil, ErrInvalidDimensions
		}
	}
	return &Dense[T]{rows: rows, cols: cols}, nil
}

// NRows returns the number of rows.
// Complexity: O(1).
func (m *Dense[T]) NRows() int { return len(m.rows) }

// NCols returns the number of columns.
// Complexity: O(1).
func (m *Dense[T]) NCols() int { return m.cols }

// Row returns a live, mutable view of row i. Callers on the hot path
// (gauss, ddm, fme) index this directly instead of going through At/Set.
//
// Complexity: O(1).
func (m *Dense[T]) Row(i int) []T { return m.rows[i] }

// At returns the bounds-checked element at (i, j).
// Complexity: O(1).
func (m *Dense[T]) At(i, j int) (T, error) {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return m.rows[i][j], nil
}

// Set assigns v at the bounds-checked position (i, j).
// Complexity: O(1).
func (m *Dense[T]) Set(i, j int, v T) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		return ErrIndexOutOfBounds
	}
	m.rows[i][j] = v
	return nil
}

// Clone returns a deep copy of m.
// Complexity: O(nrows*ncols).
func (m *Dense[T]) Clone() *Dense[T] {
	out := &Dense[T]{rows: make([][]T, len(m.rows)), cols: m.cols}
	for i, row := range m.rows {
		out.rows[i] = append([]T(nil), row...)
	}
	return out
}

// AssignEye resets m to the n x n identity matrix, discarding prior
// contents. Used by Gaussian elimination to seed the row-transform
// accumulator F.
//
// Complexity: O(n^2).
func (m *Dense[T]) AssignEye(n int) {
	m.rows = make([][]T, n)
	m.cols = n
	for i := range m.rows {
		row := make([]T, n)
		row[i] = 1
		m.rows[i] = row
	}
}

// Resize discards the current contents and allocates a fresh nrows x ncols
// zero matrix.
//
// Complexity: O(nrows*ncols).
func (m *Dense[T]) Resize(nrows, ncols int) error {
	if nrows < 0 || ncols < 0 {
		return ErrInvalidDimensions
	}
	m.rows = make([][]T, nrows)
	m.cols = ncols
	for i := range m.rows {
		m.rows[i] = make([]T, ncols)
	}
	return nil
}
