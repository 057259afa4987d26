// SPDX-License-Identifier: MIT
package dmatrix

import "github.com/katalvlaran/dualcone/numeric"

// InsertRow inserts a copy of row at position i, shifting rows i.. down by
// one. If row is nil the new row is zero-filled. Mirrors
// Utils::Matrix::insert_row.
//
// Complexity: O(nrows + ncols).
func (m *Dense[T]) InsertRow(i int, row []T) error {
	if i < 0 || i > len(m.rows) {
		return ErrIndexOutOfBounds
	}
	newRow := make([]T, m.cols)
	if row != nil {
		if len(row) != m.cols {
			return ErrInvalidDimensions
		}
		copy(newRow, row)
	}
	m.rows = append(m.rows, nil)
	copy(m.rows[i+1:], m.rows[i:])
	m.rows[i] = newRow
	return nil
}

// EraseRow removes row i, shifting later rows up by one.
//
// Complexity: O(nrows).
func (m *Dense[T]) EraseRow(i int) error {
	if i < 0 || i >= len(m.rows) {
		return ErrIndexOutOfBounds
	}
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return nil
}

// TakeRow removes row i and returns it, transferring ownership to the
// caller. Used when the null-space basis (Bas) claims a zero row out of
// the working matrix during Gaussian elimination.
//
// Complexity: O(nrows).
func (m *Dense[T]) TakeRow(i int) ([]T, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, ErrIndexOutOfBounds
	}
	row := m.rows[i]
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return row, nil
}

// SwapRows exchanges rows i and j in place (a pointer swap, not a copy).
//
// Complexity: O(1).
func (m *Dense[T]) SwapRows(i, j int) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= len(m.rows) {
		return ErrIndexOutOfBounds
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]
	return nil
}

// SwapCols exchanges columns i and j across every row.
//
// Complexity: O(nrows).
func (m *Dense[T]) SwapCols(i, j int) error {
	if i < 0 || i >= m.cols || j < 0 || j >= m.cols {
		return ErrIndexOutOfBounds
	}
	for _, row := range m.rows {
		row[i], row[j] = row[j], row[i]
	}
	return nil
}

// MultRow scales row i in place by alpha.
//
// Complexity: O(ncols).
func (m *Dense[T]) MultRow(i int, alpha T) error {
	if i < 0 || i >= len(m.rows) {
		return ErrIndexOutOfBounds
	}
	row := m.rows[i]
	for k := range row {
		row[k] *= alpha
	}
	return nil
}

// DivRow divides row i in place by alpha.
//
// Complexity: O(ncols).
func (m *Dense[T]) DivRow(i int, alpha T) error {
	if i < 0 || i >= len(m.rows) {
		return ErrIndexOutOfBounds
	}
	row := m.rows[i]
	for k := range row {
		row[k] /= alpha
	}
	return nil
}

// AddMultRows performs row[i] += alpha * row[j].
//
// Complexity: O(ncols).
func (m *Dense[T]) AddMultRows(i, j int, alpha T) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= len(m.rows) {
		return ErrIndexOutOfBounds
	}
	dst, src := m.rows[i], m.rows[j]
	for k := range dst {
		dst[k] += src[k] * alpha
	}
	return nil
}

// Transpose returns a new matrix that is the transpose of m.
//
// Complexity: O(nrows*ncols).
func Transpose[T numeric.Value](m *Dense[T]) *Dense[T] {
	out, _ := NewDense[T](m.cols, len(m.rows), 0)
	for i, row := range m.rows {
		for j, v := range row {
			out.rows[j][i] = v
		}
	}
	return out
}

// Multiply returns a*b. a's column count must equal b's row count.
//
// Complexity: O(a.NRows() * a.NCols() * b.NCols()).
func Multiply[T numeric.Value](a, b *Dense[T]) (*Dense[T], error) {
	if a.NCols() != b.NRows() {
		return nil, ErrInvalidDimensions
	}
	out, _ := NewDense[T](a.NRows(), b.NCols(), 0)
	for i := 0; i < a.NRows(); i++ {
		for k := 0; k < a.NCols(); k++ {
			aik := a.rows[i][k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.NCols(); j++ {
				out.rows[i][j] += aik * b.rows[k][j]
			}
		}
	}
	return out, nil
}
