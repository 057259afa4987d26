// SPDX-License-Identifier: MIT
package dmatrix

import "errors"

var (
	// ErrInvalidDimensions is returned when a requested row/column count is
	// negative, when rows passed to NewDenseFromRows or InsertRow have the
	// wrong length, or when Multiply's operand shapes do not agree.
	ErrInvalidDimensions = errors.New("dmatrix: dimensions must be >= 0")

	// ErrIndexOutOfBounds is returned by the bounds-checked accessors (At,
	// Set, row insert/erase/take/swap) when an index falls outside the
	// current shape.
	ErrIndexOutOfBounds = errors.New("dmatrix: index out of bounds")
)
