// SPDX-License-Identifier: MIT
package ddm

import "errors"

var (
	// ErrUnknownParameter is returned when a CLI-facing enum token does not
	// match any known value.
	ErrUnknownParameter = errors.New("ddm: unknown parameter")
	// ErrDimensionMismatch names a column count that does not match a
	// declared ambient dimension. No function in this package returns it.
	ErrDimensionMismatch = errors.New("ddm: dimension mismatch")
	// ErrEmptyInput is returned when the input matrix has no rows.
	ErrEmptyInput = errors.New("ddm: input matrix has no rows")
	// ErrNoInitialRay is returned when Gaussian elimination cannot produce a
	// rank consistent with at least one non-degenerate initial ray.
	ErrNoInitialRay = errors.New("ddm: unable to construct initial simplex")
)
