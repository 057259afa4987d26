// SPDX-License-Identifier: MIT
package fme

import "errors"

// ErrUnknownParameter is returned by the Parse* functions when given a
// string that does not name a known enumerator.
var ErrUnknownParameter = errors.New("fme: unknown parameter value")

// ErrEmptyInput is returned by Eliminate when the input matrix has no rows.
var ErrEmptyInput = errors.New("fme: input matrix has no rows")

// ErrVariableOutOfRange is returned by Eliminate when a requested
// elimination variable index falls outside [0, dim).
var ErrVariableOutOfRange = errors.New("fme: elimination variable index out of range")

// ErrDuplicateVariable is returned by Eliminate when the same variable
// index appears more than once in the elimination list.
var ErrDuplicateVariable = errors.New("fme: duplicate elimination variable")
