// SPDX-License-Identifier: MIT
package numeric

import "golang.org/x/exp/constraints"

// Value is the coefficient type constraint shared by every package in this
// module. Instantiations used by the engines are int64 (exact integer
// arithmetic), and float32/float64 (IEEE arithmetic with tolerance).
type Value interface {
	constraints.Integer | constraints.Float
}

// IsFloat reports whether T is a floating-point instantiation of Value.
// The two arithmetic modes (§4.1 of the specification: "integer" vs.
// "floating-point") branch on this at a handful of call sites instead of
// carrying a redundant bool alongside T.
func IsFloat[T Value]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}
