// SPDX-License-Identifier: MIT

// Package numeric provides the polymorphic coefficient type shared by the
// dense matrix, the small-set representations, Gaussian elimination, and
// the two combinatorial engines (DDM and FME).
//
// A single Go generic parameter T, constrained by Value, stands in for the
// "signed machine integer / 32-bit float / 64-bit float" family described
// in the specification: every algorithm in this module is written once,
// against T, and monomorphized by the caller (int64, float32 or float64).
//
// Comparisons against zero always go through Tolerance: integers compare
// exactly (epsilon 0), floats compare against a caller-supplied epsilon.
// Integer vectors are kept in canonical form — divided through by the
// positive gcd of their components — after every construction; float
// vectors are divided by their largest-magnitude component instead.
package numeric
