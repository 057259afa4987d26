// SPDX-License-Identifier: MIT
package numeric

// NormalizeInt divides every element of v by the gcd of the vector,
// keeping integer rays and inequalities in the canonical form the DDM and
// FME engines depend on for exact subset/equality tests.
//
// Complexity: O(len(v)).
func NormalizeInt[T Value](v []T) {
	delta := GcdVector(v)
	if delta == 0 {
		return
	}
	for i := range v {
		v[i] /= delta
	}
}

// NormalizeFP divides every element of v by the largest-magnitude element,
// the floating-point analogue of NormalizeInt.
//
// Complexity: O(len(v)).
func NormalizeFP[T Value](v []T) {
	if len(v) == 0 {
		return
	}
	maxAbs := abs(v[0])
	for _, x := range v[1:] {
		if a := abs(x); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		return
	}
	for i := range v {
		v[i] /= maxAbs
	}
}

// Normalize dispatches to NormalizeInt or NormalizeFP depending on T,
// giving the two engines a single call site regardless of arithmetic mode.
func Normalize[T Value](v []T) {
	if IsFloat[T]() {
		NormalizeFP(v)
	} else {
		NormalizeInt(v)
	}
}

func abs[T Value](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
