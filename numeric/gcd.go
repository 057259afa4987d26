// SPDX-License-Identifier: MIT
package numeric

// Gcd returns the (non-negative) greatest common divisor of a and b, with
// the conventions the elimination and DDM engines rely on for canonical
// form: Gcd(0, 0) == 1 (so dividing a zero vector by its gcd is a no-op),
// and Gcd(x, 0) == |x|.
//
// Complexity: O(log(min(|a|, |b|))) via the Euclidean algorithm.
func Gcd[T Value](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a == 0 && b == 0 {
		return 1
	}
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	for {
		r := a - (a/b)*b
		if r == 0 {
			return b
		}
		a, b = b, r
	}
}

// GcdVector returns the gcd of every element of v, using the first nonzero
// element (by absolute value) as the seed and short-circuiting once the
// running gcd reaches 1. An all-zero vector returns 1, matching Gcd(0, 0).
//
// Complexity: O(len(v)) in the worst case, often less thanks to the
// short-circuit.
func GcdVector[T Value](v []T) T {
	var delta T = 1
	i := 0
	for ; i < len(v); i++ {
		if v[i] != 0 {
			delta = v[i]
			if delta < 0 {
				delta = -delta
			}
			break
		}
	}
	for i++; i < len(v); i++ {
		if v[i] != 0 {
			delta = Gcd(delta, v[i])
			if delta == 1 {
				break
			}
		}
	}
	return delta
}
