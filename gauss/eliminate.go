// SPDX-License-Identifier: MIT
package gauss

import (
	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/katalvlaran/dualcone/numeric"
)

// Result carries the outputs of Eliminate: F·Aᵀ·P has its first Rank rows
// forming an echelon (diagonal-dominant) block; Bas holds the pre-images
// (rows of the original F) of the rows that turned out to be zero, i.e. a
// basis of the null space of Aᵀ. Perm is the column permutation P applied
// to Aᵀ (equivalently, the row permutation of A).
type Result[T numeric.Value] struct {
	F    *dmatrix.Dense[T]
	Bas  *dmatrix.Dense[T]
	Rank int
	Perm []int
}

// Eliminate simplifies transpose(a) to an echelon form by elementary row
// transforms and column permutation restricted to columns 0..maxBas-1,
// tracking the accumulated transform in F and diverting zero rows into Bas.
//
// intArith selects the numeric mode: true performs gcd-normalized,
// division-free row combinations (exact for integer T); false divides
// directly by the pivot, comparing magnitudes against tol.Epsilon to decide
// whether a row has gone to zero.
//
// Complexity: O(min(m,n) * (m*n)) — grounded on
// original_source/src/utils/GaussianElimination.hpp.
func Eliminate[T numeric.Value](a *dmatrix.Dense[T], maxBas int, intArith bool, tol numeric.Tolerance[T]) (*Result[T], error) {
	m := a.NRows()
	n := a.NCols()
	if maxBas < 0 || maxBas > m {
		return nil, ErrMaxBasOutOfRange
	}

	q := dmatrix.Transpose(a) // n x m
	f, _ := dmatrix.NewDense[T](0, 0, 0)
	f.AssignEye(n)
	bas, _ := dmatrix.NewDense[T](0, n, 0)
	perm := make([]int, m)
	for i := range perm {
		perm[i] = i
	}

	i := 0
	for i < minInt(q.NCols(), q.NRows()) {
		pivotAbs := absT(q.Row(i)[i])
		jPivot := i
		for j := i + 1; j < maxBas; j++ {
			v := absT(q.Row(i)[j])
			if v > pivotAbs {
				jPivot = j
				pivotAbs = v
			}
		}

		if pivotAbs <= tol.Epsilon {
			_ = q.EraseRow(i)
			_ = bas.InsertRow(bas.NRows(), f.Row(i))
			_ = f.EraseRow(i)
			continue
		}

		if i != jPivot {
			_ = q.SwapCols(i, jPivot)
			perm[i], perm[jPivot] = perm[jPivot], perm[i]
		}

		if q.Row(i)[i] < 0 {
			negOne := -T(1)
			_ = q.MultRow(i, negOne)
			_ = f.MultRow(i, negOne)
		}

		if intArith {
			eliminateColumnExact(q, f, i)
		} else {
			eliminateColumnFP(q, f, i)
		}
		i++
	}

	rank := minInt(q.NCols(), q.NRows())
	for i := rank; i < q.NRows(); i++ {
		_ = bas.InsertRow(bas.NRows(), f.Row(rank))
		_ = f.EraseRow(rank)
	}

	return &Result[T]{F: f, Bas: bas, Rank: rank, Perm: perm}, nil
}

// eliminateColumnExact zeroes column i of q (and mirrors the same row
// combination into f) using gcd-normalized integer arithmetic, so no
// fractional pivot ever appears.
func eliminateColumnExact[T numeric.Value](q, f *dmatrix.Dense[T], i int) {
	b := q.Row(i)[i]
	for ii := 0; ii < q.NRows(); ii++ {
		if ii == i {
			continue
		}
		bII := q.Row(ii)[i]
		alpha := numeric.Gcd(b, bII)
		bI := b / alpha
		bII = -bII / alpha
		_ = q.MultRow(ii, bI)
		_ = q.AddMultRows(ii, i, bII)
		_ = f.MultRow(ii, bI)
		_ = f.AddMultRows(ii, i, bII)

		rowGcd := numeric.Gcd(numeric.GcdVector(q.Row(ii)), numeric.GcdVector(f.Row(ii)))
		if rowGcd > 1 {
			_ = q.DivRow(ii, rowGcd)
			_ = f.DivRow(ii, rowGcd)
		}
	}
}

// eliminateColumnFP zeroes column i of q by direct division, the
// floating-point counterpart of eliminateColumnExact.
func eliminateColumnFP[T numeric.Value](q, f *dmatrix.Dense[T], i int) {
	b := q.Row(i)[i]
	_ = q.DivRow(i, b)
	_ = f.DivRow(i, b)
	for ii := 0; ii < q.NRows(); ii++ {
		if ii == i {
			continue
		}
		bII := -q.Row(ii)[i]
		_ = q.AddMultRows(ii, i, bII)
		_ = f.AddMultRows(ii, i, bII)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absT[T numeric.Value](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
