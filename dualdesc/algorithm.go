// SPDX-License-Identifier: MIT
package dualdesc

import (
	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/katalvlaran/dualcone/fme"
	"github.com/katalvlaran/dualcone/gauss"
	"github.com/katalvlaran/dualcone/numeric"
)

// ViaElimination computes the extreme rays of { x : A x >= 0 } by
// Fourier-Motzkin elimination rather than DDM pivoting.
//
// Grounded on prepareDoubleDescriptionInput/-Output in
// original_source/src/eliminationUI/main.cpp: introduce y with
// x = Aᵀy, y >= 0; the system (Aᵀ | -E)(y;x) = 0, y >= 0 has d equality
// rows. Gaussian elimination on that system (restricted to pivot among
// the y-columns) finds an invertible r x d block B of Aᵀ's columns;
// substituting yB = -B⁻¹N yN + B⁻¹x turns the r equalities into r
// inequalities on the remaining variables, to which the non-basic y's
// >= 0 constraints are added. FME eliminates every surviving y, and the
// last d columns of what remains are the extreme ray coordinates. The
// null-space basis found along the way is placed ahead of those rays as
// sign-flipped inequality pairs, exactly as ddm.Run's finalize does.
func ViaElimination[T numeric.Value](a *dmatrix.Dense[T], opts ...fme.Option) (*dmatrix.Dense[T], error) {
	m := a.NRows()
	if m == 0 {
		return nil, ErrEmptyInput
	}
	dim := a.NCols()
	intArith := !numeric.IsFloat[T]()
	tol := numeric.NewTolerance[T](0)

	equations, err := dmatrix.NewDense[T](dim, m+dim, 0)
	if err != nil {
		return nil, err
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < m; j++ {
			_ = equations.Set(i, j, a.Row(j)[i])
		}
		_ = equations.Set(i, m+i, -T(1))
	}

	ta := dmatrix.Transpose(equations)
	gaussResult, err := gauss.Eliminate(ta, m, intArith, tol)
	if err != nil {
		return nil, err
	}
	invB := gaussResult.F
	bas := gaussResult.Bas
	rank := gaussResult.Rank
	yB := append([]int(nil), gaussResult.Perm[:rank]...)

	extended, err := dmatrix.Multiply(invB, equations)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rank; i++ {
		v, _ := extended.At(i, yB[i])
		if v > 0 {
			_ = extended.MultRow(i, -T(1))
		}
	}
	isBasic := make(map[int]bool, rank)
	for _, v := range yB {
		isBasic[v] = true
	}
	for i := 0; i < m; i++ {
		if isBasic[i] {
			continue
		}
		row := make([]T, m+dim)
		row[i] = 1
		if err := extended.InsertRow(extended.NRows(), row); err != nil {
			return nil, err
		}
	}

	byVariable := dmatrix.Transpose(extended)
	descendingYB := append([]int(nil), yB...)
	sortDescending(descendingYB)
	for _, idx := range descendingYB {
		if err := byVariable.EraseRow(idx); err != nil {
			return nil, err
		}
	}
	ineqs := dmatrix.Transpose(byVariable)

	eliminationVars := make([]int, ineqs.NCols()-dim)
	for i := range eliminationVars {
		eliminationVars[i] = i
	}
	fmeResult, _, err := fme.Eliminate(ineqs, eliminationVars, opts...)
	if err != nil {
		return nil, err
	}
	shift := fmeResult.NCols() - dim

	rows := make([][]T, 0, 2*bas.NRows()+fmeResult.NRows())
	for i := 0; i < bas.NRows(); i++ {
		row := bas.Row(i)
		negated := make([]T, len(row))
		for j, v := range row {
			negated[j] = -v
		}
		rows = append(rows, append([]T(nil), row...), negated)
	}
	for i := 0; i < fmeResult.NRows(); i++ {
		rows = append(rows, append([]T(nil), fmeResult.Row(i)[shift:]...))
	}
	return dmatrix.NewDenseFromRows(rows)
}

func sortDescending(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] < s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
