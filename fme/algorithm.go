// SPDX-License-Identifier: MIT
package fme

import (
	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/katalvlaran/dualcone/numeric"
	"github.com/katalvlaran/dualcone/smallset"
)

// Eliminate removes every variable named in variables from the system
// `a x >= 0`, returning the surviving inequalities over the remaining
// variables. variables entries index columns of a and must be distinct.
//
// Grounded on Elimination.hpp's elimination()/EliminationAlgorithm::run:
// each inequality starts with a complementary index of every other row's
// index; at each step the current rows are classified by the sign of
// their coefficient on the chosen variable into plus/minus/zero, every
// (plus, minus) pair passing the first Chernikov rule is combined, and
// the second Chernikov rule discards combinations whose complementary
// index is a subset of some surviving row's (their ancestor set contains
// that row's, so they carry no more information than it does).
func Eliminate[T numeric.Value](a *dmatrix.Dense[T], variables []int, opts ...Option) (*dmatrix.Dense[T], *Summary, error) {
	if a.NRows() == 0 {
		return nil, nil, ErrEmptyInput
	}
	dim := a.NCols()
	seen := make(map[int]bool, len(variables))
	for _, v := range variables {
		if v < 0 || v >= dim {
			return nil, nil, ErrVariableOutOfRange
		}
		if seen[v] {
			return nil, nil, ErrDuplicateVariable
		}
		seen[v] = true
	}

	params := DefaultParams()
	for _, opt := range opts {
		opt(&params)
	}
	tol := numeric.NewTolerance[T](T(params.Epsilon))

	summary := &Summary{initialNumRows: a.NRows()}
	summary.Start()

	numOriginal := a.NRows()
	setKind := smallset.Choose(numOriginal, true)
	factory := NewInequalityFactory[T](dim, setKind)

	ineqs := make([]Handle, 0, numOriginal)
	for i := 0; i < numOriginal; i++ {
		h := factory.FromNormal(a.Row(i), numOriginal)
		ineq := factory.Arena.Get(h)
		for j := 0; j < numOriginal; j++ {
			if j != i {
				ineq.ComplementaryIndex.Add(j)
			}
		}
		ineqs = append(ineqs, h)
	}

	ord := newOrder(variables, params.EliminationOrdering)

	for step := 0; step < len(variables); step++ {
		normals := make([]*Inequality[T], len(ineqs))
		for i, h := range ineqs {
			normals[i] = factory.Arena.Get(h)
		}
		eliminated := selectNext(ord, normals, step)

		var plus, minus []Handle
		remaining := ineqs[:0]
		for _, h := range ineqs {
			ineq := factory.Arena.Get(h)
			switch tol.Sign(ineq.Normal[eliminated]) {
			case 1:
				plus = append(plus, h)
			case -1:
				minus = append(minus, h)
			default:
				remaining = append(remaining, h)
			}
		}
		ineqs = remaining
		numZero := len(ineqs)

		// Signed on purpose: once step+2 exceeds numOriginal this goes
		// negative and the 1st-rule test below is vacuously true, since
		// IntersectionSize is never negative. Unsigned arithmetic here
		// would wrap around instead and make the test spuriously fail.
		threshold := numOriginal - (step + 2)
		for _, plusH := range plus {
			startLen := len(ineqs)
			pIneq := factory.Arena.Get(plusH)
			for _, minusH := range minus {
				mIneq := factory.Arena.Get(minusH)
				if smallset.IntersectionSize(pIneq.ComplementaryIndex, mIneq.ComplementaryIndex) >= threshold {
					ineqs = append(ineqs, factory.FromCombination(plusH, minusH, eliminated))
					summary.addPairGenerated()
				}
			}
			if params.ChernikovTest == Graph {
				var pruned int
				ineqs, pruned = pruneRedundant(factory, ineqs, startLen, numZero)
				summary.numPairsPruned += pruned
			}
		}
		if params.ChernikovTest != Graph {
			var pruned int
			ineqs, pruned = pruneRedundant(factory, ineqs, numZero, numZero)
			summary.numPairsPruned += pruned
		}

		for _, h := range plus {
			factory.Free(h)
		}
		for _, h := range minus {
			factory.Free(h)
		}
		summary.addStep()
	}

	rows := make([][]T, len(ineqs))
	for i, h := range ineqs {
		rows[i] = append([]T(nil), factory.Arena.Get(h).Normal...)
	}
	result, err := dmatrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, nil, err
	}

	summary.finalNumRows = result.NRows()
	summary.Stop()
	return result, summary, nil
}

// pruneRedundant removes, from ineqs[start:], every inequality whose
// complementary index is a (non-strict) subset of a surviving row's: the
// first numZero entries of ineqs (rows carried unchanged from before this
// step) plus the other rows still kept in [start, len). It returns the
// surviving slice and how many were dropped.
func pruneRedundant[T numeric.Value](factory *InequalityFactory[T], ineqs []Handle, start, numZero int) ([]Handle, int) {
	dropped := 0
	for i := start; i < len(ineqs); {
		candidate := factory.Arena.Get(ineqs[i])
		redundant := false
		for j := 0; j < numZero && !redundant; j++ {
			if candidate.ComplementaryIndex.IsSubsetOf(factory.Arena.Get(ineqs[j]).ComplementaryIndex) {
				redundant = true
			}
		}
		for j := start; j < len(ineqs) && !redundant; j++ {
			if j == i {
				continue
			}
			if candidate.ComplementaryIndex.IsSubsetOf(factory.Arena.Get(ineqs[j]).ComplementaryIndex) {
				redundant = true
			}
		}
		if redundant {
			factory.Free(ineqs[i])
			ineqs = append(ineqs[:i], ineqs[i+1:]...)
			dropped++
			continue
		}
		i++
	}
	return ineqs, dropped
}
