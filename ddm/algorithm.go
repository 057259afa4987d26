// SPDX-License-Identifier: MIT
package ddm

import (
	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/katalvlaran/dualcone/gauss"
	"github.com/katalvlaran/dualcone/numeric"
	"github.com/katalvlaran/dualcone/smallset"
)

// Result carries the output of a completed Run: the extreme rays (preceded
// by the null-space basis rewritten as sign-flipped inequality pairs), the
// original row indices of the facets any ray's cobasis touched, and a
// per-phase timing/counter Summary.
type Result[T numeric.Value] struct {
	Rays    *dmatrix.Dense[T]
	Facets  []int
	Summary *Summary
}

// engine holds the state threaded through one Run call: the reordered
// inequality matrix, the pivoting and adjacency sub-machines, and the
// bookkeeping needed to translate reordered row indices back to the
// caller's original numbering at Finalize time.
type engine[T numeric.Value] struct {
	dim          int
	rank         int
	ineqs        *dmatrix.Dense[T]
	origRowIndex []int
	bas          *dmatrix.Dense[T]

	tol       numeric.Tolerance[T]
	factory   *RayFactory[T]
	pivoting  *pivoting[T]
	adjacency *adjacencyChecker[T]
	summary   *Summary

	extremeRays []Handle
}

// Run computes the dual description of the cone { x : A x >= 0 } for the
// inequality matrix a, following params. It dispatches the cobasis
// representation width by row count and runs to completion:
// makeInitialStep builds the initial simplicial cone of rank rays, then
// the main loop pivots
// until every inequality has been consumed.
func Run[T numeric.Value](a *dmatrix.Dense[T], opts ...Option) (*Result[T], error) {
	if a.NRows() == 0 {
		return nil, ErrEmptyInput
	}

	params := DefaultParams()
	for _, opt := range opts {
		opt(&params)
	}

	tol := numeric.NewTolerance[T](T(params.Epsilon))
	ineqs, origIndex := reorderInequalities(a, params.PivotingOrder)
	setKind := smallset.Choose(ineqs.NRows(), params.SetRepresentation == BitField)

	e := &engine[T]{
		dim:          a.NCols(),
		ineqs:        ineqs,
		origRowIndex: origIndex,
		tol:          tol,
		summary:      &Summary{},
	}
	e.pivoting = newPivoting(params.PivotingOrder, params.UsePlusPlus, e.summary, nil, ineqs, tol)

	if err := e.makeInitialStep(params, setKind); err != nil {
		return nil, err
	}

	for !e.pivoting.isEnded() {
		cluster := e.pivoting.classifyRays(&e.extremeRays)
		e.adjacency.computeAdjacency(cluster, e.pivoting.notProcessedInequalities)
	}

	return e.finalize(), nil
}

// makeInitialStep runs Gaussian elimination to find the rank and an
// initial simplicial cone of rank rays (one per row of F), then assigns every
// inequality to its outside set.
func (e *engine[T]) makeInitialStep(params Params, setKind smallset.Kind) error {
	timer := e.summary.startComputingBasis()
	intArith := !numeric.IsFloat[T]()
	gaussResult, err := gauss.Eliminate(e.ineqs, e.ineqs.NRows(), intArith, e.tol)
	timer.end()
	if err != nil {
		return err
	}
	if gaussResult.Rank == 0 {
		return ErrNoInitialRay
	}
	e.rank = gaussResult.Rank
	e.bas = gaussResult.Bas

	numDisc := 0
	if params.UsePlusPlus {
		numDisc = e.ineqs.NRows()
	}
	e.factory = NewRayFactory[T](e.dim, numDisc, setKind)
	e.pivoting.factory = e.factory
	e.adjacency = newAdjacencyChecker(params.AdjacencyTest, params.UsePlusPlus, e.summary, e.factory)
	e.adjacency.rank = e.rank

	var disc []T
	if params.UsePlusPlus {
		disc = make([]T, e.ineqs.NRows())
	}
	for rayIdx := 0; rayIdx < e.rank; rayIdx++ {
		coords := gaussResult.F.Row(rayIdx)
		if params.UsePlusPlus {
			e.pivoting.computeDiscrepancies(coords, disc)
		}
		h := e.factory.FromCoordinates(coords, disc, e.ineqs.NRows())
		ray := e.factory.Arena.Get(h)
		for j := 0; j < e.rank; j++ {
			if j != rayIdx {
				ray.Cobasis.Add(gaussResult.Perm[j])
			}
		}
		e.extremeRays = append(e.extremeRays, h)
	}
	e.summary.addRays(len(e.extremeRays))

	e.adjacency.computeAdjacency(e.extremeRays, e.pivoting.notProcessedInequalities)

	for i := 0; i < e.ineqs.NRows(); i++ {
		e.pivoting.assignIne(i, e.extremeRays)
	}
	return nil
}

// finalize assembles the Result: the null-space basis as sign-flipped
// inequality pairs, followed by the extreme ray coordinates, plus the
// original-numbered facet index list and edge/facet/iteration counters.
func (e *engine[T]) finalize() *Result[T] {
	rows := make([][]T, 0, 2*e.bas.NRows()+len(e.extremeRays))
	for i := 0; i < e.bas.NRows(); i++ {
		row := e.bas.Row(i)
		negated := make([]T, len(row))
		for j, v := range row {
			negated[j] = -v
		}
		rows = append(rows, append([]T(nil), row...), negated)
	}
	for _, h := range e.extremeRays {
		ray := e.factory.Arena.Get(h)
		rows = append(rows, append([]T(nil), ray.Coordinates[:e.dim]...))
	}
	rayMatrix, _ := dmatrix.NewDenseFromRows(rows)

	facets := make([]int, 0)
	seen := make(map[int]bool)
	for _, h := range e.extremeRays {
		ray := e.factory.Arena.Get(h)
		for _, reorderedIdx := range ray.Cobasis.ToSlice() {
			orig := e.origRowIndex[reorderedIdx]
			if !seen[orig] {
				seen[orig] = true
				facets = append(facets, orig)
			}
		}
	}

	numEdges := 2
	if e.rank > 2 {
		numEdges = 0
		for _, h := range e.extremeRays {
			numEdges += len(e.factory.Arena.Get(h).Adjacent)
		}
		numEdges /= 2
	}
	e.summary.SetFinalCounts(len(e.extremeRays), numEdges, len(facets), e.pivoting.step)

	return &Result[T]{Rays: rayMatrix, Facets: facets, Summary: e.summary}
}
