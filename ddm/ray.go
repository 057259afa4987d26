// SPDX-License-Identifier: MIT
package ddm

import (
	"github.com/katalvlaran/dualcone/arena"
	"github.com/katalvlaran/dualcone/numeric"
	"github.com/katalvlaran/dualcone/smallset"
)

// Handle references a ray owned by a RayFactory's arena.
type Handle = arena.Handle

// Ray is an extreme ray candidate of the cone under construction.
// Coordinates holds the D ambient coordinates followed, when the plusplus
// optimization is enabled, by a discrepancy against every original
// inequality — a single contiguous block, so Discrepancies is a suffix
// view rather than a separate allocation.
type Ray[T numeric.Value] struct {
	Coordinates          []T
	Dim                  int
	Cobasis              smallset.Set
	Adjacent             []Handle
	AssignedInequalities []int
	PivotDiscrepancy     T
	VisitingStep         int
}

// Discrepancies returns the plusplus discrepancy suffix of Coordinates, or
// nil if the ray was built without one.
func (r *Ray[T]) Discrepancies() []T {
	if len(r.Coordinates) <= r.Dim {
		return nil
	}
	return r.Coordinates[r.Dim:]
}

// IsSimple reports whether the ray's cobasis has the minimal size rank-1,
// in which case it has exactly rank+1 neighbors and every adjacency
// candidate is automatically adjacent.
func (r *Ray[T]) IsSimple(rank int) bool {
	return r.Cobasis.Size() == rank-1
}

// RayFactory allocates, combines, and recycles rays through a shared arena
// and array pool, replacing the source's per-Ray operator-new slab pool.
type RayFactory[T numeric.Value] struct {
	Arena       *arena.Arena[Ray[T]]
	pool        *arena.ArrayPool[T]
	dim         int
	extendedDim int
	setKind     smallset.Kind
}

// NewRayFactory builds a factory for rays of ambient dimension dim.
// numDiscrepancies is 0 unless the plusplus optimization is active, in
// which case it equals the number of original inequalities. setKind fixes
// the cobasis representation for every ray this factory produces.
func NewRayFactory[T numeric.Value](dim, numDiscrepancies int, setKind smallset.Kind) *RayFactory[T] {
	return &RayFactory[T]{
		Arena:       arena.New[Ray[T]](),
		pool:        arena.NewArrayPool[T](),
		dim:         dim,
		extendedDim: dim + numDiscrepancies,
		setKind:     setKind,
	}
}

// FromCoordinates builds a fresh ray directly from a coordinate vector
// (used for the initial simplex), normalizing it before it is handed out.
func (f *RayFactory[T]) FromCoordinates(coords []T, discrepancies []T, cobasisHint int) Handle {
	block := f.pool.Get(f.extendedDim)
	copy(block, coords)
	if discrepancies != nil {
		copy(block[f.dim:], discrepancies)
	}
	numeric.Normalize(block)

	ray := Ray[T]{
		Coordinates: block,
		Dim:         f.dim,
		Cobasis:     smallset.New(f.setKind, cobasisHint),
	}
	return f.Arena.Alloc(ray)
}

// FromCombination builds the ray on the (-,+) edge between minus and plus,
// per the combination formula:
//
//	r' = d(plus) * minus.Coordinates - d(minus) * plus.Coordinates
//
// where d(x) is x's cached PivotDiscrepancy (d(plus) > 0 > d(minus), so
// both coefficients are positive and r' lies on the pivot hyperplane). It also rewrites the adjacency
// link that used to connect plus to minus so it now points at the new ray.
func (f *RayFactory[T]) FromCombination(plusH, minusH Handle, pivotIneIdx int) Handle {
	plus := f.Arena.Get(plusH)
	minus := f.Arena.Get(minusH)

	block := f.pool.Get(f.extendedDim)
	for i := range block {
		block[i] = plus.PivotDiscrepancy*minus.Coordinates[i] - minus.PivotDiscrepancy*plus.Coordinates[i]
	}
	numeric.Normalize(block)

	cobasis := smallset.Intersection(plus.Cobasis, minus.Cobasis)
	cobasis.Add(pivotIneIdx)

	newHandle := f.Arena.Alloc(Ray[T]{
		Coordinates:  block,
		Dim:          f.dim,
		Cobasis:      cobasis,
		VisitingStep: plus.VisitingStep,
	})

	newRay := f.Arena.Get(newHandle)
	newRay.Adjacent = append(newRay.Adjacent, plusH)
	for i, h := range plus.Adjacent {
		if h == minusH {
			plus.Adjacent[i] = newHandle
			break
		}
	}
	return newHandle
}

// Free returns ray h's coordinate block to the array pool and its cell to
// the arena.
func (f *RayFactory[T]) Free(h Handle) {
	ray := f.Arena.Get(h)
	f.pool.Put(ray.Coordinates)
	f.Arena.Free(h)
}
