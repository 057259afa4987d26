// SPDX-License-Identifier: MIT
package fme

import (
	"github.com/katalvlaran/dualcone/arena"
	"github.com/katalvlaran/dualcone/numeric"
	"github.com/katalvlaran/dualcone/smallset"
)

// Handle references an Inequality owned by an InequalityFactory's arena.
type Handle = arena.Handle

// Inequality is one row `Normal . x >= 0` of the working system.
// ComplementaryIndex is the set of original-row indices NOT among the
// ancestors used to build this inequality; it starts as everything except
// the row's own index and shrinks by intersection every time two
// inequalities combine; it is the bookkeeping Chernikov's rules test
// against, mirroring Inequality.hpp's complementaryIndex field.
type Inequality[T numeric.Value] struct {
	Normal             []T
	ComplementaryIndex smallset.Set
}

// InequalityFactory allocates and combines inequalities through a shared
// arena and array pool, mirroring package ddm's RayFactory.
type InequalityFactory[T numeric.Value] struct {
	Arena   *arena.Arena[Inequality[T]]
	pool    *arena.ArrayPool[T]
	dim     int
	setKind smallset.Kind
}

// NewInequalityFactory builds a factory for inequalities over dim
// variables, whose complementary indices are represented as setKind sets.
func NewInequalityFactory[T numeric.Value](dim int, setKind smallset.Kind) *InequalityFactory[T] {
	return &InequalityFactory[T]{
		Arena:   arena.New[Inequality[T]](),
		pool:    arena.NewArrayPool[T](),
		dim:     dim,
		setKind: setKind,
	}
}

// FromNormal builds a fresh inequality from a raw normal vector,
// normalizing it before handing out the handle. complementCap sizes the
// backing complementary-index set; the caller populates it afterward.
func (f *InequalityFactory[T]) FromNormal(normal []T, complementCap int) Handle {
	block := f.pool.Get(f.dim)
	copy(block, normal)
	numeric.Normalize(block)

	return f.Arena.Alloc(Inequality[T]{
		Normal:             block,
		ComplementaryIndex: smallset.New(f.setKind, complementCap),
	})
}

// FromCombination builds the inequality that eliminates variable
// eliminated from plus and minus, per Inequality.hpp:
//
//	normal[k] = plus.Normal[eliminated]*minus.Normal[k] - minus.Normal[eliminated]*plus.Normal[k]
//
// Its complementary index is the intersection of the two parents'.
func (f *InequalityFactory[T]) FromCombination(plusH, minusH Handle, eliminated int) Handle {
	plus := f.Arena.Get(plusH)
	minus := f.Arena.Get(minusH)

	pCoeff := plus.Normal[eliminated]
	mCoeff := minus.Normal[eliminated]

	block := f.pool.Get(f.dim)
	for k := range block {
		block[k] = pCoeff*minus.Normal[k] - mCoeff*plus.Normal[k]
	}
	numeric.Normalize(block)

	return f.Arena.Alloc(Inequality[T]{
		Normal:             block,
		ComplementaryIndex: smallset.Intersection(plus.ComplementaryIndex, minus.ComplementaryIndex),
	})
}

// Free returns inequality h's normal block to the array pool and its cell
// to the arena.
func (f *InequalityFactory[T]) Free(h Handle) {
	ineq := f.Arena.Get(h)
	f.pool.Put(ineq.Normal)
	f.Arena.Free(h)
}
