// SPDX-License-Identifier: MIT
package arena

// ArrayPool recycles fixed-length []T slices, one freelist per distinct
// length, mirroring the original ArrayMemoryManager<T>. It backs the
// variable-size coordinate/normal blocks that rays and inequalities own.
type ArrayPool[T any] struct {
	free map[int][][]T
}

// NewArrayPool returns an empty ArrayPool.
func NewArrayPool[T any]() *ArrayPool[T] {
	return &ArrayPool[T]{free: make(map[int][][]T)}
}

// Get returns a zeroed slice of length n, reusing a returned one of the
// same length if available.
//
// Complexity: amortized O(1) plus O(n) to zero a freshly grown slice.
func (p *ArrayPool[T]) Get(n int) []T {
	if bucket := p.free[n]; len(bucket) > 0 {
		last := len(bucket) - 1
		s := bucket[last]
		p.free[n] = bucket[:last]
		var zero T
		for i := range s {
			s[i] = zero
		}
		return s
	}
	return make([]T, n)
}

// Put returns s to the pool, bucketed by its length.
//
// Complexity: O(1).
func (p *ArrayPool[T]) Put(s []T) {
	if s == nil {
		return
	}
	n := len(s)
	p.free[n] = append(p.free[n], s)
}
