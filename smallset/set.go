// SPDX-License-Identifier: MIT
package smallset

// Set is the contract shared by BitField and SortedVector[E]: a subset of
// {0, ..., m-1} supporting fast membership, intersection, and subset
// tests.
type Set interface {
	// Add inserts x, preserving sortedness/bit layout. The caller must not
	// add the same element twice to the same set.
	Add(x int)

	// Size returns the number of elements currently in the set.
	Size() int

	// IsSubsetOf reports whether every element of the receiver is also in
	// other. other must be the same concrete implementation as the
	// receiver; a mismatch panics (programmer error, never user input).
	IsSubsetOf(other Set) bool

	// ToSlice returns the elements in increasing order.
	ToSlice() []int

	// Clone returns an independent copy of the same concrete type.
	Clone() Set
}

// IntersectionSize returns |a ∩ b|. a and b must share a concrete
// implementation.
//
// Complexity: O(m/wordsize) for BitField, O(|a|+|b|) for SortedVector.
func IntersectionSize(a, b Set) int {
	switch av := a.(type) {
	case *BitField:
		return bitFieldIntersectionSize(av, mustBitField(b))
	case *SortedVector[uint8]:
		return sortedVectorIntersectionSize(av, mustSortedVector[uint8](b))
	case *SortedVector[uint16]:
		return sortedVectorIntersectionSize(av, mustSortedVector[uint16](b))
	case *SortedVector[uint32]:
		return sortedVectorIntersectionSize(av, mustSortedVector[uint32](b))
	case *SortedVector[uint64]:
		return sortedVectorIntersectionSize(av, mustSortedVector[uint64](b))
	default:
		panic("smallset: unsupported Set implementation")
	}
}

// Intersection returns a new set of a and b's shared concrete
// implementation containing a ∩ b.
//
// Complexity: same as IntersectionSize.
func Intersection(a, b Set) Set {
	switch av := a.(type) {
	case *BitField:
		return bitFieldIntersection(av, mustBitField(b))
	case *SortedVector[uint8]:
		return sortedVectorIntersection(av, mustSortedVector[uint8](b))
	case *SortedVector[uint16]:
		return sortedVectorIntersection(av, mustSortedVector[uint16](b))
	case *SortedVector[uint32]:
		return sortedVectorIntersection(av, mustSortedVector[uint32](b))
	case *SortedVector[uint64]:
		return sortedVectorIntersection(av, mustSortedVector[uint64](b))
	default:
		panic("smallset: unsupported Set implementation")
	}
}

func mustBitField(s Set) *BitField {
	bf, ok := s.(*BitField)
	if !ok {
		panic("smallset: mismatched Set implementations")
	}
	return bf
}

func mustSortedVector[E vectorElement](s Set) *SortedVector[E] {
	sv, ok := s.(*SortedVector[E])
	if !ok {
		panic("smallset: mismatched Set implementations")
	}
	return sv
}
