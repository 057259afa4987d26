// SPDX-License-Identifier: MIT
package smallset

import "github.com/bits-and-blooms/bitset"

// BitField is a Set backed by github.com/bits-and-blooms/bitset, used for
// the four bitfield size classes (32/64/96/128 bits).
type BitField struct {
	bits *bitset.BitSet
}

// NewBitField allocates an empty BitField sized for capacityHint elements.
func NewBitField(capacityHint int) *BitField {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &BitField{bits: bitset.New(uint(capacityHint))}
}

// Add sets bit x.
func (s *BitField) Add(x int) { s.bits.Set(uint(x)) }

// Size returns the popcount of the underlying bitset.
func (s *BitField) Size() int { return int(s.bits.Count()) }

// IsSubsetOf reports whether s ⊆ other.
func (s *BitField) IsSubsetOf(other Set) bool {
	o := mustBitField(other)
	return o.bits.IsSuperSet(s.bits)
}

// ToSlice returns the set elements in increasing order.
func (s *BitField) ToSlice() []int {
	result := make([]int, 0, s.Size())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		result = append(result, int(i))
	}
	return result
}

// Clone returns an independent copy of s.
func (s *BitField) Clone() Set { return &BitField{bits: s.bits.Clone()} }

func bitFieldIntersectionSize(a, b *BitField) int {
	return int(a.bits.IntersectionCardinality(b.bits))
}

func bitFieldIntersection(a, b *BitField) *BitField {
	return &BitField{bits: a.bits.Intersection(b.bits)}
}
