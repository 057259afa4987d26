// SPDX-License-Identifier: MIT

// Package smallset implements the compact subset representation shared by
// ray cobases (DDM) and Chernikov complementary indices (FME): a subset of
// {0, ..., m-1} for m in the low thousands, with fast intersection,
// intersection-size, and subset tests.
//
// Two implementations satisfy the Set interface:
//
//   - BitField wraps github.com/bits-and-blooms/bitset, used when m fits
//     one of four widths (32/64/96/128 bits). The upstream BitSet already
//     generalizes over arbitrary widths, so all four size classes route
//     to the same Go type; Kind still carries the size class for fidelity
//     with the original's dispatch table.
//   - SortedVector[E] is a sorted slice over the smallest unsigned integer
//     type that fits m (uint8/16/32/64), used when the caller does not
//     prefer a bitfield or once m outgrows 128 bits.
//
// Which implementation is used is decided once per algorithm run — never
// per call — by Choose, mirroring the free-function dispatch in the
// original ddm()/elimination() entry points. All Sets passed to a given
// intersection/subset call within one engine invocation share the same
// concrete implementation; mixing them is a programmer error and panics.
package smallset
