// SPDX-License-Identifier: MIT

// Package arena provides the allocation substrate for rays (DDM) and
// inequalities (FME): a typed arena with stable integer handles standing
// in for the original C++ slab pool of raw heap pointers, plus a
// sized-array pool for the variable-length coefficient blocks each ray or
// inequality owns.
//
// Ownership of rays/inequalities needs a language-neutral shape once raw
// pointers are off the table; a typed arena plus stable indices is that
// shape. Arena exposes Alloc/Free/Get by Handle, so adjacency lists and
// cobasis cross-links become handles into the arena rather than cyclic
// pointers.
// Growth happens in slabs of slabSize entries, mirroring the original
// MemoryManager's 100-cell slabs; freed handles are recycled before a new
// slab is grown. LeakReport reproduces the original's leak diagnostic
// (allocated cells that were never returned) without panicking — the
// caller decides whether/where to surface it.
package arena
