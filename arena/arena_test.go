// SPDX-License-Identifier: MIT
package arena_test

import (
	"testing"

	"github.com/katalvlaran/dualcone/arena"
	"github.com/stretchr/testify/require"
)

func TestArenaAllocGetFree(t *testing.T) {
	a := arena.New[int]()
	h1 := a.Alloc(10)
	h2 := a.Alloc(20)
	require.Equal(t, 10, *a.Get(h1))
	require.Equal(t, 20, *a.Get(h2))

	a.Free(h1)
	require.Panics(t, func() { a.Get(h1) })

	h3 := a.Alloc(30)
	require.Equal(t, h1, h3, "freed handle should be recycled")
	require.Equal(t, 30, *a.Get(h3))
}

func TestArenaGrowsAcrossSlabBoundary(t *testing.T) {
	a := arena.New[int]()
	handles := make([]arena.Handle, 0, 250)
	for i := 0; i < 250; i++ {
		handles = append(handles, a.Alloc(i))
	}
	for i, h := range handles {
		require.Equal(t, i, *a.Get(h))
	}
}

func TestArenaLeakReport(t *testing.T) {
	a := arena.New[int]()
	h := a.Alloc(1)
	require.NotEmpty(t, a.LeakReport())
	a.Free(h)
	require.Empty(t, a.LeakReport())
}

func TestArenaInvalidHandlePanics(t *testing.T) {
	a := arena.New[int]()
	require.Panics(t, func() { a.Get(arena.Handle(99)) })
	require.Panics(t, func() { a.Free(arena.Handle(99)) })
}

func TestArrayPoolReusesByLength(t *testing.T) {
	p := arena.NewArrayPool[float64]()
	s1 := p.Get(4)
	s1[0] = 42
	p.Put(s1)

	s2 := p.Get(4)
	require.Len(t, s2, 4)
	require.Equal(t, 0.0, s2[0], "reused slice must be zeroed")

	s3 := p.Get(7)
	require.Len(t, s3, 7)
}
