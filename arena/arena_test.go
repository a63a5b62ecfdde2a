package arena_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dietr1ch/search/arena"
)

func TestArena_AllocAndGet(t *testing.T) {
	a := arena.New[int](0)
	refs := make([]arena.Ref, 0, 10_000)
	for i := 0; i < 10_000; i++ {
		refs = append(refs, a.Alloc(i))
	}
	require.Equal(t, 10_000, a.Len())
	for i, ref := range refs {
		require.Equal(t, i, *a.Get(ref))
	}
}

// TestArena_ReferenceStability verifies that a *T obtained before a chunk
// boundary is crossed stays valid (and unmoved in value) after further
// Allocs, which is the entire point of chunking instead of a flat slice.
func TestArena_ReferenceStability(t *testing.T) {
	a := arena.New[string](0)
	early := a.Alloc("first")
	p := a.Get(early)
	require.Equal(t, "first", *p)

	for i := 0; i < 50_000; i++ {
		a.Alloc("filler")
	}

	require.Equal(t, "first", *p, "pointer obtained before growth must still observe the original value")
	require.Equal(t, "first", *a.Get(early))
}

func TestArena_InitialCapacityHint(t *testing.T) {
	a := arena.New[int](100_000)
	for i := 0; i < 100_000; i++ {
		a.Alloc(i)
	}
	require.Equal(t, 100_000, a.Len())
	require.Equal(t, 99_999, *a.Get(arena.Ref(99_999)))
}

func TestArena_Iter(t *testing.T) {
	a := arena.New[int](0)
	for i := 0; i < 5; i++ {
		a.Alloc(i * i)
	}
	var got []int
	a.Iter(func(_ arena.Ref, v *int) {
		got = append(got, *v)
	})
	require.Equal(t, []int{0, 1, 4, 9, 16}, got)
}
