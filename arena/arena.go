package arena

// chunkShift controls how many elements live in one chunk (1<<chunkShift).
// A power of two keeps Ref -> (chunk, slot) decomposition a shift and a
// mask instead of a division.
const chunkShift = 12
const chunkSize = 1 << chunkShift
const chunkMask = chunkSize - 1

// Ref is a stable, opaque handle to an element allocated by an Arena. It
// remains valid for the Arena's entire lifetime, including across further
// Alloc calls that grow the arena.
type Ref uint64

// Arena is an append-only allocator for T. Zero value is not usable; use
// New.
type Arena[T any] struct {
	chunks [][]T
	length int
}

// New creates an Arena, optionally pre-allocating enough chunks to fit at
// least initialCapacityHint elements without growing mid-search. A hint
// <= 0 starts with a single chunk of chunkSize. Every chunk has exactly
// chunkSize capacity so Ref -> (chunk, slot) decomposition stays a shift
// and a mask regardless of how the arena was sized.
func New[T any](initialCapacityHint int) *Arena[T] {
	numChunks := 1
	if n := (initialCapacityHint + chunkMask) >> chunkShift; n > numChunks {
		numChunks = n
	}
	chunks := make([][]T, numChunks)
	for i := range chunks {
		chunks[i] = make([]T, 0, chunkSize)
	}
	return &Arena[T]{chunks: chunks}
}

// Len reports how many elements have been allocated so far.
func (a *Arena[T]) Len() int {
	return a.length
}

// Alloc appends v to the arena and returns a Ref that stays valid for the
// arena's lifetime. Amortized O(1): a new chunk is appended only when the
// arena has outgrown every chunk allocated so far, and existing chunks are
// never reallocated.
func (a *Arena[T]) Alloc(v T) Ref {
	chunk := a.length >> chunkShift
	if chunk == len(a.chunks) {
		a.chunks = append(a.chunks, make([]T, 0, chunkSize))
	}
	a.chunks[chunk] = append(a.chunks[chunk], v)

	ref := Ref(a.length)
	a.length++
	return ref
}

// Get returns a stable pointer to the element referenced by ref. The
// pointer remains valid even after subsequent Alloc calls grow the arena,
// since chunks are never reallocated once created.
func (a *Arena[T]) Get(ref Ref) *T {
	chunk := int(ref) >> chunkShift
	slot := int(ref) & chunkMask
	return &a.chunks[chunk][slot]
}

// Iter calls fn for every (Ref, *T) pair in allocation order. It is meant
// for inspection and tests, not for hot-path traversal.
func (a *Arena[T]) Iter(fn func(Ref, *T)) {
	for i := 0; i < a.length; i++ {
		fn(Ref(i), a.Get(Ref(i)))
	}
}
