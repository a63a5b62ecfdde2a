// Package kheap implements an intrusive K-ary min-heap over (Rank, Ref)
// pairs, for K in {2, 4, 8}.
//
// "Intrusive" means the referenced element is expected to remember its own
// current slot in the heap, so a caller holding a reference can ask the
// heap to relax that element's rank in O(log_K N) without a linear scan.
// Since Heap stores only (Rank, Ref) pairs — not the elements themselves —
// it cannot write the slot back into the element directly; a SlotWriter is
// supplied at construction and called every time a slot's occupant
// changes, so whatever owns the real elements (the arena, via the
// search package) can keep each element's heap_slot field in sync.
//
// Comparisons never touch the referenced element: Rank is stored inline in
// the slot, so a Pop or Push does O(log_K N) Rank comparisons and nothing
// else. K=4 is recommended: four 16-byte (Rank, Ref) slots span one 64-byte
// cache line, so a sift-down's child scan touches a single line.
//
// Errors: none at the API level — DecreaseKey's precondition (newRank <=
// current rank) is the caller's responsibility, and DecreaseKey panics when
// it is violated; a stale or out-of-range slot index is an internal bug and
// panics too, rather than being reported as an error.
package kheap
