// Package search implements a generic heuristic graph-search kernel:
// Dijkstra and A* drivers over a domain-supplied Problem/Space, sharing a
// NodeArena (package arena), an intrusive K-ary open-set heap (package
// kheap) and a packed state→node map (package statemap).
//
// The kernel is single-threaded and performs no I/O; a Search owns its
// arena, heap and map exclusively and runs a call to Run to completion or
// failure without yielding. Two independent Search values never share
// state, so running several searches concurrently only requires one
// goroutine (and one Search) per search.
//
// Complexity, mirroring the teacher's dijkstra package doc style:
//
//   - Time:  O((V + E) log_K V) for Dijkstra; A* is the same worst case,
//     with admissible heuristics typically expanding far fewer nodes.
//   - Space: O(V) for the arena and state map, O(V) for the heap, which
//     holds at most one entry per open node (relaxation uses DecreaseKey).
//
// Errors (sentinel):
//
//   - ErrBudgetExhausted: the configured ExpansionBudget was hit before a
//     goal was popped.
//
// NoPath is not an error: Run reports it via its found bool rather than a
// distinguished error value. CostOverflow is not an error either: the
// offending successor is skipped,
// a Stats counter is bumped, and a warning is logged if a non-nop *zap.Logger
// was configured — the search proceeds.
package search
