// Package statemap implements the state→node bookkeeping the search
// drivers need: for every State discovered so far, whether it is currently
// open (in the heap) or closed (expanded), and which arena.Ref holds its
// SearchTreeNode.
//
// A naive implementation keeps a map[State]Ref for "have we seen this
// state" plus a separate map[State]struct{} ("is it closed"), which hashes
// every state twice per lookup. StateNodeMap instead packs the closed flag
// into the high bit of the stored reference (a packedRef), costing one
// mask on every access and zero extra memory — the same niche-packing idea
// classically applied to tagged pointers, adapted here to the dense
// arena.Ref handles this package actually stores (see DESIGN.md for why
// that substitution is sound).
//
// Errors: none returned — InsertOpen/MarkClosed/Reopen panic on a
// state transition that violates their documented precondition, since
// calling them out of order is a kernel bug, not a domain data problem:
// the kernel never panics on domain data, only on internal invariant
// violations.
package statemap
