// Package arena implements an append-only, chunked allocator used by the
// search package to store SearchTreeNode records.
//
// A flat []T would invalidate every outstanding *T on growth (Go slices may
// reallocate and copy), which is fatal for a structure like the open-set
// heap or the state→node map that hold long-lived references into the
// arena. Arena instead allocates fixed-size chunks; growth appends a new
// chunk rather than reallocating an existing one, so a *T obtained from
// Get stays valid for the Arena's entire lifetime.
//
// References are opaque Ref values (dense uint64 indices), not pointers:
// this keeps Ref comparable, cheap to pack together with a "closed" bit in
// one word (see package statemap) and avoids unsafe.Pointer arithmetic.
//
// Arena never frees individual elements; the whole arena is reclaimed at
// once when the owning Search is dropped.
package arena
