package statemap

import (
	"fmt"

	"github.com/Dietr1ch/search/arena"
)

// packedRef packs an arena.Ref (63 usable bits) together with a one-bit
// closed flag into a single uint64 word.
type packedRef uint64

const closedFlag packedRef = 1 << 63
const refMask = closedFlag - 1

func newPackedRef(ref arena.Ref, closed bool) packedRef {
	if uint64(ref) > uint64(refMask) {
		panic("statemap: arena.Ref does not fit in 63 bits")
	}
	p := packedRef(ref)
	if closed {
		p |= closedFlag
	}
	return p
}

func (p packedRef) ref() arena.Ref { return arena.Ref(p & refMask) }
func (p packedRef) closed() bool   { return p&closedFlag != 0 }

// Kind classifies what StateNodeMap knows about a State.
type Kind int

const (
	// Vacant: the state has never been discovered.
	Vacant Kind = iota
	// Open: the state has a node in the arena and is (believed to be) in
	// the heap.
	Open
	// Closed: the state has been expanded; its node is retained for parent
	// links but is no longer in the heap.
	Closed
)

// Entry is the result of looking up a State: its Kind, and — for Open and
// Closed — the arena.Ref of its SearchTreeNode.
type Entry struct {
	Kind Kind
	Ref  arena.Ref
}

// Map is a hash map from State to (arena.Ref, closed-bit), replacing a
// separate map[State]Ref plus map[State]bool with a single lookup.
type Map[St comparable] struct {
	m map[St]packedRef
}

// New creates an empty Map, optionally pre-sizing for capacityHint states.
func New[St comparable](capacityHint int) *Map[St] {
	return &Map[St]{m: make(map[St]packedRef, capacityHint)}
}

// Len reports how many states the map currently tracks (open + closed).
func (m *Map[St]) Len() int { return len(m.m) }

// Entry looks up s, returning Vacant/Open/Closed and, for the latter two,
// the arena.Ref of its node. O(1) amortized, one hash of s.
func (m *Map[St]) Entry(s St) Entry {
	p, ok := m.m[s]
	if !ok {
		return Entry{Kind: Vacant}
	}
	if p.closed() {
		return Entry{Kind: Closed, Ref: p.ref()}
	}
	return Entry{Kind: Open, Ref: p.ref()}
}

// InsertOpen records a freshly allocated node for a previously Vacant
// state. Panics if s is not currently Vacant.
func (m *Map[St]) InsertOpen(s St, ref arena.Ref) {
	if _, ok := m.m[s]; ok {
		panic(fmt.Sprintf("statemap: InsertOpen called on a non-vacant state %v", s))
	}
	m.m[s] = newPackedRef(ref, false)
}

// MarkClosed transitions an Open state to Closed, keeping its existing
// Ref. Panics if s is not currently Open.
func (m *Map[St]) MarkClosed(s St) {
	p, ok := m.m[s]
	if !ok || p.closed() {
		panic(fmt.Sprintf("statemap: MarkClosed called on a non-open state %v", s))
	}
	m.m[s] = newPackedRef(p.ref(), true)
}

// Reopen transitions a Closed state back to Open with a (possibly new)
// Ref. Only used when the search allows re-opening under inconsistent
// heuristics. Panics if s is not currently Closed.
func (m *Map[St]) Reopen(s St, ref arena.Ref) {
	p, ok := m.m[s]
	if !ok || !p.closed() {
		panic(fmt.Sprintf("statemap: Reopen called on a non-closed state %v", s))
	}
	m.m[s] = newPackedRef(ref, false)
}
