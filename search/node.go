package search

import "github.com/Dietr1ch/search/arena"

// NodeRef is a stable handle to a SearchTreeNode, valid for the Search's
// entire lifetime.
type NodeRef = arena.Ref

// parentLink records how a node was reached: through which NodeRef, by
// which Action. Start nodes have no parent.
type parentLink[A any] struct {
	ref    NodeRef
	action A
	has    bool
}

// node is the only heap-residing record: a SearchTreeNode plus the
// intrusive heapSlot every heap element carries so the heap can relocate it
// in place without a separate index. g is the best known cost to reach
// state; h is the heuristic estimate used by
// A* (always 0 under Dijkstra). heapSlot mirrors the node's current
// position in the Search's heap, or kheap.SentinelSlot once the node is
// closed or has never been pushed.
type node[St comparable, A any, C Cost] struct {
	state    St
	g        C
	h        C
	parent   parentLink[A]
	heapSlot int
}
