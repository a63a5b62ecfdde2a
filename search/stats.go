package search

// Stats accumulates counters over a Search's lifetime, in the spirit of the
// teacher's dijkstra package exposing run statistics alongside the path
// itself.
type Stats struct {
	// NodesAllocated is the number of SearchTreeNode values ever created.
	// Re-opening a closed state reuses its existing arena slot rather than
	// allocating a new one; see NodesReopened.
	NodesAllocated uint64
	// NodesExpanded is the number of nodes popped from the heap and
	// expanded (successors generated).
	NodesExpanded uint64
	// NodesReopened counts successful Reopen transitions.
	NodesReopened uint64
	// CostOverflows counts successors skipped because g+cost saturated C's
	// range.
	CostOverflows uint64
	// HeapPeak is the largest size the open-set heap ever reached.
	HeapPeak int
}
