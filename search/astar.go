package search

// NewAStar builds a Search that ranks the open set by f = g + h, breaking
// ties toward the smaller h (the node A* believes is closer to the goal).
// By default it assumes heuristic is consistent and never re-opens closed
// nodes; pass WithAssumeConsistentHeuristic(false) for heuristics that are
// only admissible, at the cost of possible re-expansions.
func NewAStar[St comparable, A any, C Cost](problem Problem[St, A, C], heuristic Heuristic[St, A, C], options ...Option) *Search[St, A, C] {
	if heuristic == nil {
		heuristic = ZeroHeuristic[St, A, C]{}
	}
	return newSearch[St, A, C](problem, heuristic, options...)
}
