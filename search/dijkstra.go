package search

// NewDijkstra builds a Search that ranks the open set purely by g, the
// exact cost from the start — Dijkstra's algorithm. Closed nodes are never
// re-opened: with non-negative costs (enforced by Cost's constraint) the
// first pop of a state already carries its optimal g.
func NewDijkstra[St comparable, A any, C Cost](problem Problem[St, A, C], options ...Option) *Search[St, A, C] {
	return newSearch[St, A, C](problem, nil, options...)
}
