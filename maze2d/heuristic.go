package maze2d

// abs32 avoids pulling in math for a single int32 absolute value.
func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

func minmax32(a, b int32) (lo, hi int32) {
	if a < b {
		return a, b
	}
	return b, a
}

// ManhattanHeuristic estimates the cost to reach Goal assuming only
// orthogonal moves are ever useful — admissible (and consistent) whenever
// the grid restricts movement to Conn4. Under Conn8 it is not admissible: a
// single diagonal step costs DiagonalCost (141) but is estimated at 200.
type ManhattanHeuristic struct {
	Goal State
}

func (h ManhattanHeuristic) Estimate(s State) Cost {
	dx := abs32(s.X() - h.Goal.X())
	dy := abs32(s.Y() - h.Goal.Y())
	return Cost(dx+dy) * OrthogonalCost
}

// OctileHeuristic estimates the cost to reach Goal assuming diagonal moves
// are used to cover as much of the distance as possible before finishing
// orthogonally — the tight admissible heuristic for Conn8 grids, mirroring
// the original problem's diagonal-distance heuristic.
type OctileHeuristic struct {
	Goal State
}

func (h OctileHeuristic) Estimate(s State) Cost {
	dx := abs32(s.X() - h.Goal.X())
	dy := abs32(s.Y() - h.Goal.Y())
	lo, hi := minmax32(dx, dy)
	return Cost(lo)*DiagonalCost + Cost(hi-lo)*OrthogonalCost
}
