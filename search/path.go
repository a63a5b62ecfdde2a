package search

// reconstructPath walks parent links from goalRef back to the start node
// and reverses the result into a forward Path. get resolves a NodeRef to
// its node, mirroring how the teacher's dijkstra package walks predecessor
// maps to rebuild a path post-hoc.
func reconstructPath[St comparable, A any, C Cost](get func(NodeRef) *node[St, A, C], goalRef NodeRef) Path[St, A, C] {
	goal := get(goalRef)

	var steps []Step[St, A]
	cur := goalRef
	for {
		n := get(cur)
		if !n.parent.has {
			return Path[St, A, C]{
				Start: n.state,
				Steps: reverseSteps(steps),
				Cost:  goal.g,
			}
		}
		steps = append(steps, Step[St, A]{Action: n.parent.action, State: n.state})
		cur = n.parent.ref
	}
}

func reverseSteps[St comparable, A any](steps []Step[St, A]) []Step[St, A] {
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
