package search

// Cost is the totally-ordered, saturating-add numeric type a domain
// expresses edge and path costs in. It is constrained to Go's unsigned
// integer kinds: a negative cost is a programming error, not valid domain
// data, and expressing that as a type constraint rather than a runtime
// check rules it out at compile time instead of at run time.
type Cost interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// AddCost adds a and b, saturating at C's maximum value instead of
// wrapping around on overflow. overflowed reports whether saturation
// occurred, so callers can skip the successor, count it, and keep
// searching instead of relaxing an edge with a wrapped-around cost.
func AddCost[C Cost](a, b C) (sum C, overflowed bool) {
	sum = a + b
	if sum < a {
		return ^C(0), true
	}
	return sum, false
}

// Successor is one edge out of a state, as yielded by Space.Successors.
type Successor[St comparable, A any, C Cost] struct {
	Action A
	State  St
	Cost   C
}

// Space is the domain's transition function: given a state, which actions
// are available, what states do they lead to and at what cost.
//
// Successors must be finite for every state; costs must never be negative
// (enforced at the type level by C's constraint). A state may appear as
// its own successor only if the domain truly has self-loops.
type Space[St comparable, A any, C Cost] interface {
	Successors(s St) []Successor[St, A, C]
}

// Problem pairs a Space with a start state and a goal test.
type Problem[St comparable, A any, C Cost] interface {
	Start() St
	IsGoal(s St) bool
	Space() Space[St, A, C]
}

// Heuristic estimates the cost remaining from a state to the nearest
// goal. It must be admissible (never overestimate true cost); consistent
// heuristics (h(u) <= cost(u,v) + h(v) for every edge) let the kernel skip
// re-opening closed nodes, which is the default (see
// Options.AssumeConsistentHeuristic).
type Heuristic[St comparable, A any, C Cost] interface {
	Estimate(s St) C
}

// ZeroHeuristic is the trivial admissible (and consistent) heuristic that
// always estimates 0. Using it with A* expands exactly the same nodes, in
// the same order, as Dijkstra.
type ZeroHeuristic[St comparable, A any, C Cost] struct{}

func (ZeroHeuristic[St, A, C]) Estimate(St) C { return C(0) }

// Step is one (action, resulting state) pair of a reconstructed Path.
type Step[St comparable, A any] struct {
	Action A
	State  St
}

// Path is a solution returned by Run: the start state, the sequence of
// (action, resulting state) steps to reach a goal, and the total cost —
// equal to the goal node's g.
type Path[St comparable, A any, C Cost] struct {
	Start St
	Steps []Step[St, A]
	Cost  C
}
