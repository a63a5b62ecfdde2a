package search

import (
	"go.uber.org/zap"

	"github.com/Dietr1ch/search/arena"
	"github.com/Dietr1ch/search/kheap"
	"github.com/Dietr1ch/search/statemap"
)

// Search runs a single Dijkstra or A* search over a Problem. It owns a node
// arena, an open-set heap and a state→node map exclusively; a Search value
// must not be reused once Run has returned, and must not be shared across
// goroutines.
type Search[St comparable, A any, C Cost] struct {
	problem   Problem[St, A, C]
	heuristic Heuristic[St, A, C] // nil selects plain Dijkstra ranking
	opts      Options

	arena  *arena.Arena[node[St, A, C]]
	heap   *kheap.Heap[NodeRef, C]
	states *statemap.Map[St]
	stats  Stats
}

// newSearch wires an arena, heap and state map together and installs the
// Search itself as the heap's kheap.SlotWriter, so every node can carry its
// own heap slot instead of the heap maintaining a separate index.
func newSearch[St comparable, A any, C Cost](problem Problem[St, A, C], heuristic Heuristic[St, A, C], options ...Option) *Search[St, A, C] {
	opts := DefaultOptions()
	for _, o := range options {
		o(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Search[St, A, C]{
		problem:   problem,
		heuristic: heuristic,
		opts:      opts,
		arena:     arena.New[node[St, A, C]](opts.InitialArenaCapacity),
		states:    statemap.New[St](opts.InitialArenaCapacity),
	}
	s.heap = kheap.New[NodeRef, C](opts.HeapBranching, s, opts.InitialArenaCapacity)
	return s
}

// SetSlot implements kheap.SlotWriter[NodeRef]: the heap is told where a
// node is, the node never has to ask.
func (s *Search[St, A, C]) SetSlot(ref NodeRef, slot int) {
	s.arena.Get(ref).heapSlot = slot
}

// Stats reports the accumulated run counters. Only meaningful after Run has
// returned.
func (s *Search[St, A, C]) Stats() Stats { return s.stats }

func (s *Search[St, A, C]) rank(n *node[St, A, C]) kheap.Rank[C] {
	if s.heuristic == nil {
		return kheap.Rank[C]{Primary: n.g, Secondary: 0}
	}
	f, _ := AddCost(n.g, n.h)
	return kheap.Rank[C]{Primary: f, Secondary: n.h}
}

// Run executes the search to completion: until a goal is popped from the
// open set (found=true), the open set is exhausted with no goal reached
// (found=false, err=nil — there is no path, which is not an error), or the
// configured ExpansionBudget runs out (err=ErrBudgetExhausted).
func (s *Search[St, A, C]) Run() (path Path[St, A, C], found bool, err error) {
	space := s.problem.Space()
	start := s.problem.Start()

	startRef := s.arena.Alloc(node[St, A, C]{
		state:    start,
		g:        0,
		h:        s.estimate(start),
		heapSlot: kheap.SentinelSlot,
	})
	s.stats.NodesAllocated++
	s.states.InsertOpen(start, startRef)
	s.pushOrUpdate(startRef)

	for {
		if s.opts.ExpansionBudget != nil && s.stats.NodesExpanded >= *s.opts.ExpansionBudget {
			return Path[St, A, C]{}, false, ErrBudgetExhausted
		}

		_, ref, ok := s.heap.Pop()
		if !ok {
			return Path[St, A, C]{}, false, nil
		}
		n := s.arena.Get(ref)
		n.heapSlot = kheap.SentinelSlot
		s.states.MarkClosed(n.state)
		s.stats.NodesExpanded++

		if s.problem.IsGoal(n.state) {
			return reconstructPath(s.arena.Get, ref), true, nil
		}

		for _, succ := range space.Successors(n.state) {
			s.relax(ref, n, succ)
		}
	}
}

func (s *Search[St, A, C]) estimate(st St) C {
	if s.heuristic == nil {
		return 0
	}
	return s.heuristic.Estimate(st)
}

// relax considers one successor edge out of the node at parentRef, updating
// or creating the successor's node when a strictly better g is found.
func (s *Search[St, A, C]) relax(parentRef NodeRef, parent *node[St, A, C], succ Successor[St, A, C]) {
	g, overflowed := AddCost(parent.g, succ.Cost)
	if overflowed {
		s.stats.CostOverflows++
		s.opts.Logger.Warn("search: cost overflow, skipping successor",
			zap.Any("state", succ.State))
		return
	}

	entry := s.states.Entry(succ.State)
	switch entry.Kind {
	case statemap.Vacant:
		ref := s.arena.Alloc(node[St, A, C]{
			state:    succ.State,
			g:        g,
			h:        s.estimate(succ.State),
			parent:   parentLink[A]{ref: parentRef, action: succ.Action, has: true},
			heapSlot: kheap.SentinelSlot,
		})
		s.stats.NodesAllocated++
		s.states.InsertOpen(succ.State, ref)
		s.pushOrUpdate(ref)

	case statemap.Open:
		n := s.arena.Get(entry.Ref)
		if g < n.g {
			n.g = g
			n.parent = parentLink[A]{ref: parentRef, action: succ.Action, has: true}
			s.pushOrUpdate(entry.Ref)
		}

	case statemap.Closed:
		if !s.canReopen() {
			return
		}
		n := s.arena.Get(entry.Ref)
		if g >= n.g {
			return
		}
		n.g = g
		n.parent = parentLink[A]{ref: parentRef, action: succ.Action, has: true}
		s.states.Reopen(succ.State, entry.Ref)
		s.stats.NodesReopened++
		s.opts.Logger.Info("search: re-opening closed node",
			zap.Any("state", succ.State), zap.Uint64("g", uint64(g)))
		s.pushOrUpdate(entry.Ref)
	}
}

// canReopen reports whether a Closed node may be moved back to Open.
// Dijkstra (no heuristic) never benefits from it; A* only needs it when the
// heuristic might not be consistent.
func (s *Search[St, A, C]) canReopen() bool {
	if s.heuristic == nil {
		return false
	}
	return !s.opts.AssumeConsistentHeuristic
}

// pushOrUpdate inserts ref into the heap, or decreases its key if it is
// already present (tracked via its own heapSlot).
func (s *Search[St, A, C]) pushOrUpdate(ref NodeRef) {
	n := s.arena.Get(ref)
	r := s.rank(n)
	if n.heapSlot == kheap.SentinelSlot {
		n.heapSlot = s.heap.Push(r, ref)
	} else {
		n.heapSlot = s.heap.DecreaseKey(n.heapSlot, r)
	}
	if l := s.heap.Len(); l > s.stats.HeapPeak {
		s.stats.HeapPeak = l
	}
}
