package kheap

import "cmp"

// SentinelSlot is the heap_slot value an element is set to once it leaves
// the heap (popped, or never pushed at all).
const SentinelSlot = -1

// Arity is the branching factor of the heap. Per spec it is one of 2, 4, 8;
// 4 is recommended since four 16-byte slots fill a 64-byte cache line.
type Arity int

const (
	Arity2 Arity = 2
	Arity4 Arity = 4
	Arity8 Arity = 8
)

// Rank is the heap's ordering key: lexicographic on (Primary, Secondary),
// smallest first. Dijkstra uses (g, 0); A* uses (f, h) so that, on equal f,
// the node with the smaller h — the one believed closer to the goal — wins
// the tie.
type Rank[C cmp.Ordered] struct {
	Primary   C
	Secondary C
}

func (r Rank[C]) less(o Rank[C]) bool {
	if r.Primary != o.Primary {
		return r.Primary < o.Primary
	}
	return r.Secondary < o.Secondary
}

func (r Rank[C]) lessEq(o Rank[C]) bool {
	return !o.less(r)
}

// SlotWriter is implemented by whatever owns the real elements referenced
// by Ref (the search package's NodeArena). Heap calls SetSlot every time
// an element's position in the heap changes, including SentinelSlot when
// the element leaves the heap.
type SlotWriter[R any] interface {
	SetSlot(ref R, slot int)
}

type slot[R any, C cmp.Ordered] struct {
	rank Rank[C]
	ref  R
}

// Heap is an intrusive K-ary min-heap of (Rank, Ref) pairs.
type Heap[R any, C cmp.Ordered] struct {
	k      int
	slots  []slot[R, C]
	writer SlotWriter[R]
}

// New creates an empty Heap with the given branching factor and slot
// writer. capacityHint pre-sizes the backing slice.
func New[R any, C cmp.Ordered](k Arity, writer SlotWriter[R], capacityHint int) *Heap[R, C] {
	if k != Arity2 && k != Arity4 && k != Arity8 {
		panic("kheap: Arity must be 2, 4 or 8")
	}
	return &Heap[R, C]{
		k:      int(k),
		slots:  make([]slot[R, C], 0, capacityHint),
		writer: writer,
	}
}

// Len reports the number of elements currently in the heap.
func (h *Heap[R, C]) Len() int { return len(h.slots) }

// Peek returns the minimum-rank element without removing it.
func (h *Heap[R, C]) Peek() (rank Rank[C], ref R, ok bool) {
	if len(h.slots) == 0 {
		return Rank[C]{}, ref, false
	}
	return h.slots[0].rank, h.slots[0].ref, true
}

// Push inserts (rank, ref) and returns the slot it settled into.
func (h *Heap[R, C]) Push(rank Rank[C], ref R) int {
	i := len(h.slots)
	h.slots = append(h.slots, slot[R, C]{rank: rank, ref: ref})
	h.writer.SetSlot(ref, i)
	return h.siftUp(i)
}

// Pop removes and returns the minimum-rank element, marking it with
// SentinelSlot via the SlotWriter.
func (h *Heap[R, C]) Pop() (rank Rank[C], ref R, ok bool) {
	n := len(h.slots)
	if n == 0 {
		return Rank[C]{}, ref, false
	}
	top := h.slots[0]
	last := n - 1
	if last == 0 {
		h.slots = h.slots[:0]
		h.writer.SetSlot(top.ref, SentinelSlot)
		return top.rank, top.ref, true
	}

	h.swap(0, last)
	h.slots = h.slots[:last]
	h.writer.SetSlot(top.ref, SentinelSlot)
	h.siftDown(0)

	return top.rank, top.ref, true
}

// DecreaseKey lowers the rank of the element currently at slot i (the
// element's own, previously recorded, heap_slot) to newRank and restores
// the heap invariant. Precondition: newRank <= the element's current rank
// — the heap is never asked to increase a key.
func (h *Heap[R, C]) DecreaseKey(i int, newRank Rank[C]) int {
	if i < 0 || i >= len(h.slots) {
		panic("kheap: DecreaseKey called with stale or out-of-range slot index")
	}
	if !newRank.lessEq(h.slots[i].rank) {
		panic("kheap: DecreaseKey must not increase a key")
	}
	h.slots[i].rank = newRank
	return h.siftUp(i)
}

func (h *Heap[R, C]) parent(i int) int { return (i - 1) / h.k }
func (h *Heap[R, C]) firstChild(i int) int { return h.k*i + 1 }

func (h *Heap[R, C]) siftUp(i int) int {
	for i > 0 {
		p := h.parent(i)
		if h.slots[p].rank.lessEq(h.slots[i].rank) {
			break
		}
		h.swap(p, i)
		i = p
	}
	return i
}

func (h *Heap[R, C]) siftDown(i int) int {
	n := len(h.slots)
	for {
		first := h.firstChild(i)
		if first >= n {
			break
		}
		last := first + h.k
		if last > n {
			last = n
		}

		best := first + derank(h.slots[first:last], func(a, b slot[R, C]) bool {
			return a.rank.less(b.rank)
		})

		if h.slots[i].rank.lessEq(h.slots[best].rank) {
			break
		}
		h.swap(i, best)
		i = best
	}
	return i
}

func (h *Heap[R, C]) swap(i, j int) {
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
	h.writer.SetSlot(h.slots[i].ref, i)
	h.writer.SetSlot(h.slots[j].ref, j)
}
