package search

import (
	"go.uber.org/zap"

	"github.com/Dietr1ch/search/kheap"
)

// Options configures a Search, mirroring the teacher's functional-options
// style (see dijkstra.Option in the package this was adapted from).
type Options struct {
	// AssumeConsistentHeuristic, when true (the default), lets A* skip
	// re-opening closed nodes. Dijkstra ignores this flag: uniform,
	// non-negative costs never benefit from re-opening.
	AssumeConsistentHeuristic bool
	// ExpansionBudget caps the number of nodes popped from the heap before
	// Run gives up with ErrBudgetExhausted. nil means unlimited.
	ExpansionBudget *uint64
	// HeapBranching is the open-set heap's branching factor K.
	HeapBranching kheap.Arity
	// InitialArenaCapacity pre-sizes the node arena. 0 means "use the
	// arena's own default".
	InitialArenaCapacity int
	// Logger receives the kernel's two diagnostics: a warning on
	// CostOverflow, and an info line on each re-open. Defaults to a no-op
	// logger so the hot loop never allocates for logging.
	Logger *zap.Logger
}

// Option mutates an Options value under construction.
type Option func(*Options)

// DefaultOptions returns the kernel's defaults: consistent heuristics
// assumed, no budget, K=4, no arena pre-sizing, a no-op logger.
func DefaultOptions() Options {
	return Options{
		AssumeConsistentHeuristic: true,
		ExpansionBudget:           nil,
		HeapBranching:             kheap.Arity4,
		InitialArenaCapacity:      0,
		Logger:                    zap.NewNop(),
	}
}

// WithAssumeConsistentHeuristic overrides the default "assume consistent"
// behavior; set false to let A* re-open closed nodes under admissible but
// inconsistent heuristics.
func WithAssumeConsistentHeuristic(assume bool) Option {
	return func(o *Options) { o.AssumeConsistentHeuristic = assume }
}

// WithExpansionBudget caps the number of expansions Run will perform.
func WithExpansionBudget(max uint64) Option {
	return func(o *Options) { o.ExpansionBudget = &max }
}

// WithHeapBranching sets the open-set heap's branching factor. Panics (via
// kheap.New, at Search construction) unless k is one of 2, 4 or 8.
func WithHeapBranching(k kheap.Arity) Option {
	return func(o *Options) { o.HeapBranching = k }
}

// WithInitialArenaCapacity pre-sizes the node arena to avoid chunk growth
// during a search whose node count is roughly known in advance.
func WithInitialArenaCapacity(n int) Option {
	return func(o *Options) { o.InitialArenaCapacity = n }
}

// WithLogger installs a structured logger for CostOverflow and re-open
// diagnostics. Pass zap.NewNop() (the default) to silence them.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}
