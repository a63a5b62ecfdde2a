package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dietr1ch/search/search"
)

// graphSpace is a tiny directed, weighted graph keyed by string node names,
// used the way the teacher's dijkstra package tests itself: a hand-built
// adjacency list with a known shortest path.
type graphSpace struct {
	edges map[string][]search.Successor[string, string, uint32]
}

func (g graphSpace) Successors(s string) []search.Successor[string, string, uint32] {
	return g.edges[s]
}

type graphProblem struct {
	space graphSpace
	start string
	goal  string
}

func (p graphProblem) Start() string          { return p.start }
func (p graphProblem) IsGoal(s string) bool   { return s == p.goal }
func (p graphProblem) Space() search.Space[string, string, uint32] { return p.space }

func edge(to string, action string, cost uint32) search.Successor[string, string, uint32] {
	return search.Successor[string, string, uint32]{Action: action, State: to, Cost: cost}
}

// diamond is A -> {B, C} -> D, with the B route cheaper overall.
func diamond() graphSpace {
	return graphSpace{edges: map[string][]search.Successor[string, string, uint32]{
		"A": {edge("B", "A->B", 1), edge("C", "A->C", 4)},
		"B": {edge("D", "B->D", 1)},
		"C": {edge("D", "C->D", 1)},
		"D": {},
	}}
}

func TestDijkstra_FindsCheapestPath(t *testing.T) {
	problem := graphProblem{space: diamond(), start: "A", goal: "D"}
	s := search.NewDijkstra[string, string, uint32](problem)

	path, found, err := s.Run()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint32(2), path.Cost)
	require.Len(t, path.Steps, 2)
	assert.Equal(t, "A->B", path.Steps[0].Action)
	assert.Equal(t, "B->D", path.Steps[1].Action)
	assert.Equal(t, "D", path.Steps[1].State)
}

func TestDijkstra_NoPathIsNotAnError(t *testing.T) {
	space := graphSpace{edges: map[string][]search.Successor[string, string, uint32]{
		"A": {edge("B", "A->B", 1)},
		"B": {},
	}}
	problem := graphProblem{space: space, start: "A", goal: "Z"}
	s := search.NewDijkstra[string, string, uint32](problem)

	path, found, err := s.Run()
	require.NoError(t, err)
	require.False(t, found)
	assert.Zero(t, path.Cost)
}

func TestDijkstra_ExpansionBudgetExhausted(t *testing.T) {
	problem := graphProblem{space: diamond(), start: "A", goal: "D"}
	s := search.NewDijkstra[string, string, uint32](problem, search.WithExpansionBudget(0))

	_, found, err := s.Run()
	require.ErrorIs(t, err, search.ErrBudgetExhausted)
	assert.False(t, found)
}

// tableHeuristic is a heuristic expressed as a per-state lookup table,
// enough to exercise A*'s f = g+h ranking without a real coordinate domain.
type tableHeuristic map[string]uint32

func (h tableHeuristic) Estimate(s string) uint32 { return h[s] }

func TestAStar_MatchesDijkstraUnderZeroHeuristic(t *testing.T) {
	problem := graphProblem{space: diamond(), start: "A", goal: "D"}
	s := search.NewAStar[string, string, uint32](problem, nil)

	path, found, err := s.Run()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint32(2), path.Cost)
}

func TestAStar_ConsistentHeuristicFindsOptimalPath(t *testing.T) {
	problem := graphProblem{space: diamond(), start: "A", goal: "D"}
	h := tableHeuristic{"A": 2, "B": 1, "C": 1, "D": 0}
	s := search.NewAStar[string, string, uint32](problem, h)

	path, found, err := s.Run()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint32(2), path.Cost)
}

func TestAStar_InconsistentHeuristicReopensWhenAllowed(t *testing.T) {
	// C's heuristic is admissible (C is 4 away from D) but inconsistent (it
	// exceeds the edge C->B plus B's estimate), so A* closes B through the
	// direct, more expensive edge before expanding C. The cheaper route
	// through C then re-opens B, and the path to D goes through it.
	space := graphSpace{edges: map[string][]search.Successor[string, string, uint32]{
		"A": {edge("B", "A->B", 3), edge("C", "A->C", 1)},
		"C": {edge("B", "C->B", 1)},
		"B": {edge("D", "B->D", 3)},
		"D": {},
	}}
	problem := graphProblem{space: space, start: "A", goal: "D"}
	h := tableHeuristic{"A": 0, "B": 0, "C": 4, "D": 0}

	s := search.NewAStar[string, string, uint32](problem, h, search.WithAssumeConsistentHeuristic(false))
	path, found, err := s.Run()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint32(5), path.Cost)
	assert.Equal(t, uint64(1), s.Stats().NodesReopened)
}

func TestSearch_CostOverflowIsSkippedNotFatal(t *testing.T) {
	space := graphSpace{edges: map[string][]search.Successor[string, string, uint32]{
		"A": {edge("B", "A->B", 1), edge("C", "A->C", 1)},
		"B": {edge("D", "B->D", ^uint32(0))},
		"C": {edge("D", "C->D", 1)},
		"D": {},
	}}
	problem := graphProblem{space: space, start: "A", goal: "D"}
	s := search.NewDijkstra[string, string, uint32](problem)

	path, found, err := s.Run()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint32(2), path.Cost)
	assert.Equal(t, uint64(1), s.Stats().CostOverflows)
}
