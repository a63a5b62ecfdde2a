package maze2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dietr1ch/search/search"
	"github.com/Dietr1ch/search/maze2d"
)

// The five 5x5 mazes below are the canonical end-to-end scenarios this
// kernel is checked against: unit-cost orthogonal moves, expected path
// lengths in expectedLen. This package charges OrthogonalCost (100) per step
// rather than 1, so expected costs are scaled by that factor.
var mazes = []struct {
	name        string
	ascii       string
	expectedLen int // steps, -1 if no path
}{
	{
		name: "scenario1",
		ascii: "S....\n" +
			".###.\n" +
			"..#..\n" +
			".###.\n" +
			"....G\n",
		expectedLen: 8,
	},
	{
		name: "scenario2",
		ascii: "S#...\n" +
			".#.#.\n" +
			".#.#.\n" +
			".#.#.\n" +
			"...#G\n",
		expectedLen: 16,
	},
	{
		name: "scenario3_no_path",
		ascii: "S###.\n" +
			"#.#..\n" +
			".#.#.\n" +
			"..#.#\n" +
			"....G\n",
		expectedLen: -1,
	},
	{
		name: "scenario4_no_path",
		ascii: "S....\n" +
			"####.\n" +
			"....#\n" +
			".####\n" +
			"S...G\n",
		expectedLen: -1,
	},
	{
		name: "scenario5_no_path",
		ascii: "S.#..\n" +
			"###..\n" +
			"..#..\n" +
			"..#.G\n" +
			".....\n",
		expectedLen: -1,
	},
}

func TestDijkstra_CanonicalScenarios(t *testing.T) {
	for _, m := range mazes {
		t.Run(m.name, func(t *testing.T) {
			grid, start, goal, err := maze2d.ParseGrid(m.ascii, maze2d.Conn4)
			require.NoError(t, err)

			problem := maze2d.NewProblem(grid, start, goal)
			s := search.NewDijkstra[maze2d.State, maze2d.Action, maze2d.Cost](problem)

			path, found, err := s.Run()
			require.NoError(t, err)

			if m.expectedLen < 0 {
				assert.False(t, found)
				return
			}
			require.True(t, found)
			assert.Len(t, path.Steps, m.expectedLen)
			assert.Equal(t, maze2d.Cost(m.expectedLen)*maze2d.OrthogonalCost, path.Cost)
		})
	}
}

func TestAStar_ManhattanNeverExpandsMoreThanDijkstra(t *testing.T) {
	for _, m := range mazes {
		if m.expectedLen < 0 {
			continue
		}
		t.Run(m.name, func(t *testing.T) {
			grid, start, goal, err := maze2d.ParseGrid(m.ascii, maze2d.Conn4)
			require.NoError(t, err)
			problem := maze2d.NewProblem(grid, start, goal)

			dijkstra := search.NewDijkstra[maze2d.State, maze2d.Action, maze2d.Cost](problem)
			dPath, dFound, err := dijkstra.Run()
			require.NoError(t, err)
			require.True(t, dFound)

			astar := search.NewAStar[maze2d.State, maze2d.Action, maze2d.Cost](
				problem, maze2d.ManhattanHeuristic{Goal: goal})
			aPath, aFound, err := astar.Run()
			require.NoError(t, err)
			require.True(t, aFound)

			assert.Equal(t, dPath.Cost, aPath.Cost)
			assert.LessOrEqual(t, astar.Stats().NodesExpanded, dijkstra.Stats().NodesExpanded)
		})
	}
}

func TestAStar_ZeroHeuristicExpandsSameSetAsDijkstra(t *testing.T) {
	grid, start, goal, err := maze2d.ParseGrid(mazes[0].ascii, maze2d.Conn4)
	require.NoError(t, err)
	problem := maze2d.NewProblem(grid, start, goal)

	dijkstra := search.NewDijkstra[maze2d.State, maze2d.Action, maze2d.Cost](problem)
	_, _, err = dijkstra.Run()
	require.NoError(t, err)

	astar := search.NewAStar[maze2d.State, maze2d.Action, maze2d.Cost](problem, nil)
	_, _, err = astar.Run()
	require.NoError(t, err)

	assert.Equal(t, dijkstra.Stats().NodesExpanded, astar.Stats().NodesExpanded)
}

func TestParseGrid_RejectsNonRectangular(t *testing.T) {
	_, _, _, err := maze2d.ParseGrid("S..\n.G\n", maze2d.Conn4)
	assert.ErrorIs(t, err, maze2d.ErrNonRectangular)
}

func TestParseGrid_RejectsMissingGoal(t *testing.T) {
	_, _, _, err := maze2d.ParseGrid("S..\n...\n", maze2d.Conn4)
	assert.ErrorIs(t, err, maze2d.ErrNoGoal)
}

func TestOctileHeuristic_AdmissibleUnderConn8(t *testing.T) {
	grid, start, goal, err := maze2d.ParseGrid(mazes[0].ascii, maze2d.Conn8)
	require.NoError(t, err)
	problem := maze2d.NewProblem(grid, start, goal)

	astar := search.NewAStar[maze2d.State, maze2d.Action, maze2d.Cost](
		problem, maze2d.OctileHeuristic{Goal: goal})
	path, found, err := astar.Run()
	require.NoError(t, err)
	require.True(t, found)
	assert.LessOrEqual(t, path.Cost, maze2d.Cost(8)*maze2d.OrthogonalCost)
	_ = start
}
