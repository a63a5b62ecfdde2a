package maze2d

import "github.com/Dietr1ch/search/search"

// Problem pairs a Grid with a single start and a single goal state,
// implementing search.Problem[State, Action, Cost].
type Problem struct {
	grid  *Grid
	start State
	goal  State
}

// NewProblem builds a Problem over grid with the given start and goal.
func NewProblem(grid *Grid, start, goal State) *Problem {
	return &Problem{grid: grid, start: start, goal: goal}
}

func (p *Problem) Start() State        { return p.start }
func (p *Problem) IsGoal(s State) bool { return s == p.goal }
func (p *Problem) Space() search.Space[State, Action, Cost] { return p.grid }

// Goal returns the problem's single goal state, for heuristics that need a
// reference point.
func (p *Problem) Goal() State { return p.goal }
