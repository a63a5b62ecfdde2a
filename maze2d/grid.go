package maze2d

import (
	"fmt"
	"strings"

	"github.com/Dietr1ch/search/search"
)

// Cell is one square of a Grid.
type Cell int

const (
	Empty Cell = iota
	Wall
)

// Grid is a rectangular field of Cells, walked by Successors
// under a chosen Connectivity. Cell (0,0) is the top-left corner, Y
// increasing downward — matching how ParseGrid reads input line by line.
type Grid struct {
	width, height int
	cells         []Cell // row-major, width*height
	conn          Connectivity
}

// NewGrid builds a Grid of the given dimensions, every cell Empty.
func NewGrid(width, height int, conn Connectivity) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		conn:   conn,
	}
}

// Width reports the grid's column count.
func (g *Grid) Width() int { return g.width }

// Height reports the grid's row count.
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(x, y int32) int { return int(y)*g.width + int(x) }

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int32) bool {
	return x >= 0 && y >= 0 && int(x) < g.width && int(y) < g.height
}

// At returns the Cell at (x, y). Panics if out of bounds.
func (g *Grid) At(x, y int32) Cell {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("maze2d: At(%d,%d) out of bounds for %dx%d grid", x, y, g.width, g.height))
	}
	return g.cells[g.index(x, y)]
}

// Set writes the Cell at (x, y). Panics if out of bounds.
func (g *Grid) Set(x, y int32, c Cell) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("maze2d: Set(%d,%d) out of bounds for %dx%d grid", x, y, g.width, g.height))
	}
	g.cells[g.index(x, y)] = c
}

// Successors implements search.Space[State, Action, Cost]: every
// in-bounds, non-Wall neighbor reachable under the grid's Connectivity.
func (g *Grid) Successors(s State) []search.Successor[State, Action, Cost] {
	deltas := g.conn.deltas()
	out := make([]search.Successor[State, Action, Cost], 0, len(deltas))
	x, y := s.X(), s.Y()
	for _, d := range deltas {
		nx, ny := x+d.dx, y+d.dy
		if !g.InBounds(nx, ny) {
			continue
		}
		if g.At(nx, ny) == Wall {
			continue
		}
		out = append(out, search.Successor[State, Action, Cost]{
			Action: d.action,
			State:  newState(nx, ny),
			Cost:   d.cost,
		})
	}
	return out
}

// ParseGrid reads an ASCII maze: '.' or ' ' is Empty, '#' is Wall, 'S'
// marks the start, 'G' marks the goal — the same alphabet the original
// maze_2d problem's text format uses. Every line must have equal width;
// at least one row and one column are required. Only the first 'S' and
// the first 'G' encountered (reading top-to-bottom, left-to-right) are
// used; any further occurrence is treated as an ordinary open cell.
func ParseGrid(text string, conn Connectivity) (grid *Grid, start, goal State, err error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, 0, 0, ErrEmptyGrid
	}

	width := len(lines[0])
	for _, line := range lines {
		if len(line) != width {
			return nil, 0, 0, ErrNonRectangular
		}
	}

	grid = NewGrid(width, len(lines), conn)
	haveStart, haveGoal := false, false

	for y, line := range lines {
		for x, ch := range line {
			pos := newState(int32(x), int32(y))
			switch ch {
			case '.', ' ':
				grid.Set(int32(x), int32(y), Empty)
			case '#':
				grid.Set(int32(x), int32(y), Wall)
			case 'S':
				grid.Set(int32(x), int32(y), Empty)
				if !haveStart {
					start, haveStart = pos, true
				}
			case 'G':
				grid.Set(int32(x), int32(y), Empty)
				if !haveGoal {
					goal, haveGoal = pos, true
				}
			default:
				return nil, 0, 0, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidCell, ch, x, y)
			}
		}
	}

	if !haveStart {
		return nil, 0, 0, ErrNoStart
	}
	if !haveGoal {
		return nil, 0, 0, ErrNoGoal
	}
	return grid, start, goal, nil
}
