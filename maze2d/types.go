package maze2d

import "fmt"

// Cost is the edge weight type used throughout this package: orthogonal
// moves cost OrthogonalCost, diagonal moves cost DiagonalCost.
type Cost = uint32

const (
	// OrthogonalCost is the cost of a horizontal or vertical step.
	OrthogonalCost Cost = 100
	// DiagonalCost approximates OrthogonalCost*sqrt(2) as an integer, so
	// A* can stay on unsigned integer Costs instead of floats.
	DiagonalCost Cost = 141
)

// State packs a cell's (X, Y) grid coordinates into one comparable value,
// so the search arena and state map hash a single uint64 per state instead
// of a two-field struct.
type State uint64

func newState(x, y int32) State {
	return State(uint64(uint32(x))<<32 | uint64(uint32(y)))
}

// NewState packs (x, y) into a State, for callers outside this package
// that need to address a specific cell (e.g. rendering a solved grid).
func NewState(x, y int32) State { return newState(x, y) }

// X returns the state's column.
func (s State) X() int32 { return int32(uint32(s >> 32)) }

// Y returns the state's row.
func (s State) Y() int32 { return int32(uint32(s)) }

func (s State) String() string { return fmt.Sprintf("(%d,%d)", s.X(), s.Y()) }

// Action is one of the eight compass directions a move can take.
type Action uint8

const (
	Up Action = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

var actionNames = [...]string{"Up", "Down", "Left", "Right", "UpLeft", "UpRight", "DownLeft", "DownRight"}

func (a Action) String() string {
	if int(a) < 0 || int(a) >= len(actionNames) {
		return "Invalid"
	}
	return actionNames[a]
}

// delta is the (dx, dy) a move applies, and its Cost.
type delta struct {
	dx, dy int32
	cost   Cost
	action Action
}

// orthogonalDeltas and diagonalDeltas are kept separate so Connectivity
// can select 4- or 8-directional movement without slicing a shared table.
var orthogonalDeltas = [4]delta{
	{0, -1, OrthogonalCost, Up},
	{0, 1, OrthogonalCost, Down},
	{-1, 0, OrthogonalCost, Left},
	{1, 0, OrthogonalCost, Right},
}

var diagonalDeltas = [4]delta{
	{-1, -1, DiagonalCost, UpLeft},
	{1, -1, DiagonalCost, UpRight},
	{-1, 1, DiagonalCost, DownLeft},
	{1, 1, DiagonalCost, DownRight},
}

// Connectivity selects which neighbor set Grid.Successors considers,
// mirroring gridgraph.Connectivity.
type Connectivity int

const (
	// Conn4 allows only orthogonal moves.
	Conn4 Connectivity = iota
	// Conn8 allows orthogonal and diagonal moves.
	Conn8
)

func (c Connectivity) deltas() []delta {
	if c == Conn8 {
		all := make([]delta, 0, 8)
		all = append(all, orthogonalDeltas[:]...)
		all = append(all, diagonalDeltas[:]...)
		return all
	}
	return orthogonalDeltas[:]
}
