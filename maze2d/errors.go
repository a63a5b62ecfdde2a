package maze2d

import "errors"

// Sentinel errors returned while parsing or constructing a Grid/Problem.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze2d: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze2d: all rows must have the same length")
	// ErrInvalidCell indicates a character outside the recognized cell
	// alphabet ('.', ' ', '#', 'S', 'G').
	ErrInvalidCell = errors.New("maze2d: invalid cell character")
	// ErrNoStart indicates the parsed grid has no 'S' cell.
	ErrNoStart = errors.New("maze2d: grid has no start cell")
	// ErrNoGoal indicates the parsed grid has no 'G' cell.
	ErrNoGoal = errors.New("maze2d: grid has no goal cell")
)
