package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrTooSmall indicates a grid with a single cell, leaving no room for a distinct goal.
	ErrTooSmall = errors.New("grid: grid needs at least two cells")
	// ErrNonRectangular indicates ASCII rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates an unknown ASCII cell symbol.
	ErrBadCell = errors.New("grid: unknown cell symbol")
	// ErrMissingStart indicates an ASCII layout without a start cell.
	ErrMissingStart = errors.New("grid: no start cell")
	// ErrMissingGoal indicates an ASCII layout without a goal cell.
	ErrMissingGoal = errors.New("grid: no goal cell")
	// ErrDuplicateStart indicates more than one start cell.
	ErrDuplicateStart = errors.New("grid: more than one start cell")
	// ErrDuplicateGoal indicates more than one goal cell.
	ErrDuplicateGoal = errors.New("grid: more than one goal cell")
	// ErrBadProbability indicates a wall probability outside [0,1].
	ErrBadProbability = errors.New("grid: wall probability must be within [0,1]")
)
