package engine

import (
	"errors"

	"github.com/samdwyer/minesweep/internal/board"
	"github.com/samdwyer/minesweep/internal/generator"
)

var (
	// ErrInvalidDimensions is returned by New for a zero width or height.
	ErrInvalidDimensions = board.ErrInvalidDimensions
	// ErrTooManyMines is returned by New when the mines would fill the board.
	ErrTooManyMines = generator.ErrTooManyMines
	// ErrOutOfBounds is returned for a coordinate outside the board.
	ErrOutOfBounds = board.ErrOutOfBounds
	// ErrInvalidOperation is returned when the game state or the target cell
	// does not allow the operation.
	ErrInvalidOperation = errors.New("invalid operation")
)

// AssertionError reports a broken engine invariant. It is raised with panic
// and never returned for caller input.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return "engine invariant violated: " + e.message
}
