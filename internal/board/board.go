// Package board provides the minefield grid and primitive cell access.
// It holds no game rules beyond per-cell invariants.
package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a board is requested with a zero
	// or negative width or height.
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	// ErrOutOfBounds is returned for a coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrCellLocked is returned when a mutation would make a cell both
	// flagged and revealed.
	ErrCellLocked = errors.New("cell is locked")
)

// Board is a fixed-size rectangular grid of cells.
type Board struct {
	Width  int
	Height int

	cells    [][]Cell
	mines    int
	revealed int
	flagged  int
}

// New creates a width x height board of hidden, unflagged, mine-free cells.
func New(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}

	cells := make([][]Cell, height)
	for row := range cells {
		cells[row] = make([]Cell, width)
	}

	return &Board{
		Width:  width,
		Height: height,
		cells:  cells,
	}, nil
}

// Size returns the total number of cells.
func (b *Board) Size() int {
	return b.Width * b.Height
}

// InBounds returns true if the coordinate lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Height && c.Col >= 0 && c.Col < b.Width
}

// Cell returns a copy of the cell at c.
func (b *Board) Cell(c Coord) (Cell, error) {
	if !b.InBounds(c) {
		return Cell{}, fmt.Errorf("cell %v: %w", c, ErrOutOfBounds)
	}
	return b.cells[c.Row][c.Col], nil
}

// Neighbors returns the in-bounds neighbors of c in row-major offset order.
// An out-of-bounds c has no neighbors.
func (b *Board) Neighbors(c Coord) []Coord {
	if !b.InBounds(c) {
		return nil
	}
	result := make([]Coord, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := c.Add(off[0], off[1])
		if b.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

// Coords returns every coordinate on the board in row-major order.
func (b *Board) Coords() []Coord {
	result := make([]Coord, 0, b.Size())
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			result = append(result, Coord{Row: row, Col: col})
		}
	}
	return result
}

// SetMine places or removes a mine at c.
func (b *Board) SetMine(c Coord, mine bool) error {
	cell, err := b.cellPtr(c)
	if err != nil {
		return err
	}
	if cell.mine != mine {
		if mine {
			b.mines++
		} else {
			b.mines--
		}
	}
	cell.mine = mine
	return nil
}

// SetAdjacent records the neighboring mine count for c.
func (b *Board) SetAdjacent(c Coord, n int) error {
	cell, err := b.cellPtr(c)
	if err != nil {
		return err
	}
	if n < 0 || n > len(neighborOffsets) {
		return fmt.Errorf("cell %v: adjacent count %d out of range", c, n)
	}
	cell.adjacent = uint8(n)
	return nil
}

// Reveal opens the cell at c. It reports whether the cell changed; revealing
// an already revealed cell is a no-op. Flagged cells cannot be revealed.
func (b *Board) Reveal(c Coord) (bool, error) {
	cell, err := b.cellPtr(c)
	if err != nil {
		return false, err
	}
	if cell.flagged {
		return false, fmt.Errorf("reveal %v: flagged: %w", c, ErrCellLocked)
	}
	if cell.revealed {
		return false, nil
	}
	cell.revealed = true
	b.revealed++
	return true, nil
}

// SetFlagged sets the flag on c. Revealed cells cannot be flagged.
func (b *Board) SetFlagged(c Coord, flagged bool) error {
	cell, err := b.cellPtr(c)
	if err != nil {
		return err
	}
	if cell.flagged == flagged {
		return nil
	}
	if flagged && cell.revealed {
		return fmt.Errorf("flag %v: revealed: %w", c, ErrCellLocked)
	}
	cell.flagged = flagged
	if flagged {
		b.flagged++
	} else {
		b.flagged--
	}
	return nil
}

// CountRevealed returns the number of revealed cells.
func (b *Board) CountRevealed() int {
	return b.revealed
}

// CountFlagged returns the number of flagged cells.
func (b *Board) CountFlagged() int {
	return b.flagged
}

// CountMines returns the number of mined cells.
func (b *Board) CountMines() int {
	return b.mines
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([][]Cell, len(b.cells))
	for row := range b.cells {
		cells[row] = append([]Cell(nil), b.cells[row]...)
	}
	clone := *b
	clone.cells = cells
	return &clone
}

func (b *Board) cellPtr(c Coord) (*Cell, error) {
	if !b.InBounds(c) {
		return nil, fmt.Errorf("cell %v: %w", c, ErrOutOfBounds)
	}
	return &b.cells[c.Row][c.Col], nil
}
