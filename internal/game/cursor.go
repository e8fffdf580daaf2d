package game

import "github.com/samdwyer/minesweep/internal/engine"

// Cursor is the selected cell on the board.
type Cursor struct {
	Row, Col int
}

// NewCursor places the cursor at the centre of a board.
func NewCursor(width, height int) *Cursor {
	return &Cursor{Row: height / 2, Col: width / 2}
}

// Move shifts the cursor by the given delta, staying inside the board.
func (c *Cursor) Move(dRow, dCol, width, height int) {
	c.Row = clamp(c.Row+dRow, 0, height-1)
	c.Col = clamp(c.Col+dCol, 0, width-1)
}

// Coord returns the cursor position as a board coordinate.
func (c *Cursor) Coord() engine.Coord {
	return engine.Coord{Row: c.Row, Col: c.Col}
}

// Set moves the cursor to c.
func (c *Cursor) Set(at engine.Coord) {
	c.Row, c.Col = at.Row, at.Col
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
