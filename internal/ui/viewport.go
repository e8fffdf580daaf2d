package ui

import "github.com/samdwyer/minesweep/internal/engine"

// Viewport is the window of the board that fits on the screen. Row and Col
// are the first visible cell; Rows and Cols the number of visible cells.
type Viewport struct {
	Row, Col   int
	Rows, Cols int
}

// Fit sizes the viewport to at most rows x cols cells of a height x width
// board and scrolls it so cursor stays visible, one cell away from the edge
// while the board continues past it.
func (v *Viewport) Fit(rows, cols, height, width int, cursor engine.Coord) {
	v.Rows = clamp(rows, 1, height)
	v.Cols = clamp(cols, 1, width)
	v.Row = follow(cursor.Row, v.Row, v.Rows, height)
	v.Col = follow(cursor.Col, v.Col, v.Cols, width)
}

// Contains reports whether c is inside the viewport.
func (v Viewport) Contains(c engine.Coord) bool {
	return c.Row >= v.Row && c.Row < v.Row+v.Rows && c.Col >= v.Col && c.Col < v.Col+v.Cols
}

// Screen returns the terminal position of the left column of cell c.
func (v Viewport) Screen(c engine.Coord) (x, y int) {
	return boardLeft + (c.Col-v.Col)*cellWidth, boardTop + c.Row - v.Row
}

// CellAt maps a terminal position to the visible board cell under it.
func (v Viewport) CellAt(x, y int) (engine.Coord, bool) {
	if x < boardLeft || y < boardTop {
		return engine.Coord{}, false
	}
	c := engine.Coord{Row: v.Row + y - boardTop, Col: v.Col + (x-boardLeft)/cellWidth}
	return c, v.Contains(c)
}

// More reports which edges have board cells beyond them.
func (v Viewport) More(height, width int) (up, down, left, right bool) {
	return v.Row > 0, v.Row+v.Rows < height, v.Col > 0, v.Col+v.Cols < width
}

// follow returns the offset that keeps pos inside a window of size visible
// over total cells, with a one-cell margin when the window allows it.
func follow(pos, offset, visible, total int) int {
	margin := 1
	if visible < 3 {
		margin = 0
	}
	if pos < offset+margin {
		offset = pos - margin
	}
	if pos > offset+visible-1-margin {
		offset = pos - visible + 1 + margin
	}
	return clamp(offset, 0, total-visible)
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
