package board

// Cell is one grid position. Its fields are only changed through Board
// methods so the board's counters and invariants stay consistent.
type Cell struct {
	mine     bool
	revealed bool
	flagged  bool
	adjacent uint8
}

// IsMine reports whether the cell holds a mine.
func (c Cell) IsMine() bool {
	return c.mine
}

// IsRevealed reports whether the cell has been opened.
func (c Cell) IsRevealed() bool {
	return c.revealed
}

// IsFlagged reports whether the player has flagged the cell.
func (c Cell) IsFlagged() bool {
	return c.flagged
}

// AdjacentMines returns the number of mines among the cell's neighbors (0..8).
func (c Cell) AdjacentMines() int {
	return int(c.adjacent)
}
