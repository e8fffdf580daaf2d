package engine

// CellView is what a frontend may know about one cell.
type CellView struct {
	Revealed bool
	Flagged  bool
	// Mine is set only for revealed cells or once the game is over.
	Mine bool
	// Adjacent is set only for revealed cells.
	Adjacent int
}

// View is a read-only snapshot of the board. Hidden mines are withheld until
// the game ends.
type View struct {
	Width    int
	Height   int
	Mines    int
	Flagged  int
	Revealed int
	State    GameState
	// Exploded is the mine that lost the game, if any.
	Exploded *Coord
	Cells    [][]CellView
}

// At returns the view of the cell at c, or a zero CellView outside the board.
func (v View) At(c Coord) CellView {
	if c.Row < 0 || c.Row >= v.Height || c.Col < 0 || c.Col >= v.Width {
		return CellView{}
	}
	return v.Cells[c.Row][c.Col]
}

// View returns a snapshot of the current board. The snapshot shares no
// storage with the engine.
func (e *Engine) View() View {
	over := e.state.Terminal()

	cells := make([][]CellView, e.height)
	for row := range cells {
		cells[row] = make([]CellView, e.width)
		for col := range cells[row] {
			cell, _ := e.board.Cell(Coord{Row: row, Col: col})
			cv := CellView{
				Revealed: cell.IsRevealed(),
				Flagged:  cell.IsFlagged(),
			}
			if cell.IsRevealed() || over {
				cv.Mine = cell.IsMine()
			}
			if cell.IsRevealed() {
				cv.Adjacent = cell.AdjacentMines()
			}
			cells[row][col] = cv
		}
	}

	v := View{
		Width:    e.width,
		Height:   e.height,
		Mines:    e.mineCount,
		Flagged:  e.board.CountFlagged(),
		Revealed: e.board.CountRevealed(),
		State:    e.state,
		Cells:    cells,
	}
	if e.exploded != nil {
		exploded := *e.exploded
		v.Exploded = &exploded
	}
	return v
}
