package engine

import "github.com/samdwyer/minesweep/internal/board"

// floodFill is a recursive reference for the cascade: the connected zero
// region around start plus its numbered border.
func floodFill(b *board.Board, start board.Coord) map[board.Coord]bool {
	region := map[board.Coord]bool{}
	var visit func(c board.Coord)
	visit = func(c board.Coord) {
		if region[c] {
			return
		}
		cell, _ := b.Cell(c)
		if cell.IsMine() || cell.IsFlagged() || cell.IsRevealed() {
			return
		}
		region[c] = true
		if cell.AdjacentMines() != 0 {
			return
		}
		for _, n := range b.Neighbors(c) {
			visit(n)
		}
	}
	visit(start)
	return region
}

func firstZeroCell(b *board.Board) (board.Coord, bool) {
	for _, c := range b.Coords() {
		cell, _ := b.Cell(c)
		if !cell.IsMine() && cell.AdjacentMines() == 0 {
			return c, true
		}
	}
	return board.Coord{}, false
}
