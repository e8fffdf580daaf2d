package engine

import (
	"github.com/gammazero/deque"
)

// cascade opens the region reachable from start through zero-count cells,
// breadth first. Each cell enters the queue once, right after it is
// revealed, so the walk is bounded by the board size. Flagged cells are
// skipped and stop the spread through them.
func (e *Engine) cascade(start Coord) []Coord {
	var (
		changed []Coord
		queue   deque.Deque[Coord]
	)
	queue.PushBack(start)

	for queue.Len() != 0 {
		c := queue.PopFront()
		if cell, _ := e.board.Cell(c); cell.AdjacentMines() != 0 {
			continue
		}

		for _, n := range e.board.Neighbors(c) {
			neighbor, _ := e.board.Cell(n)
			if neighbor.IsRevealed() || neighbor.IsFlagged() {
				continue
			}
			if neighbor.IsMine() {
				panic(AssertionError{"mine next to a zero-count cell at " + n.String()})
			}
			if _, err := e.board.Reveal(n); err != nil {
				panic(AssertionError{err.Error()})
			}
			changed = append(changed, n)
			queue.PushBack(n)
		}
	}
	return changed
}
