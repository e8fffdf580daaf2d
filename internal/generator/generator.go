// Package generator places mines on a board.
package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minesweep/internal/board"
	"github.com/samdwyer/minesweep/internal/telemetry"
)

var (
	// ErrTooManyMines is returned when the requested mines do not fit in the
	// cells left after exclusions.
	ErrTooManyMines = errors.New("too many mines")
	// ErrMinesPlaced is returned when the board already holds mines.
	ErrMinesPlaced = errors.New("mines already placed")
)

// Rand is the random source used for placement. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// PlaceMines puts mineCount mines on b, chosen uniformly from the cells not in
// excluded, then recomputes every adjacency count. The board is left
// untouched when an error is returned.
func PlaceMines(ctx context.Context, b *board.Board, mineCount int, excluded mapset.Set[board.Coord], rng Rand) error {
	_, span := telemetry.TracerFrom(ctx, "generator").Start(ctx, "generator.place_mines")
	defer span.End()

	startTime := time.Now()

	if b.CountMines() > 0 {
		return ErrMinesPlaced
	}

	var outside error
	excluded.Each(func(c board.Coord) {
		if outside == nil && !b.InBounds(c) {
			outside = fmt.Errorf("excluded %v: %w", c, board.ErrOutOfBounds)
		}
	})
	if outside != nil {
		return outside
	}

	candidates := make([]board.Coord, 0, b.Size())
	for _, c := range b.Coords() {
		if !excluded.Has(c) {
			candidates = append(candidates, c)
		}
	}

	if mineCount < 0 || mineCount > len(candidates) {
		return fmt.Errorf("%d mines for %d free cells: %w", mineCount, len(candidates), ErrTooManyMines)
	}

	// Partial Fisher-Yates: the first mineCount slots end up a uniform sample.
	for i := 0; i < mineCount; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		if err := b.SetMine(candidates[i], true); err != nil {
			return err
		}
	}

	Recount(b)

	span.SetAttributes(
		attribute.Int("board.width", b.Width),
		attribute.Int("board.height", b.Height),
		attribute.Int("board.mines", mineCount),
		attribute.Int("board.excluded", excluded.Size()),
		attribute.Int64("generator.duration_us", time.Since(startTime).Microseconds()),
	)
	return nil
}

// Recount sets every cell's adjacency count to the number of mines among its
// neighbors.
func Recount(b *board.Board) {
	for _, c := range b.Coords() {
		b.SetAdjacent(c, CountAdjacent(b, c))
	}
}

// CountAdjacent counts the mines around c.
func CountAdjacent(b *board.Board, c board.Coord) int {
	count := 0
	for _, n := range b.Neighbors(c) {
		if cell, _ := b.Cell(n); cell.IsMine() {
			count++
		}
	}
	return count
}
