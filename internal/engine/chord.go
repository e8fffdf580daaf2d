package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Chord opens every hidden, unflagged neighbor of a revealed numbered cell
// once the player has flagged as many neighbors as the number says. With any
// other flag count it does nothing. A wrong flag makes the chord hit a mine.
func (e *Engine) Chord(ctx context.Context, c Coord) (Outcome, error) {
	_, span := e.tracer.Start(ctx, "engine.chord", trace.WithAttributes(
		attribute.Int("cell.row", c.Row),
		attribute.Int("cell.col", c.Col),
	))
	defer span.End()

	cell, err := e.board.Cell(c)
	if err != nil {
		return e.reject(span, err)
	}
	if e.state.Terminal() {
		return e.reject(span, fmt.Errorf("chord %v: game is %s: %w", c, e.state, ErrInvalidOperation))
	}
	if !cell.IsRevealed() {
		return e.reject(span, fmt.Errorf("chord %v: not revealed: %w", c, ErrInvalidOperation))
	}

	neighbors := e.board.Neighbors(c)
	flags := 0
	for _, n := range neighbors {
		if neighbor, _ := e.board.Cell(n); neighbor.IsFlagged() {
			flags++
		}
	}
	if cell.AdjacentMines() == 0 || flags != cell.AdjacentMines() {
		return Outcome{State: e.state}, nil
	}

	var changed []Coord
	for _, n := range neighbors {
		// An earlier neighbor's cascade may already have opened this one.
		neighbor, _ := e.board.Cell(n)
		if neighbor.IsRevealed() || neighbor.IsFlagged() {
			continue
		}
		changed = append(changed, e.open(n)...)
		if e.state.Terminal() {
			break
		}
	}

	span.SetAttributes(
		attribute.String("game.state", e.state.String()),
		attribute.Int("reveal.changed", len(changed)),
	)
	e.log.WithFields(logrus.Fields{
		"row":     c.Row,
		"col":     c.Col,
		"state":   e.state.String(),
		"changed": len(changed),
	}).Debug("chord")

	return Outcome{State: e.state, Changed: changed}, nil
}
