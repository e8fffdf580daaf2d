// Package engine holds the rules of the game: deferred mine placement, reveal
// with cascade, flagging, chording and win/loss evaluation.
//
// An Engine is not safe for concurrent use; frontends with several input
// sources must serialize their calls.
package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minesweep/internal/board"
	"github.com/samdwyer/minesweep/internal/generator"
)

// Coord addresses a cell by row and column.
type Coord = board.Coord

// Outcome describes the result of a reveal or chord.
type Outcome struct {
	State GameState
	// Changed lists the cells revealed by the operation, in reveal order.
	Changed []Coord
}

// Engine owns one game's board and state.
type Engine struct {
	width     int
	height    int
	mineCount int

	board    *board.Board
	state    GameState
	exploded *Coord

	rng    generator.Rand
	policy generator.Policy
	log    logrus.FieldLogger
	tracer trace.Tracer
}

// New creates a game with the given dimensions and mine count. Mines are
// placed on the first reveal.
func New(width, height, mineCount int, opts ...Option) (*Engine, error) {
	b, err := board.New(width, height)
	if err != nil {
		return nil, err
	}
	if mineCount < 0 || mineCount >= b.Size() {
		return nil, fmt.Errorf("%d mines on a %dx%d board: %w", mineCount, width, height, ErrTooManyMines)
	}

	e := &Engine{
		width:     width,
		height:    height,
		mineCount: mineCount,
		board:     b,
		state:     NotStarted,
	}
	defaults(e)
	for _, opt := range opts {
		opt(e)
	}

	e.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  mineCount,
		"policy": e.policy.String(),
	}).Debug("new game")
	return e, nil
}

// NewGame discards the current board and starts over with the same
// dimensions and mine count.
func (e *Engine) NewGame() {
	b, err := board.New(e.width, e.height)
	if err != nil {
		panic(AssertionError{"board dimensions became invalid: " + err.Error()})
	}
	e.board = b
	e.state = NotStarted
	e.exploded = nil
	e.log.Debug("new game")
}

// State returns the current game state.
func (e *Engine) State() GameState {
	return e.state
}

// Width returns the number of columns.
func (e *Engine) Width() int { return e.width }

// Height returns the number of rows.
func (e *Engine) Height() int { return e.height }

// MineCount returns the number of mines in the game.
func (e *Engine) MineCount() int { return e.mineCount }

// FlagsRemaining returns mines minus placed flags. It goes negative when the
// player over-flags.
func (e *Engine) FlagsRemaining() int {
	return e.mineCount - e.board.CountFlagged()
}

// Reveal opens the cell at c. The first reveal of a game places the mines
// around it. A revealed cell with no neighboring mines opens its neighbors,
// transitively.
func (e *Engine) Reveal(ctx context.Context, c Coord) (Outcome, error) {
	ctx, span := e.tracer.Start(ctx, "engine.reveal", trace.WithAttributes(
		attribute.Int("cell.row", c.Row),
		attribute.Int("cell.col", c.Col),
	))
	defer span.End()

	cell, err := e.board.Cell(c)
	if err != nil {
		return e.reject(span, err)
	}
	if e.state.Terminal() {
		return e.reject(span, fmt.Errorf("reveal %v: game is %s: %w", c, e.state, ErrInvalidOperation))
	}
	if cell.IsRevealed() {
		return e.reject(span, fmt.Errorf("reveal %v: already revealed: %w", c, ErrInvalidOperation))
	}
	if cell.IsFlagged() {
		return e.reject(span, fmt.Errorf("reveal %v: flagged: %w", c, ErrInvalidOperation))
	}

	if e.state == NotStarted {
		if err := e.generate(ctx, c); err != nil {
			return e.reject(span, err)
		}
		e.state = InProgress
	}

	changed := e.open(c)

	span.SetAttributes(
		attribute.String("game.state", e.state.String()),
		attribute.Int("reveal.changed", len(changed)),
	)
	e.log.WithFields(logrus.Fields{
		"row":     c.Row,
		"col":     c.Col,
		"state":   e.state.String(),
		"changed": len(changed),
	}).Debug("reveal")

	return Outcome{State: e.state, Changed: changed}, nil
}

// ToggleFlag flips the flag on an unrevealed cell. Flags may be placed before
// the first reveal.
func (e *Engine) ToggleFlag(ctx context.Context, c Coord) error {
	_, span := e.tracer.Start(ctx, "engine.toggle_flag", trace.WithAttributes(
		attribute.Int("cell.row", c.Row),
		attribute.Int("cell.col", c.Col),
	))
	defer span.End()

	cell, err := e.board.Cell(c)
	if err != nil {
		_, err = e.reject(span, err)
		return err
	}
	if e.state.Terminal() {
		_, err = e.reject(span, fmt.Errorf("flag %v: game is %s: %w", c, e.state, ErrInvalidOperation))
		return err
	}
	if cell.IsRevealed() {
		_, err = e.reject(span, fmt.Errorf("flag %v: already revealed: %w", c, ErrInvalidOperation))
		return err
	}

	if err := e.board.SetFlagged(c, !cell.IsFlagged()); err != nil {
		panic(AssertionError{err.Error()})
	}

	e.log.WithFields(logrus.Fields{
		"row":     c.Row,
		"col":     c.Col,
		"flagged": !cell.IsFlagged(),
	}).Debug("toggle flag")
	return nil
}

// Open reveals an unrevealed cell and chords a revealed one, so a frontend
// can drive both from a single input.
func (e *Engine) Open(ctx context.Context, c Coord) (Outcome, error) {
	cell, err := e.board.Cell(c)
	if err != nil {
		return Outcome{State: e.state}, err
	}
	if cell.IsRevealed() {
		return e.Chord(ctx, c)
	}
	return e.Reveal(ctx, c)
}

// generate places the mines for a first click at c.
func (e *Engine) generate(ctx context.Context, c Coord) error {
	zone, err := generator.SafeZone(e.board, c, e.policy, e.mineCount)
	if err != nil {
		return err
	}
	if err := generator.PlaceMines(ctx, e.board, e.mineCount, zone, e.rng); err != nil {
		return err
	}
	if e.board.CountMines() != e.mineCount {
		panic(AssertionError{fmt.Sprintf("placed %d mines, want %d", e.board.CountMines(), e.mineCount)})
	}
	return nil
}

// open reveals c, which must be hidden and unflagged, then applies the loss,
// cascade and win rules. It returns every cell it revealed.
func (e *Engine) open(c Coord) []Coord {
	if _, err := e.board.Reveal(c); err != nil {
		panic(AssertionError{err.Error()})
	}
	changed := []Coord{c}

	cell, _ := e.board.Cell(c)
	if cell.IsMine() {
		e.state = Lost
		exploded := c
		e.exploded = &exploded
		return changed
	}

	changed = append(changed, e.cascade(c)...)

	safe := e.board.Size() - e.mineCount
	switch revealed := e.board.CountRevealed(); {
	case revealed == safe:
		e.state = Won
	case revealed > safe:
		panic(AssertionError{fmt.Sprintf("%d cells revealed, only %d are safe", revealed, safe)})
	}
	return changed
}

func (e *Engine) reject(span trace.Span, err error) (Outcome, error) {
	span.RecordError(err)
	e.log.WithError(err).Debug("rejected")
	return Outcome{State: e.state}, err
}
