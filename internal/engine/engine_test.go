package engine

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/minesweep/internal/generator"
)

// newFixedEngine builds an in-progress game from a layout where '*' marks a mine.
func newFixedEngine(t *testing.T, layout ...string) *Engine {
	t.Helper()

	mines := 0
	for _, row := range layout {
		mines += strings.Count(row, "*")
	}

	e, err := New(len(layout[0]), len(layout), mines, WithSeed(1))
	require.NoError(t, err)

	for r, row := range layout {
		for c, ch := range row {
			if ch == '*' {
				require.NoError(t, e.board.SetMine(Coord{Row: r, Col: c}, true))
			}
		}
	}
	generator.Recount(e.board)
	e.state = InProgress
	return e
}

func TestGameStateString(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
		terminal bool
	}{
		{NotStarted, "not_started", false},
		{InProgress, "in_progress", false},
		{Won, "won", true},
		{Lost, "lost", true},
		{GameState(99), "unknown", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String())
		assert.Equal(t, tt.terminal, tt.state.Terminal(), "%s.Terminal()", tt.expected)
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New(0, 5, 1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = New(5, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = New(8, 8, 64)
	assert.ErrorIs(t, err, ErrTooManyMines)

	_, err = New(8, 8, -1)
	assert.ErrorIs(t, err, ErrTooManyMines)

	e, err := New(8, 8, 63)
	require.NoError(t, err)
	assert.Equal(t, NotStarted, e.State())
	assert.Equal(t, 63, e.MineCount())
	assert.Equal(t, 8, e.Width())
	assert.Equal(t, 8, e.Height())
}

func TestSingleCellBoardWinsOnFirstReveal(t *testing.T) {
	e, err := New(1, 1, 0)
	require.NoError(t, err)

	out, err := e.Reveal(context.Background(), Coord{Row: 0, Col: 0})
	require.NoError(t, err)

	assert.Equal(t, Won, out.State)
	assert.Equal(t, Won, e.State())
	assert.Equal(t, []Coord{{Row: 0, Col: 0}}, out.Changed)
}

func TestFirstRevealIsSafe(t *testing.T) {
	for _, policy := range []generator.Policy{generator.SafeCell, generator.SafeNeighborhood} {
		for seed := int64(1); seed <= 50; seed++ {
			e, err := New(8, 8, 10, WithSeed(seed), WithSafeZone(policy))
			require.NoError(t, err)
			require.Equal(t, NotStarted, e.State())

			out, err := e.Reveal(context.Background(), Coord{Row: 0, Col: 0})
			require.NoError(t, err)

			assert.NotEqual(t, Lost, out.State, "seed %d policy %s", seed, policy)
			assert.NotEqual(t, NotStarted, out.State)
			assert.Equal(t, 10, e.board.CountMines())

			cell, _ := e.board.Cell(Coord{Row: 0, Col: 0})
			assert.False(t, cell.IsMine())
			assert.True(t, cell.IsRevealed())
		}
	}
}

func TestFirstRevealNeighborhoodCascades(t *testing.T) {
	e, err := New(9, 9, 10, WithSeed(7), WithSafeZone(generator.SafeNeighborhood))
	require.NoError(t, err)

	out, err := e.Reveal(context.Background(), Coord{Row: 4, Col: 4})
	require.NoError(t, err)

	// A clear neighborhood makes the clicked cell a zero, so it must open all eight neighbors.
	assert.GreaterOrEqual(t, len(out.Changed), 9)
	assert.Equal(t, 0, e.View().At(Coord{Row: 4, Col: 4}).Adjacent)
}

func TestCascadeMatchesFloodFill(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		e, err := New(16, 16, 40)
		require.NoError(t, err)
		require.NoError(t, generator.PlaceMines(context.Background(), e.board, 40, mapset.Set[Coord]{}, rand.New(rand.NewSource(seed))))
		e.state = InProgress

		start, ok := firstZeroCell(e.board)
		if !ok {
			continue
		}
		want := floodFill(e.board.Clone(), start)

		out, err := e.Reveal(context.Background(), start)
		require.NoError(t, err)

		got := map[Coord]bool{}
		for _, c := range out.Changed {
			require.False(t, got[c], "seed %d: %v revealed twice", seed, c)
			got[c] = true
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("seed %d: cascade region mismatch (-want +got):\n%s", seed, diff)
		}
		assert.Equal(t, len(want), e.board.CountRevealed())
	}
}

func TestCascadeStopsAtFlags(t *testing.T) {
	e := newFixedEngine(t,
		".....",
		".....",
		"....*",
	)
	ctx := context.Background()

	for row := 0; row < 3; row++ {
		require.NoError(t, e.ToggleFlag(ctx, Coord{Row: row, Col: 2}))
	}

	out, err := e.Reveal(ctx, Coord{Row: 0, Col: 0})
	require.NoError(t, err)

	assert.Equal(t, InProgress, out.State)
	assert.Len(t, out.Changed, 6)

	v := e.View()
	for row := 0; row < 3; row++ {
		assert.True(t, v.At(Coord{Row: row, Col: 2}).Flagged)
		assert.False(t, v.At(Coord{Row: row, Col: 2}).Revealed, "flagged cell revealed by cascade")
		assert.False(t, v.At(Coord{Row: row, Col: 3}).Revealed, "cascade crossed the flag wall")
	}
}

func TestLargeEmptyBoardCascade(t *testing.T) {
	e, err := New(400, 300, 0)
	require.NoError(t, err)

	out, err := e.Reveal(context.Background(), Coord{Row: 150, Col: 200})
	require.NoError(t, err)

	assert.Equal(t, Won, out.State)
	assert.Len(t, out.Changed, 400*300)
}

func TestRevealMineLoses(t *testing.T) {
	e := newFixedEngine(t,
		"*..",
		"...",
		"..*",
	)
	ctx := context.Background()
	mine := Coord{Row: 0, Col: 0}

	require.NoError(t, e.ToggleFlag(ctx, Coord{Row: 2, Col: 2}))

	out, err := e.Reveal(ctx, mine)
	require.NoError(t, err)
	assert.Equal(t, Lost, out.State)
	assert.Equal(t, []Coord{mine}, out.Changed)

	v := e.View()
	require.NotNil(t, v.Exploded)
	assert.Equal(t, mine, *v.Exploded)
	assert.True(t, v.At(Coord{Row: 2, Col: 2}).Mine, "mines are visible once the game is over")
	assert.False(t, v.At(Coord{Row: 2, Col: 2}).Revealed, "other mines are not auto-revealed")

	_, err = e.Reveal(ctx, Coord{Row: 1, Col: 1})
	assert.ErrorIs(t, err, ErrInvalidOperation)
	assert.ErrorIs(t, e.ToggleFlag(ctx, Coord{Row: 1, Col: 1}), ErrInvalidOperation)
	_, err = e.Chord(ctx, mine)
	assert.ErrorIs(t, err, ErrInvalidOperation)

	assert.Equal(t, Lost, e.State())
	assert.Equal(t, 1, e.board.CountRevealed())
}

func TestWinIgnoresFlags(t *testing.T) {
	for _, flagMine := range []bool{false, true} {
		e := newFixedEngine(t,
			"*.",
			"..",
		)
		ctx := context.Background()

		if flagMine {
			require.NoError(t, e.ToggleFlag(ctx, Coord{Row: 0, Col: 0}))
		}

		for _, c := range []Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}} {
			out, err := e.Reveal(ctx, c)
			require.NoError(t, err)
			assert.Equal(t, InProgress, out.State)
		}

		out, err := e.Reveal(ctx, Coord{Row: 1, Col: 1})
		require.NoError(t, err)
		assert.Equal(t, Won, out.State, "flagMine=%v", flagMine)

		_, err = e.Reveal(ctx, Coord{Row: 0, Col: 0})
		assert.ErrorIs(t, err, ErrInvalidOperation)
	}
}

func TestToggleFlagTwiceIsNoop(t *testing.T) {
	e := newFixedEngine(t,
		"*...",
		"....",
	)
	ctx := context.Background()
	before := e.View()

	require.NoError(t, e.ToggleFlag(ctx, Coord{Row: 1, Col: 3}))
	assert.True(t, e.View().At(Coord{Row: 1, Col: 3}).Flagged)
	assert.Equal(t, 0, e.FlagsRemaining())

	require.NoError(t, e.ToggleFlag(ctx, Coord{Row: 1, Col: 3}))

	if diff := cmp.Diff(before, e.View()); diff != "" {
		t.Errorf("double toggle changed the board (-before +after):\n%s", diff)
	}
}

func TestToggleFlagBeforeFirstReveal(t *testing.T) {
	e, err := New(8, 8, 10, WithSeed(3))
	require.NoError(t, err)

	require.NoError(t, e.ToggleFlag(context.Background(), Coord{Row: 5, Col: 5}))
	assert.Equal(t, NotStarted, e.State())
	assert.Equal(t, 0, e.board.CountMines(), "flagging must not place mines")
	assert.Equal(t, 9, e.FlagsRemaining())

	_, err = e.Reveal(context.Background(), Coord{Row: 5, Col: 5})
	assert.ErrorIs(t, err, ErrInvalidOperation, "flags lock the cell against reveal")
	assert.Equal(t, NotStarted, e.State())
}

func TestRejectedOperationsLeaveStateUnchanged(t *testing.T) {
	e, err := New(8, 8, 10, WithSeed(3))
	require.NoError(t, err)
	ctx := context.Background()
	before := e.View()

	for _, c := range []Coord{{Row: 8, Col: 0}, {Row: 0, Col: 8}, {Row: -1, Col: 0}} {
		out, err := e.Reveal(ctx, c)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, NotStarted, out.State)
		assert.Empty(t, out.Changed)

		assert.ErrorIs(t, e.ToggleFlag(ctx, c), ErrOutOfBounds)

		_, err = e.Chord(ctx, c)
		assert.ErrorIs(t, err, ErrOutOfBounds)

		_, err = e.Open(ctx, c)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}

	assert.Equal(t, 0, e.board.CountMines())
	if diff := cmp.Diff(before, e.View()); diff != "" {
		t.Errorf("rejected operations changed the board (-before +after):\n%s", diff)
	}
}

func TestRevealAlreadyRevealed(t *testing.T) {
	e := newFixedEngine(t,
		"*..",
		"...",
	)
	ctx := context.Background()

	_, err := e.Reveal(ctx, Coord{Row: 1, Col: 0})
	require.NoError(t, err)

	_, err = e.Reveal(ctx, Coord{Row: 1, Col: 0})
	assert.ErrorIs(t, err, ErrInvalidOperation)
	assert.ErrorIs(t, e.ToggleFlag(ctx, Coord{Row: 1, Col: 0}), ErrInvalidOperation)
	assert.True(t, errors.Is(err, ErrInvalidOperation))
}

func TestChord(t *testing.T) {
	e := newFixedEngine(t,
		"*..",
		"...",
		"...",
	)
	ctx := context.Background()
	center := Coord{Row: 1, Col: 1}

	_, err := e.Chord(ctx, center)
	assert.ErrorIs(t, err, ErrInvalidOperation, "chord on a hidden cell")

	out, err := e.Reveal(ctx, center)
	require.NoError(t, err)
	require.Equal(t, []Coord{center}, out.Changed)

	out, err = e.Chord(ctx, center)
	require.NoError(t, err)
	assert.Empty(t, out.Changed, "chord without enough flags does nothing")
	assert.Equal(t, InProgress, out.State)

	require.NoError(t, e.ToggleFlag(ctx, Coord{Row: 0, Col: 0}))

	out, err = e.Chord(ctx, center)
	require.NoError(t, err)
	assert.Len(t, out.Changed, 7)
	assert.Equal(t, Won, out.State)
}

func TestChordWithWrongFlagLoses(t *testing.T) {
	e := newFixedEngine(t,
		"*..",
		"...",
		"...",
	)
	ctx := context.Background()
	center := Coord{Row: 1, Col: 1}

	_, err := e.Reveal(ctx, center)
	require.NoError(t, err)
	require.NoError(t, e.ToggleFlag(ctx, Coord{Row: 0, Col: 1}))

	out, err := e.Chord(ctx, center)
	require.NoError(t, err)
	assert.Equal(t, Lost, out.State)
	assert.Equal(t, []Coord{{Row: 0, Col: 0}}, out.Changed)
}

func TestOpenDispatches(t *testing.T) {
	e := newFixedEngine(t,
		"*..",
		"...",
		"...",
	)
	ctx := context.Background()
	center := Coord{Row: 1, Col: 1}

	out, err := e.Open(ctx, center)
	require.NoError(t, err)
	assert.Equal(t, []Coord{center}, out.Changed)

	require.NoError(t, e.ToggleFlag(ctx, Coord{Row: 0, Col: 0}))
	out, err = e.Open(ctx, center)
	require.NoError(t, err)
	assert.Equal(t, Won, out.State)
}

func TestNewGameResets(t *testing.T) {
	e := newFixedEngine(t,
		"*.",
		"..",
	)
	ctx := context.Background()

	_, err := e.Reveal(ctx, Coord{Row: 0, Col: 0})
	require.NoError(t, err)
	require.Equal(t, Lost, e.State())

	e.NewGame()

	assert.Equal(t, NotStarted, e.State())
	v := e.View()
	assert.Nil(t, v.Exploded)
	assert.Equal(t, 0, v.Revealed)
	assert.Equal(t, 0, e.board.CountMines())
	assert.Equal(t, 1, v.Mines)

	out, err := e.Reveal(ctx, Coord{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.NotEqual(t, Lost, out.State)
}

func TestViewHidesMinesUntilGameOver(t *testing.T) {
	e := newFixedEngine(t,
		"*...",
		"....",
		"...*",
	)
	ctx := context.Background()

	_, err := e.Reveal(ctx, Coord{Row: 0, Col: 3})
	require.NoError(t, err)

	v := e.View()
	assert.False(t, v.At(Coord{Row: 0, Col: 0}).Mine)
	assert.False(t, v.At(Coord{Row: 2, Col: 3}).Mine)
	assert.True(t, v.At(Coord{Row: 1, Col: 1}).Revealed)
	assert.Equal(t, 1, v.At(Coord{Row: 1, Col: 1}).Adjacent)
	assert.False(t, v.At(Coord{Row: 2, Col: 2}).Revealed)
	assert.Equal(t, 0, v.At(Coord{Row: 2, Col: 2}).Adjacent, "hidden cells do not leak counts")
	assert.Equal(t, CellView{}, v.At(Coord{Row: 9, Col: 9}))

	for _, row := range v.Cells {
		for i := range row {
			row[i].Mine = true
			row[i].Revealed = true
		}
	}
	assert.Equal(t, InProgress, e.State())
	fresh := e.View()
	assert.False(t, fresh.At(Coord{Row: 2, Col: 2}).Revealed, "snapshot aliases engine state")
	assert.False(t, fresh.At(Coord{Row: 0, Col: 0}).Mine)
}

func TestWithTracerCoversMinePlacement(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	e, err := New(9, 9, 10, WithSeed(3), WithTracer(tp.Tracer("test")))
	require.NoError(t, err)
	_, err = e.Reveal(context.Background(), Coord{Row: 4, Col: 4})
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, span := range recorder.Ended() {
		names[span.Name()] = true
	}
	assert.True(t, names["engine.reveal"], "reveal span recorded")
	assert.True(t, names["generator.place_mines"], "placement span recorded by the engine's tracer")
}
