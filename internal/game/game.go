package game

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minesweep/internal/engine"
	"github.com/samdwyer/minesweep/internal/gamedata"
	"github.com/samdwyer/minesweep/internal/telemetry"
	"github.com/samdwyer/minesweep/internal/ui"
)

// tick is how often the HUD clock is redrawn.
const tick = time.Second

// EngineFactory builds an engine for a board chosen in the setup menu.
type EngineFactory func(width, height, mines int) (*engine.Engine, error)

// leavePrompt is shown while waiting for the player to confirm leaving.
const leavePrompt = "Leave this game? space / enter: leave   q / esc: stay"

// customPreset labels a board picked in the menu that differs from the
// configured one.
const customPreset = "Custom"

// Game holds the terminal frontend state around one engine.
type Game struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	engine    *engine.Engine
	newEngine EngineFactory
	menu      *Menu
	cursor    *Cursor
	clock     *Stopwatch
	mode      Mode
	resume    Mode
	preset    string
	defPreset string
	message   string
	buttons   tcell.ButtonMask
	running   bool

	log    logrus.FieldLogger
	tracer trace.Tracer
}

// New creates a terminal game for the given engine. The setup menu
// starts from the engine's board and builds new ones with newEngine.
func New(eng *engine.Engine, newEngine EngineFactory, theme *gamedata.Theme, preset string, log logrus.FieldLogger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(screen, theme, eng, newEngine, preset, log, nil), nil
}

func newGame(screen *ui.Screen, theme *gamedata.Theme, eng *engine.Engine, newEngine EngineFactory,
	preset string, log logrus.FieldLogger, now func() time.Time) *Game {
	return &Game{
		screen:    screen,
		renderer:  ui.NewRenderer(screen, theme),
		engine:    eng,
		newEngine: newEngine,
		menu:      NewMenu(eng.Width(), eng.Height(), eng.MineCount()),
		cursor:    NewCursor(eng.Width(), eng.Height()),
		clock:     NewStopwatch(now),
		mode:      ModePlaying,
		preset:    preset,
		defPreset: preset,
		running:   true,
		log:       log,
		tracer:    telemetry.Tracer("game"),
	}
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "game.run")
	defer span.End()

	span.SetAttributes(
		attribute.Int("board.width", g.engine.Width()),
		attribute.Int("board.height", g.engine.Height()),
		attribute.Int("board.mines", g.engine.MineCount()),
		attribute.String("preset", g.preset),
	)

	done := make(chan struct{})
	defer close(done)
	go g.wakeEvery(ctx, done)

	for g.running && ctx.Err() == nil {
		g.render()
		g.handleEvent(ctx, g.screen.PollEvent())
	}

	span.SetAttributes(attribute.String("game.state", g.engine.State().String()))
	return nil
}

// wakeEvery interrupts the event loop so the clock is redrawn while the
// player is idle.
func (g *Game) wakeEvery(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			g.screen.Wake()
			return
		case <-ticker.C:
			g.screen.Wake()
		}
	}
}

func (g *Game) render() {
	if g.mode == ModeMenu {
		g.renderer.RenderMenu(g.menu.Frame())
		return
	}
	g.renderer.Render(g.frame())
}

func (g *Game) frame() ui.Frame {
	return ui.Frame{
		View:    g.engine.View(),
		Cursor:  g.cursor.Coord(),
		Elapsed: g.clock.Elapsed(),
		Preset:  g.preset,
		Paused:  g.mode == ModePaused,
		Message: g.message,
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.apply(ctx, keyAction(ev.Key(), ev.Rune()))
	case *tcell.EventMouse:
		x, y := ev.Position()
		g.click(ctx, x, y, ev.Buttons())
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// click handles a mouse event at screen position x, y.
func (g *Game) click(ctx context.Context, x, y int, buttons tcell.ButtonMask) {
	act := mouseAction(g.buttons, buttons)
	g.buttons = buttons
	if act == actionNone || g.mode != ModePlaying {
		return
	}

	at, ok := g.renderer.CellAt(x, y)
	if !ok {
		return
	}
	g.cursor.Set(at)
	g.apply(ctx, act)
}

// apply runs one frontend action.
func (g *Game) apply(ctx context.Context, act action) {
	if act == actionForceQuit {
		g.running = false
		return
	}

	switch g.mode {
	case ModeMenu:
		g.applyMenu(ctx, act)
	case ModeConfirmLeave:
		g.applyConfirmLeave(act)
	case ModePaused:
		switch act {
		case actionPause:
			g.mode = ModePlaying
		case actionQuit:
			g.askLeave()
		}
	default:
		g.applyPlaying(ctx, act)
	}
	g.syncClock()
}

func (g *Game) applyPlaying(ctx context.Context, act action) {
	width, height := g.engine.Width(), g.engine.Height()
	switch act {
	case actionUp:
		g.cursor.Move(-1, 0, width, height)
	case actionDown:
		g.cursor.Move(1, 0, width, height)
	case actionLeft:
		g.cursor.Move(0, -1, width, height)
	case actionRight:
		g.cursor.Move(0, 1, width, height)
	case actionOpen:
		if g.engine.State().Terminal() {
			g.restart()
			return
		}
		_, err := g.engine.Open(ctx, g.cursor.Coord())
		g.report(err)
	case actionFlag:
		g.report(g.engine.ToggleFlag(ctx, g.cursor.Coord()))
	case actionPause:
		if g.engine.State() == engine.InProgress {
			g.mode = ModePaused
		}
	case actionNewGame:
		g.restart()
	case actionQuit:
		g.askLeave()
	}
}

// askLeave asks for confirmation unless the game has already ended.
func (g *Game) askLeave() {
	if g.engine.State().Terminal() {
		g.leave()
		return
	}
	g.resume = g.mode
	g.mode = ModeConfirmLeave
	g.message = leavePrompt
}

func (g *Game) applyConfirmLeave(act action) {
	switch act {
	case actionOpen:
		g.leave()
	case actionQuit:
		g.mode = g.resume
		g.message = ""
	}
}

// leave abandons the game for the setup menu, preset to its board.
func (g *Game) leave() {
	g.menu.SetBoard(g.engine.Width(), g.engine.Height(), g.engine.MineCount())
	g.mode = ModeMenu
	g.message = ""
	g.log.WithField("state", g.engine.State().String()).Info("left game")
}

// restart deals a new board of the same size.
func (g *Game) restart() {
	g.engine.NewGame()
	g.clock.Reset()
	g.mode = ModePlaying
	g.message = ""
	g.log.Info("new game")
}

func (g *Game) applyMenu(ctx context.Context, act action) {
	switch act {
	case actionUp:
		g.menu.Select(-1)
	case actionDown:
		g.menu.Select(1)
	case actionLeft:
		g.menu.Adjust(-1)
	case actionRight:
		g.menu.Adjust(1)
	case actionFlag:
		g.menu.RestoreDefault()
	case actionOpen:
		g.start(ctx)
	case actionQuit:
		g.running = false
	}
}

// start builds the board chosen in the menu and begins playing it.
func (g *Game) start(ctx context.Context) {
	width, height, mines := g.menu.Board()
	_, span := g.tracer.Start(ctx, "game.start")
	defer span.End()
	span.SetAttributes(
		attribute.Int("board.width", width),
		attribute.Int("board.height", height),
		attribute.Int("board.mines", mines),
	)

	eng, err := g.newEngine(width, height, mines)
	if err != nil {
		span.RecordError(err)
		g.menu.err = err.Error()
		g.log.WithError(err).Warn("menu board rejected")
		return
	}

	g.engine = eng
	g.cursor = NewCursor(width, height)
	g.clock.Reset()
	g.mode = ModePlaying
	g.preset = g.defPreset
	if !g.menu.IsDefault() {
		g.preset = customPreset
	}
	g.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  mines,
	}).Info("started game from menu")
}

// syncClock runs the stopwatch only while a started game is being played.
func (g *Game) syncClock() {
	if g.engine.State() == engine.InProgress && g.mode == ModePlaying {
		g.clock.Start()
		return
	}
	g.clock.Stop()
}

// report shows the result of the last board action in the status line.
func (g *Game) report(err error) {
	switch {
	case err == nil:
		g.message = ""
	case errors.Is(err, engine.ErrInvalidOperation):
		g.message = "Can't do that here."
	default:
		g.message = err.Error()
		g.log.WithError(err).Warn("board action failed")
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Fini()
	}
}
