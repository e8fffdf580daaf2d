package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweep/internal/engine"
	"github.com/samdwyer/minesweep/internal/gamedata"
)

const (
	// cellWidth is the number of terminal columns per board cell.
	cellWidth = 2
	// boardTop is the first screen row of the board.
	boardTop = 2
	// boardLeft is the first screen column of the board.
	boardLeft = 1
)

// Legend lists the in-game key bindings.
var Legend = []string{
	"arrows / wasd / ijkl: move   space / enter: open   f: flag",
	"p: pause   n: new game   q / esc: leave   mouse: left open, right flag",
}

// MenuLegend lists the setup menu key bindings.
var MenuLegend = []string{
	"up / down / w / s / i / k: select   left / right / a / d / j / l: change",
	"space / enter: start   f: restore default   q / esc: quit",
}

// footerHeight is the rows below the board: a gap, the message, a gap and
// the legend.
var footerHeight = 3 + len(Legend)

// Frame is everything drawn in one pass.
type Frame struct {
	View    engine.View
	Cursor  engine.Coord
	Elapsed time.Duration
	Preset  string
	Paused  bool
	Message string
}

// MenuItem is one adjustable setting.
type MenuItem struct {
	Label string
	Value int
}

// MenuFrame is the setup menu drawn in one pass.
type MenuFrame struct {
	Items    []MenuItem
	Selected int
	Error    string
}

// Renderer handles drawing the game to the screen. It keeps the viewport
// between frames so the board scrolls with the cursor.
type Renderer struct {
	screen   *Screen
	theme    *gamedata.Theme
	viewport Viewport
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme *gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Viewport returns the board window used by the last frame.
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// CellAt maps a screen position to the board cell drawn there in the last
// frame.
func (r *Renderer) CellAt(x, y int) (engine.Coord, bool) {
	return r.viewport.CellAt(x, y)
}

// Render draws the HUD, the visible part of the board and the legend.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	width, height := r.screen.Size()
	r.viewport.Fit(height-boardTop-footerHeight, (width-boardLeft-1)/cellWidth,
		f.View.Height, f.View.Width, f.Cursor)

	r.renderHUD(f)
	if f.Paused {
		r.renderPaused()
	} else {
		r.renderBoard(f)
		r.renderScrollMarks(f.View)
	}

	y := boardTop + r.viewport.Rows + 1
	if f.Message != "" {
		r.screen.DrawText(boardLeft, y, f.Message, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	r.renderLegend(y+2, Legend)

	r.screen.Show()
}

// RenderMenu draws the setup menu.
func (r *Renderer) RenderMenu(m MenuFrame) {
	r.screen.Clear()

	r.screen.DrawText(boardLeft, 0, "New game", tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	for i, item := range m.Items {
		style := tcell.StyleDefault.Foreground(r.theme.Cursor)
		if i == m.Selected {
			style = tcell.StyleDefault.Background(r.theme.Cursor).Foreground(tcell.ColorBlack)
		}
		r.screen.DrawText(boardLeft, boardTop+i, fmt.Sprintf("%-7s < %d >", item.Label+":", item.Value), style)
	}

	y := boardTop + len(m.Items) + 1
	if m.Error != "" {
		r.screen.DrawText(boardLeft, y, m.Error, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
	r.renderLegend(y+2, MenuLegend)

	r.screen.Show()
}

func (r *Renderer) renderLegend(y int, lines []string) {
	for i, line := range lines {
		r.screen.DrawText(boardLeft, y+i, line, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
}

// StatusLine summarizes the game for the HUD.
func StatusLine(v engine.View, elapsed time.Duration, preset string) string {
	status := ""
	switch v.State {
	case engine.Won:
		status = "  You won! Press n for a new game."
	case engine.Lost:
		status = "  Boom. Press n for a new game."
	}
	return fmt.Sprintf("%s  Mines: %3d  Time: %3d%s",
		preset, v.Mines-v.Flagged, int(elapsed/time.Second), status)
}

func (r *Renderer) renderHUD(f Frame) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	r.screen.DrawText(boardLeft, 0, StatusLine(f.View, f.Elapsed, f.Preset), style)
}

func (r *Renderer) renderBoard(f Frame) {
	vp := r.viewport
	for row := vp.Row; row < vp.Row+vp.Rows; row++ {
		for col := vp.Col; col < vp.Col+vp.Cols; col++ {
			c := engine.Coord{Row: row, Col: col}
			style := r.cellStyle(f.View, c)
			if c == f.Cursor && !f.View.State.Terminal() {
				style = style.Background(r.theme.Cursor)
			}
			x, y := vp.Screen(c)
			r.screen.PutRune(x, y, Glyph(f.View, c), style)
			r.screen.PutRune(x+1, y, ' ', style)
		}
	}
}

// renderScrollMarks shows arrows on the edges where the board continues
// off-screen.
func (r *Renderer) renderScrollMarks(v engine.View) {
	vp := r.viewport
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	up, down, left, right := vp.More(v.Height, v.Width)
	midX := boardLeft + vp.Cols*cellWidth/2
	midY := boardTop + vp.Rows/2
	if up {
		r.screen.PutRune(midX, boardTop-1, '^', style)
	}
	if down {
		r.screen.PutRune(midX, boardTop+vp.Rows, 'v', style)
	}
	if left {
		r.screen.PutRune(boardLeft-1, midY, '<', style)
	}
	if right {
		r.screen.PutRune(boardLeft+vp.Cols*cellWidth, midY, '>', style)
	}
}

func (r *Renderer) renderPaused() {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	r.screen.DrawText(boardLeft, boardTop+r.viewport.Rows/2, "Paused (press p to continue)", style)
}

// cellStyle returns the appropriate style for a cell.
func (r *Renderer) cellStyle(v engine.View, c engine.Coord) tcell.Style {
	hidden := tcell.StyleDefault.Background(r.theme.Hidden)
	open := tcell.StyleDefault.Background(r.theme.Revealed)

	switch Classify(v, c) {
	case KindFlag:
		return hidden.Foreground(r.theme.Flag).Bold(true)
	case KindEmpty:
		return open.Foreground(r.theme.Revealed)
	case KindNumber:
		return open.Foreground(r.theme.NumberColor(v.At(c).Adjacent)).Bold(true)
	case KindMine:
		return open.Foreground(r.theme.Mine)
	case KindExploded:
		return tcell.StyleDefault.Background(r.theme.Exploded).Foreground(r.theme.Mine).Bold(true)
	case KindWrongFlag:
		return hidden.Foreground(r.theme.WrongFlag).Bold(true)
	default:
		return hidden.Foreground(r.theme.Hidden)
	}
}
