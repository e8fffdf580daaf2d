package game

import "github.com/samdwyer/minesweep/internal/ui"

// menuItem indexes the adjustable settings.
type menuItem int

const (
	itemWidth menuItem = iota
	itemHeight
	itemMines
	menuItemCount
)

// maxMenuValue bounds every setting; the engine rejects unplayable
// combinations below it.
const maxMenuValue = 999

var menuLabels = [menuItemCount]string{"Width", "Height", "Mines"}

// minMenuValues holds the lowest value of each setting.
var minMenuValues = [menuItemCount]int{1, 1, 0}

// Menu is the board size setup screen.
type Menu struct {
	values   [menuItemCount]int
	defaults [menuItemCount]int
	selected menuItem
	err      string
}

// NewMenu creates a menu whose values and defaults are the given board.
func NewMenu(width, height, mines int) *Menu {
	m := &Menu{defaults: [menuItemCount]int{width, height, mines}}
	m.values = m.defaults
	return m
}

// Select moves the highlight up (negative) or down (positive).
func (m *Menu) Select(delta int) {
	m.selected = menuItem(clamp(int(m.selected)+delta, 0, int(menuItemCount)-1))
}

// Adjust changes the selected setting by delta.
func (m *Menu) Adjust(delta int) {
	i := m.selected
	m.values[i] = clamp(m.values[i]+delta, minMenuValues[i], maxMenuValue)
	m.err = ""
}

// RestoreDefault resets the selected setting.
func (m *Menu) RestoreDefault() {
	m.values[m.selected] = m.defaults[m.selected]
	m.err = ""
}

// SetBoard replaces the current values, keeping the defaults.
func (m *Menu) SetBoard(width, height, mines int) {
	m.values = [menuItemCount]int{width, height, mines}
	m.err = ""
}

// Board returns the chosen width, height and mine count.
func (m *Menu) Board() (width, height, mines int) {
	return m.values[itemWidth], m.values[itemHeight], m.values[itemMines]
}

// IsDefault reports whether every value equals its default.
func (m *Menu) IsDefault() bool {
	return m.values == m.defaults
}

// Frame describes the menu for the renderer.
func (m *Menu) Frame() ui.MenuFrame {
	items := make([]ui.MenuItem, menuItemCount)
	for i := range items {
		items[i] = ui.MenuItem{Label: menuLabels[i], Value: m.values[i]}
	}
	return ui.MenuFrame{Items: items, Selected: int(m.selected), Error: m.err}
}
