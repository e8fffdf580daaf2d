package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ThemeDef is the raw colour theme as stored in theme.json.
type ThemeDef struct {
	Hidden    string   `json:"hidden"`
	Revealed  string   `json:"revealed"`
	Cursor    string   `json:"cursor"`
	Flag      string   `json:"flag"`
	Mine      string   `json:"mine"`
	Exploded  string   `json:"exploded"`
	WrongFlag string   `json:"wrongFlag"`
	Numbers   []string `json:"numbers"`
}

// Theme holds parsed terminal colours for drawing the board.
type Theme struct {
	Hidden    tcell.Color
	Revealed  tcell.Color
	Cursor    tcell.Color
	Flag      tcell.Color
	Mine      tcell.Color
	Exploded  tcell.Color
	WrongFlag tcell.Color
	Numbers   [8]tcell.Color
}

// NumberColor returns the colour for an adjacency count of 1..8.
func (t *Theme) NumberColor(n int) tcell.Color {
	if n < 1 || n > len(t.Numbers) {
		return t.Mine
	}
	return t.Numbers[n-1]
}

// LoadTheme loads and parses theme.json.
func LoadTheme() (*Theme, error) {
	def, err := Load[ThemeDef]("theme.json")
	if err != nil {
		return nil, err
	}
	return def.Parse()
}

// MustLoadTheme loads the theme, panicking on error.
func MustLoadTheme() *Theme {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}

// Parse converts the hex strings into terminal colours.
func (d ThemeDef) Parse() (*Theme, error) {
	if len(d.Numbers) != 8 {
		return nil, fmt.Errorf("theme needs 8 number colours, got %d", len(d.Numbers))
	}

	theme := &Theme{}
	fields := []struct {
		hex string
		dst *tcell.Color
	}{
		{d.Hidden, &theme.Hidden},
		{d.Revealed, &theme.Revealed},
		{d.Cursor, &theme.Cursor},
		{d.Flag, &theme.Flag},
		{d.Mine, &theme.Mine},
		{d.Exploded, &theme.Exploded},
		{d.WrongFlag, &theme.WrongFlag},
	}
	for i, hex := range d.Numbers {
		fields = append(fields, struct {
			hex string
			dst *tcell.Color
		}{hex, &theme.Numbers[i]})
	}

	for _, f := range fields {
		color, err := ParseHexColor(f.hex)
		if err != nil {
			return nil, err
		}
		*f.dst = color
	}
	return theme, nil
}

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}
