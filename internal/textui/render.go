package textui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samdwyer/minesweep/internal/engine"
	"github.com/samdwyer/minesweep/internal/ui"
)

// Render writes the board with row and column headers.
func Render(w io.Writer, v engine.View) error {
	rowWidth := len(strconv.Itoa(v.Height - 1))
	colWidth := len(strconv.Itoa(v.Width - 1))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Mines left: %d  State: %s\n", v.Mines-v.Flagged, v.State)

	line := strings.Repeat(" ", rowWidth+1)
	for col := 0; col < v.Width; col++ {
		line += fmt.Sprintf("%*d ", colWidth, col)
	}
	sb.WriteString(strings.TrimRight(line, " "))
	sb.WriteByte('\n')

	for row := 0; row < v.Height; row++ {
		line = fmt.Sprintf("%*d ", rowWidth, row)
		for col := 0; col < v.Width; col++ {
			line += fmt.Sprintf("%*c ", colWidth, ui.Glyph(v, engine.Coord{Row: row, Col: col}))
		}
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
