package ui

import (
	"github.com/samdwyer/minesweep/internal/engine"
)

// Kind classifies how a cell should be drawn.
type Kind int

const (
	KindHidden Kind = iota
	KindFlag
	KindEmpty
	KindNumber
	KindMine
	KindExploded
	KindWrongFlag
)

// Classify decides how to show the cell at c. Once the game is lost every
// mine is shown and wrong flags are marked; once it is won the remaining
// mines show as flags.
func Classify(v engine.View, c engine.Coord) Kind {
	cell := v.At(c)

	if v.Exploded != nil && *v.Exploded == c {
		return KindExploded
	}
	if cell.Revealed {
		switch {
		case cell.Mine:
			return KindMine
		case cell.Adjacent == 0:
			return KindEmpty
		default:
			return KindNumber
		}
	}

	switch v.State {
	case engine.Lost:
		switch {
		case cell.Flagged && !cell.Mine:
			return KindWrongFlag
		case cell.Flagged:
			return KindFlag
		case cell.Mine:
			return KindMine
		}
	case engine.Won:
		if cell.Mine || cell.Flagged {
			return KindFlag
		}
	}

	if cell.Flagged {
		return KindFlag
	}
	return KindHidden
}

// Glyph returns the character for the cell at c.
func Glyph(v engine.View, c engine.Coord) rune {
	switch Classify(v, c) {
	case KindFlag:
		return 'F'
	case KindEmpty:
		return '.'
	case KindNumber:
		return rune('0' + v.At(c).Adjacent)
	case KindMine:
		return '*'
	case KindExploded:
		return 'X'
	case KindWrongFlag:
		return 'x'
	default:
		return '#'
	}
}
