package engine

// GameState represents the progress of a single game.
type GameState int

const (
	// NotStarted is a fresh game; mines are placed on the first reveal.
	NotStarted GameState = iota
	// InProgress is an ongoing game.
	InProgress
	// Won means every safe cell has been revealed.
	Won
	// Lost means a mine has been revealed.
	Lost
)

// String returns a human-readable state name.
func (s GameState) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game is over.
func (s GameState) Terminal() bool {
	return s == Won || s == Lost
}
