// Package game provides the terminal game loop and input handling.
package game

// Mode represents what the frontend is doing on top of the engine state.
type Mode int

const (
	// ModePlaying accepts board input.
	ModePlaying Mode = iota
	// ModePaused hides the board and stops the clock.
	ModePaused
	// ModeConfirmLeave waits for the player to confirm abandoning a game.
	ModeConfirmLeave
	// ModeMenu shows the board size setup.
	ModeMenu
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeConfirmLeave:
		return "confirm_leave"
	case ModeMenu:
		return "menu"
	default:
		return "unknown"
	}
}
