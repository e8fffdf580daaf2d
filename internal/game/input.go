package game

import "github.com/gdamore/tcell/v2"

// action is a frontend command decoded from input.
type action int

const (
	actionNone action = iota
	actionUp
	actionDown
	actionLeft
	actionRight
	actionOpen
	actionFlag
	actionPause
	actionNewGame
	actionQuit
	actionForceQuit
)

// keyAction maps a key press to an action.
func keyAction(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyCtrlC:
		return actionForceQuit
	case tcell.KeyEscape:
		return actionQuit
	case tcell.KeyUp:
		return actionUp
	case tcell.KeyDown:
		return actionDown
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyEnter:
		return actionOpen
	case tcell.KeyRune:
		return runeAction(r)
	}
	return actionNone
}

func runeAction(r rune) action {
	switch r {
	case 'w', 'W', 'i', 'I':
		return actionUp
	case 's', 'S', 'k', 'K':
		return actionDown
	case 'a', 'A', 'j', 'J':
		return actionLeft
	case 'd', 'D', 'l', 'L':
		return actionRight
	case ' ':
		return actionOpen
	case 'f', 'F':
		return actionFlag
	case 'p', 'P':
		return actionPause
	case 'n', 'N':
		return actionNewGame
	case 'q', 'Q':
		return actionQuit
	}
	return actionNone
}

// mouseAction maps newly pressed buttons to an action. Held buttons and
// motion produce nothing.
func mouseAction(prev, cur tcell.ButtonMask) action {
	pressed := cur &^ prev
	switch {
	case pressed&tcell.ButtonPrimary != 0:
		return actionOpen
	case pressed&tcell.ButtonSecondary != 0:
		return actionFlag
	}
	return actionNone
}
