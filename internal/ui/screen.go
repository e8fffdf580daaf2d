// Package ui draws the board on a terminal using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is a tcell screen set up for the game: mouse on, cursor hidden.
type Screen struct {
	tcell.Screen
}

// NewScreen opens the terminal. Call Fini to restore it.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Wrap(s)
}

// Wrap initializes s for the game. Tests pass a simulation screen.
func Wrap(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.EnableMouse()
	s.HideCursor()
	s.Clear()
	return &Screen{Screen: s}, nil
}

// PutRune draws a single rune.
func (s *Screen) PutRune(x, y int, r rune, style tcell.Style) {
	s.SetContent(x, y, r, nil, style)
}

// DrawText writes text left to right starting at x, y.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.PutRune(x, y, r, style)
		x++
	}
}

// Wake makes a blocked PollEvent return so the frame is redrawn. Safe to
// call from another goroutine.
func (s *Screen) Wake() {
	_ = s.PostEvent(tcell.NewEventInterrupt(nil))
}
