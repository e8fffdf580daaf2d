package textui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/minesweep/internal/engine"
)

const help = `Commands (rows and columns start at 0):
  r ROW COL   reveal a cell
  f ROW COL   toggle a flag
  c ROW COL   chord a revealed number
  o ROW COL   reveal or chord, whichever applies
  n           new game
  h           this help
  q           quit
`

const prompt = "> "

// Session runs a text game over a reader and a writer.
type Session struct {
	engine *engine.Engine
	in     *bufio.Scanner
	out    io.Writer
	log    logrus.FieldLogger
}

// NewSession creates a session reading commands from in.
func NewSession(eng *engine.Engine, in io.Reader, out io.Writer, log logrus.FieldLogger) *Session {
	return &Session{
		engine: eng,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    log,
	}
}

// Run reads commands until quit, end of input or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	if _, err := io.WriteString(s.out, help); err != nil {
		return err
	}
	if err := s.show(); err != nil {
		return err
	}

	for ctx.Err() == nil && s.in.Scan() {
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			fmt.Fprint(s.out, prompt)
			continue
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n%s", err, prompt)
			continue
		}
		if cmd.Kind == KindQuit {
			return nil
		}
		if err := s.exec(ctx, cmd); err != nil {
			return err
		}
	}
	return s.in.Err()
}

// exec runs one command and prints the result. Engine rejections are
// reported to the player; only write failures are returned.
func (s *Session) exec(ctx context.Context, cmd Command) error {
	var err error
	switch cmd.Kind {
	case KindReveal:
		_, err = s.engine.Reveal(ctx, cmd.At)
	case KindFlag:
		err = s.engine.ToggleFlag(ctx, cmd.At)
	case KindChord:
		_, err = s.engine.Chord(ctx, cmd.At)
	case KindOpen:
		_, err = s.engine.Open(ctx, cmd.At)
	case KindNewGame:
		s.engine.NewGame()
		s.log.Info("new game")
	case KindHelp:
		_, werr := io.WriteString(s.out, help)
		if werr != nil {
			return werr
		}
		_, werr = io.WriteString(s.out, prompt)
		return werr
	}

	if err != nil {
		s.log.WithError(err).Debug("command rejected")
		if _, werr := fmt.Fprintf(s.out, "error: %v\n", err); werr != nil {
			return werr
		}
	}
	return s.show()
}

// show prints the board, any end-of-game message and the prompt.
func (s *Session) show() error {
	v := s.engine.View()
	if err := Render(s.out, v); err != nil {
		return err
	}

	var msg string
	switch v.State {
	case engine.Won:
		msg = "You won! Type n for a new game.\n"
	case engine.Lost:
		msg = "Boom! You hit a mine. Type n for a new game.\n"
	}
	_, err := io.WriteString(s.out, msg+prompt)
	return err
}
