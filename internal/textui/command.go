// Package textui is a line-oriented frontend: it prints the board as text
// and reads one command per line.
package textui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/minesweep/internal/engine"
)

var (
	// ErrUnknownCommand is returned for an unrecognised command word.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrBadArguments is returned when a command's arguments do not parse.
	ErrBadArguments = errors.New("bad arguments")
)

// Kind identifies a text command.
type Kind int

const (
	KindReveal Kind = iota
	KindFlag
	KindChord
	KindOpen
	KindNewGame
	KindHelp
	KindQuit
)

// Command is one parsed input line.
type Command struct {
	Kind Kind
	At   engine.Coord
}

var words = map[string]Kind{
	"r": KindReveal, "reveal": KindReveal,
	"f": KindFlag, "flag": KindFlag,
	"c": KindChord, "chord": KindChord,
	"o": KindOpen, "open": KindOpen,
	"n": KindNewGame, "new": KindNewGame,
	"h": KindHelp, "help": KindHelp, "?": KindHelp,
	"q": KindQuit, "quit": KindQuit, "exit": KindQuit,
}

// takesCell reports whether the command needs a row and column.
func (k Kind) takesCell() bool {
	switch k {
	case KindReveal, KindFlag, KindChord, KindOpen:
		return true
	}
	return false
}

// ParseCommand parses a line such as "r 3 4" or "q".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty line: %w", ErrUnknownCommand)
	}

	kind, ok := words[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, fmt.Errorf("%q: %w", fields[0], ErrUnknownCommand)
	}
	if !kind.takesCell() {
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%s takes no arguments: %w", fields[0], ErrBadArguments)
		}
		return Command{Kind: kind}, nil
	}

	if len(fields) != 3 {
		return Command{}, fmt.Errorf("%s needs ROW COL: %w", fields[0], ErrBadArguments)
	}
	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("row %q: %w", fields[1], ErrBadArguments)
	}
	col, err := strconv.Atoi(fields[2])
	if err != nil {
		return Command{}, fmt.Errorf("column %q: %w", fields[2], ErrBadArguments)
	}
	return Command{Kind: kind, At: engine.Coord{Row: row, Col: col}}, nil
}
