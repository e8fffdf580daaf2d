package generator

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/minesweep/internal/board"
)

// Policy decides which cells around the first click stay mine-free.
type Policy int

const (
	// SafeNeighborhood keeps the first click and its neighbors clear, so the
	// opening move always cascades when the board has room for it.
	SafeNeighborhood Policy = iota
	// SafeCell keeps only the first click clear.
	SafeCell
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case SafeNeighborhood:
		return "neighborhood"
	case SafeCell:
		return "cell"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a policy name back into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "neighborhood", "neighbourhood", "":
		return SafeNeighborhood, nil
	case "cell":
		return SafeCell, nil
	default:
		return 0, fmt.Errorf("unknown safe zone policy %q", s)
	}
}

// SafeZone returns the cells to exclude from mine placement for a first click
// at c. A neighborhood that would leave fewer than mineCount free cells
// shrinks to c alone.
func SafeZone(b *board.Board, c board.Coord, policy Policy, mineCount int) (mapset.Set[board.Coord], error) {
	if !b.InBounds(c) {
		return mapset.Set[board.Coord]{}, fmt.Errorf("safe zone %v: %w", c, board.ErrOutOfBounds)
	}

	zone := mapset.New[board.Coord]()
	zone.Put(c)

	if policy == SafeNeighborhood {
		neighbors := b.Neighbors(c)
		if b.Size()-1-len(neighbors) >= mineCount {
			for _, n := range neighbors {
				zone.Put(n)
			}
		}
	}
	return zone, nil
}
