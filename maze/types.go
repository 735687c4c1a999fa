package maze

import (
	"errors"

	"github.com/lucasb-eyer/go-colorful"
)

// NoNode marks the absence of a node, e.g. a wall in a given direction.
const NoNode = -1

// Sentinel errors for maze construction and queries.
var (
	// ErrEmptyLayout indicates the layout has no rows or no columns.
	ErrEmptyLayout = errors.New("maze: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrUnknownCell indicates a rune that is not part of the layout legend.
	ErrUnknownCell = errors.New("maze: unknown layout cell")
	// ErrNoStart indicates the layout does not have exactly one 'P' cell.
	ErrNoStart = errors.New("maze: layout needs exactly one agent start 'P'")
	// ErrNodeRange indicates a node index outside the maze.
	ErrNodeRange = errors.New("maze: node index out of range")
)

// Move is one of the four compass moves, or Neutral.
type Move int

const (
	Up Move = iota
	Right
	Down
	Left
	Neutral
)

// Moves lists the compass moves in neighbour order.
var Moves = [4]Move{Up, Right, Down, Left}

// String implements fmt.Stringer.
func (m Move) String() string {
	switch m {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	default:
		return "NEUTRAL"
	}
}

// Opposite returns the reverse move. Neutral is its own opposite.
func (m Move) Opposite() Move {
	switch m {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Neutral
	}
}

// offset returns the (dx, dy) grid step of m.
func (m Move) offset() (int, int) {
	switch m {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Cell kinds of a parsed layout.
type cellKind uint8

const (
	wall cellKind = iota
	corridor
	pill
	powerPill
)

// Mark is one debug overlay entry: a set of nodes painted with one colour.
type Mark struct {
	Color colorful.Color
	Nodes []int
}
