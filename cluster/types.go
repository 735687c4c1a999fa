package cluster

import (
	"errors"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/katalvlaran/pillchase/maze"
)

// MaxSeparation is the default hop bound of the pill-adjacency walk.
const MaxSeparation = 10

var (
	// ErrEmptyComponent is returned when a component is built from no nodes.
	ErrEmptyComponent = errors.New("cluster: component needs at least one node")

	// ErrEmptyCluster is returned when the nearest node of an empty component is requested.
	ErrEmptyCluster = errors.New("cluster: no elements in cluster")
)

// Maze is the read-only topology a component consults.
// Neighbors reports up to four neighbours in maze.Moves order, maze.NoNode
// where a direction is blocked.
type Maze interface {
	Neighbors(node int) [4]int
	MoveToNeighbor(from, to int) maze.Move
	Neighbor(node int, m maze.Move) int
	HasPill(node int) bool
	HasPowerPill(node int) bool
	Distance(from, to int) float64
}

// Canvas receives debug overlays.
type Canvas interface {
	AddPoints(c colorful.Color, nodes []int)
}

// NodeDistance is the closest member of a component to some origin.
type NodeDistance struct {
	// Index is the closest member node.
	Index int
	// Distance is the path distance from the origin to Index.
	Distance float64
	// Size is the number of members of the component at query time.
	Size int
}

// Option configures a Registry.
type Option func(*Options)

// Options holds Registry settings.
type Options struct {
	// MaxSeparation bounds the pill-adjacency walk; values < 1 fall back to MaxSeparation.
	MaxSeparation int
	// Logger receives debug events for rebuilds and splits.
	Logger *zap.Logger
}

// DefaultOptions returns Options with MaxSeparation and a no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxSeparation: MaxSeparation,
		Logger:        zap.NewNop(),
	}
}

// WithMaxSeparation overrides the adjacency hop bound. Non-positive values are ignored.
func WithMaxSeparation(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxSeparation = n
		}
	}
}

// WithLogger installs a logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
