package pursuit

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/pillchase/cluster"
	"github.com/katalvlaran/pillchase/maze"
)

// Alpha is the default distance weight of the score.
const Alpha = 1.0

// ErrNoCandidate is the panic value (wrapped) when collectibles remain but
// no cluster scores above zero, including when none is tracked any more.
var ErrNoCandidate = errors.New("pursuit: no cluster with a positive score")

// Game is everything a Selector reads from the running game.
type Game interface {
	cluster.Maze
	cluster.Canvas

	ActivePills() []int
	ActivePowerPills() []int
	Level() int
	Position() int
	// NextMoveTowards resolves the first move of a shortest path.
	NextMoveTowards(from, to int) maze.Move
}

// Decision is the outcome of one tick.
type Decision struct {
	// Target is the chosen node, maze.NoNode when nothing is left to chase.
	Target int
	// Move heads toward Target; maze.Neutral when Target is maze.NoNode.
	Move maze.Move
	// Score of the chosen cluster.
	Score float64
	// Clusters is the number of live clusters after this tick's removal.
	Clusters int
	// Removed reports whether the agent's node was taken out of tracking.
	Removed bool
	// Rebuilt reports whether the registry was (re)initialised this tick.
	Rebuilt bool
}

// Option configures a Selector.
type Option func(*Options)

// Options holds Selector settings.
type Options struct {
	Alpha         float64
	MaxSeparation int
	DebugDraw     bool
	Logger        *zap.Logger
	Metrics       *Metrics
}

// DefaultOptions returns alpha 1.0, the default separation, no debug
// drawing, a no-op logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Alpha:         Alpha,
		MaxSeparation: cluster.MaxSeparation,
		Logger:        zap.NewNop(),
	}
}

// WithAlpha sets the distance weight. Non-positive values are ignored.
func WithAlpha(a float64) Option {
	return func(o *Options) {
		if a > 0 {
			o.Alpha = a
		}
	}
}

// WithMaxSeparation sets the pill-adjacency hop bound. Non-positive values are ignored.
func WithMaxSeparation(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxSeparation = n
		}
	}
}

// WithDebugDraw enables painting clusters onto the game overlay each tick.
func WithDebugDraw(on bool) Option {
	return func(o *Options) { o.DebugDraw = on }
}

// WithLogger installs a logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics installs Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}
