// Package sim plays a maze to completion with a pursuit.Selector, one
// decision per tick, without any timing, ghosts or scoring. It exists to
// drive the selector from the CLI and from tests.
package sim

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pillchase/maze"
	"github.com/katalvlaran/pillchase/pursuit"
)

// ErrTickLimit is returned when collectibles remain after MaxTicks ticks.
var ErrTickLimit = errors.New("sim: tick limit reached")

// Tick describes one decision, reported to the observer before the move is applied.
type Tick struct {
	N        int
	Level    int
	Position int
	Decision pursuit.Decision
	Grid     *maze.Grid
}

// Result summarises a run.
type Result struct {
	Ticks  int
	Levels int // levels cleared
	Eaten  int
	Moves  []maze.Move
}

// Option configures Run.
type Option func(*Options)

// Options holds Run settings.
type Options struct {
	Ctx      context.Context
	MaxTicks int
	Levels   []string
	Observer func(Tick) error
	Logger   *zap.Logger
}

// DefaultOptions returns a background context, 10000 ticks, no extra
// levels, no observer and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxTicks: 10000,
		Logger:   zap.NewNop(),
	}
}

// WithContext sets a context checked before every tick. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxTicks bounds the run. Non-positive values are ignored.
func WithMaxTicks(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxTicks = n
		}
	}
}

// WithLevels queues layouts to load, in order, each time a level is cleared.
func WithLevels(layouts ...string) Option {
	return func(o *Options) { o.Levels = append(o.Levels, layouts...) }
}

// WithObserver installs fn, called after every decision. A non-nil error aborts the run.
func WithObserver(fn func(Tick) error) Option {
	return func(o *Options) { o.Observer = fn }
}

// WithLogger installs a logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Run ticks s against g until every level is cleared.
// Returns ErrTickLimit, the context error, a wrapped level parse error, or
// the observer's error; res holds the progress made either way.
func Run(g *maze.Grid, s *pursuit.Selector, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	res := &Result{}
	pending := o.Levels

	for {
		// 1. Level cleared: load the next one or stop
		if g.Remaining() == 0 {
			res.Levels++
			o.Logger.Info("level cleared", zap.Int("level", g.Level()), zap.Int("ticks", res.Ticks))
			if len(pending) == 0 {
				return res, nil
			}
			if err := g.Reset(pending[0], g.Level()+1); err != nil {
				return res, fmt.Errorf("sim: level %d: %w", g.Level()+1, err)
			}
			pending = pending[1:]
			continue
		}

		// 2. Limits
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}
		if res.Ticks >= o.MaxTicks {
			o.Logger.Warn("tick limit reached", zap.Int("remaining", g.Remaining()))
			return res, ErrTickLimit
		}

		// 3. Decide, report, apply
		g.ClearOverlay()
		pos := g.Position()
		d := s.Decide(g)
		if o.Observer != nil {
			if err := o.Observer(Tick{N: res.Ticks, Level: g.Level(), Position: pos, Decision: d, Grid: g}); err != nil {
				return res, fmt.Errorf("sim: observer at tick %d: %w", res.Ticks, err)
			}
		}
		before := g.Remaining()
		g.Advance(d.Move)
		res.Eaten += before - g.Remaining()
		res.Moves = append(res.Moves, d.Move)
		res.Ticks++
	}
}
