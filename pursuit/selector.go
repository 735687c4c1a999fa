package pursuit

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/pillchase/cluster"
	"github.com/katalvlaran/pillchase/maze"
)

// Selector chooses a pursuit target every tick. It is the single owner of
// the cluster registry and must not be shared between goroutines.
type Selector struct {
	opts     Options
	registry *cluster.Registry
	level    int
	episode  string
	log      *zap.Logger
}

// New returns a Selector that builds its registry on the first Decide.
func New(opts ...Option) *Selector {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Selector{opts: o, log: o.Logger}
}

// Registry returns the current registry, nil before the first Decide.
func (s *Selector) Registry() *cluster.Registry { return s.registry }

// Episode returns the id of the current episode, empty before the first Decide.
func (s *Selector) Episode() string { return s.episode }

// Move is Decide(g).Move.
func (s *Selector) Move(g Game) maze.Move { return s.Decide(g).Move }

// Decide runs one tick against g. It panics with a wrapped
// cluster.ErrEmptyCluster when the registry holds an empty cluster, and with
// a wrapped ErrNoCandidate when collectibles remain but no tracked cluster
// leads to any of them.
func (s *Selector) Decide(g Game) Decision {
	var d Decision
	pos := g.Position()

	// 1. (Re)build on first use and on level change
	if s.registry == nil || g.Level() != s.level {
		s.rebuild(g)
		d.Rebuilt = true
	}

	// 2. The node under the agent is about to be eaten. This also runs on
	// the rebuild tick: a start on a collectible must not stay tracked.
	if g.HasPill(pos) || g.HasPowerPill(pos) {
		d.Removed = s.remove(pos)
	}

	// 3. Nearest node per cluster
	nearest, err := s.registry.NearestPerCluster(pos)
	if err != nil {
		panic(fmt.Errorf("pursuit: episode %s: %w", s.episode, err))
	}
	d.Clusters = len(nearest)
	s.observeTick(d.Clusters)
	if len(nearest) == 0 {
		if left := untracked(g, pos); left > 0 {
			panic(fmt.Errorf("%w: episode %s, no clusters but %d collectibles left", ErrNoCandidate, s.episode, left))
		}
		d.Target, d.Move = maze.NoNode, maze.Neutral
		s.log.Debug("nothing left to chase", zap.String("episode", s.episode), zap.Int("position", pos))

		return d
	}

	// 4. Score and pick
	best, score, ok := Best(nearest, s.opts.Alpha)
	if !ok {
		panic(fmt.Errorf("%w: episode %s, %d clusters from node %d", ErrNoCandidate, s.episode, len(nearest), pos))
	}
	d.Target, d.Score = best.Index, score

	if s.opts.DebugDraw {
		s.registry.DrawAll(g)
	}

	// 5. Direction resolution belongs to the game
	d.Move = g.NextMoveTowards(pos, d.Target)
	s.log.Debug("target chosen",
		zap.String("episode", s.episode),
		zap.Int("position", pos),
		zap.Int("target", d.Target),
		zap.Float64("distance", best.Distance),
		zap.Int("size", best.Size),
		zap.Float64("score", score),
		zap.Stringer("move", d.Move))

	return d
}

func (s *Selector) rebuild(g Game) {
	pills, power := g.ActivePills(), g.ActivePowerPills()
	all := make([]int, 0, len(pills)+len(power))
	all = append(all, pills...)
	all = append(all, power...)

	s.level = g.Level()
	s.episode = uuid.NewString()
	s.registry = cluster.NewRegistry(g, all,
		cluster.WithMaxSeparation(s.opts.MaxSeparation),
		cluster.WithLogger(s.log.With(zap.String("episode", s.episode))))
	if m := s.opts.Metrics; m != nil {
		m.Rebuilds.Inc()
	}
	s.log.Info("episode started",
		zap.String("episode", s.episode),
		zap.Int("level", s.level),
		zap.Int("pills", len(pills)),
		zap.Int("power_pills", len(power)))
}

// remove drops node from the registry and reports whether it was tracked.
func (s *Selector) remove(node int) bool {
	before := s.registry.Len()
	replaced := s.registry.RemoveElement(node)
	if replaced == 0 {
		return false
	}
	if m := s.opts.Metrics; m != nil {
		m.Removals.Inc()
		if offspring := s.registry.Len() - before + replaced; offspring > 1 {
			m.Splits.Inc()
		}
	}

	return true
}

// untracked counts the collectibles on the board other than the one under
// the agent.
func untracked(g Game, pos int) int {
	n := 0
	for _, nodes := range [][]int{g.ActivePills(), g.ActivePowerPills()} {
		for _, node := range nodes {
			if node != pos {
				n++
			}
		}
	}

	return n
}

func (s *Selector) observeTick(clusters int) {
	if m := s.opts.Metrics; m != nil {
		m.Ticks.Inc()
		m.Clusters.Set(float64(clusters))
	}
}
