package cluster

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
)

// Registry owns the live components of one episode, in registration order.
// It is single-owner and not safe for concurrent use.
type Registry struct {
	maze  Maze
	opts  Options
	comps []*Component
}

// NewRegistry builds a registry holding one component with every node of
// collectibles (active pills and power pills). An empty input yields an
// empty registry.
func NewRegistry(m Maze, collectibles []int, opts ...Option) *Registry {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	r := &Registry{maze: m, opts: o}
	if c, err := newComponent(collectibles, o.MaxSeparation); err == nil {
		r.comps = append(r.comps, c)
	}
	o.Logger.Debug("cluster registry built",
		zap.Int("collectibles", r.Size()),
		zap.Int("components", len(r.comps)),
		zap.Int("max_separation", o.MaxSeparation))

	return r
}

// Len returns the number of live components.
func (r *Registry) Len() int { return len(r.comps) }

// Components returns the live components in registry order. The slice is
// a copy; the components themselves are shared.
func (r *Registry) Components() []*Component {
	out := make([]*Component, len(r.comps))
	copy(out, r.comps)

	return out
}

// Size returns the total number of tracked nodes.
func (r *Registry) Size() int {
	total := 0
	for _, c := range r.comps {
		total += c.Len()
	}

	return total
}

// Members returns the union of all component members in ascending order.
func (r *Registry) Members() []int {
	out := make([]int, 0, r.Size())
	for _, c := range r.comps {
		out = append(out, c.Members()...)
	}
	sort.Ints(out)

	return out
}

// RemoveElement removes node from whichever component holds it. That
// component is dropped and its non-empty offspring are appended after the
// untouched components, in offspring order. Returns the number of replaced
// components: 0 when node was not tracked.
func (r *Registry) RemoveElement(node int) int {
	kept := r.comps[:0]
	var added []*Component
	replaced := 0
	for _, c := range r.comps {
		offspring, ok := c.Remove(r.maze, node)
		if !ok {
			kept = append(kept, c)
			continue
		}
		replaced++
		added = append(added, offspring...)
		r.opts.Logger.Debug("component split",
			zap.Int("node", node),
			zap.Int("offspring", len(offspring)),
			zap.Ints("sizes", sizes(offspring)))
	}
	// Clear the tail so dropped components can be collected.
	for i := len(kept); i < len(r.comps); i++ {
		r.comps[i] = nil
	}
	r.comps = append(kept, added...)

	return replaced
}

func sizes(cs []*Component) []int {
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = c.Len()
	}

	return out
}

// NearestPerCluster returns, for every component in registry order, its
// member closest to origin. No sorting by distance is done.
// A wrapped ErrEmptyCluster means a registry invariant has been broken.
func (r *Registry) NearestPerCluster(origin int) ([]NodeDistance, error) {
	out := make([]NodeDistance, 0, len(r.comps))
	for i, c := range r.comps {
		nd, err := c.NearestTo(r.maze, origin)
		if err != nil {
			return nil, fmt.Errorf("cluster %d: %w", i, err)
		}
		out = append(out, nd)
	}

	return out, nil
}

// Hue returns the overlay colour of component i out of n: hues are spread
// evenly around the colour wheel at full saturation and value.
func Hue(i, n int) colorful.Color {
	if n <= 0 {
		return colorful.Hsv(0, 1, 1)
	}

	return colorful.Hsv(360*float64(i)/float64(n), 1, 1)
}

// DrawAll paints every component onto cv, each with its own hue.
func (r *Registry) DrawAll(cv Canvas) {
	for i, c := range r.comps {
		c.Draw(cv, Hue(i, len(r.comps)))
	}
}
