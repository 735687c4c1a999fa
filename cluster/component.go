package cluster

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tidwall/btree"
)

// Component is a connected cluster of collectible nodes, held as an ordered
// set so iteration (and therefore tie-breaking) is deterministic.
// A Component is superseded by the result of a successful Remove and must
// not be used afterwards.
type Component struct {
	members *btree.BTreeG[int]
	sep     int
}

func newSet() *btree.BTreeG[int] {
	return btree.NewBTreeGOptions(func(a, b int) bool { return a < b }, btree.Options{NoLocks: true})
}

// NewComponent builds a component from nodes; duplicates collapse.
// Returns ErrEmptyComponent when nodes is empty.
func NewComponent(nodes []int) (*Component, error) {
	return newComponent(nodes, MaxSeparation)
}

func newComponent(nodes []int, sep int) (*Component, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyComponent
	}
	set := newSet()
	for _, n := range nodes {
		set.Set(n)
	}

	return &Component{members: set, sep: sep}, nil
}

// Len returns the number of members.
func (c *Component) Len() int { return c.members.Len() }

// Contains reports whether node is a member.
func (c *Component) Contains(node int) bool {
	_, ok := c.members.Get(node)

	return ok
}

// Members returns the members in ascending order.
func (c *Component) Members() []int {
	out := make([]int, 0, c.members.Len())
	c.members.Scan(func(n int) bool {
		out = append(out, n)
		return true
	})

	return out
}

// Remove takes node out of the component and returns the offspring that
// replace it. The boolean is false when node is not a member; the component
// is then untouched and must be kept by the caller.
//
// Otherwise each pill-adjacent neighbour of node (evaluated against the
// current state of m) seeds a flood-fill that moves every reachable,
// still-member node into a fresh offspring. Each node is pulled at most once,
// so offspring are disjoint. Empty offspring are dropped; the result may be
// empty. Members reachable from no direct neighbour are not carried over.
func (c *Component) Remove(m Maze, node int) ([]*Component, bool) {
	if _, ok := c.members.Delete(node); !ok {
		return nil, false
	}

	var offspring []*Component
	for _, seed := range PillAdjacent(m, node, c.sep) {
		if set := c.pull(m, seed); set.Len() > 0 {
			offspring = append(offspring, &Component{members: set, sep: c.sep})
		}
	}

	return offspring, true
}

// pull moves seed and everything pill-adjacent-reachable from it through
// current members into a new set. It uses an explicit stack; neighbours are
// pushed in reverse so they pop in neighbour order.
func (c *Component) pull(m Maze, seed int) *btree.BTreeG[int] {
	out := newSet()
	stack := []int{seed}
	var n int
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := c.members.Delete(n); !ok {
			continue
		}
		out.Set(n)
		adj := PillAdjacent(m, n, c.sep)
		for i := len(adj) - 1; i >= 0; i-- {
			stack = append(stack, adj[i])
		}
	}

	return out
}

// NearestTo returns the member closest to origin by path distance. Ties keep
// the lowest node index. Unreachable members count as +Inf. Returns ErrEmptyCluster for a component without members.
func (c *Component) NearestTo(m Maze, origin int) (NodeDistance, error) {
	best := NodeDistance{Index: -1, Distance: math.Inf(1), Size: c.members.Len()}
	found := false
	c.members.Scan(func(n int) bool {
		if d := m.Distance(origin, n); !found || d < best.Distance {
			best.Index, best.Distance = n, d
			found = true
		}
		return true
	})
	if !found {
		return NodeDistance{}, fmt.Errorf("nearest to %d: %w", origin, ErrEmptyCluster)
	}

	return best, nil
}

// Draw paints every member onto cv with one colour.
func (c *Component) Draw(cv Canvas, col colorful.Color) {
	cv.AddPoints(col, c.Members())
}
