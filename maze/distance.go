package maze

import (
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// unreached marks a node not reached by a BFS row.
const unreached = -1

// row returns the hop distances from source to every node, computing and
// caching them on first use with a breadth-first walk of the topology.
// Distances are symmetric since moves are reversible.
// Complexity: O(N) on first call per source, O(1) afterwards.
func (g *Grid) row(source int) []int {
	if d := g.dist[source]; d != nil {
		return d
	}
	d := make([]int, len(g.cellOf))
	for i := range d {
		d[i] = unreached
	}
	var bf traverse.BreadthFirst
	bf.Walk(g.topology, simple.Node(source), func(n graph.Node, depth int) bool {
		d[n.ID()] = depth
		return false
	})
	g.dist[source] = d

	return d
}

// Distance returns the shortest-path hop count between two nodes, or +Inf
// when either node is invalid or to is unreachable from from.
func (g *Grid) Distance(from, to int) float64 {
	if !g.valid(from) || !g.valid(to) {
		return math.Inf(1)
	}
	d := g.row(from)[to]
	if d == unreached {
		return math.Inf(1)
	}

	return float64(d)
}

// NextMoveTowards returns the move that follows a shortest path from one
// node to another. Among equally good neighbours the first in Up, Right,
// Down, Left order wins. Returns Neutral when from == to or to is unreachable.
func (g *Grid) NextMoveTowards(from, to int) Move {
	if !g.valid(from) || !g.valid(to) || from == to {
		return Neutral
	}
	toRow := g.row(to)
	best, bestDist := Neutral, math.MaxInt
	for _, m := range Moves {
		n := g.neighbors[from][m]
		if n == NoNode || toRow[n] == unreached {
			continue
		}
		if toRow[n] < bestDist {
			best, bestDist = m, toRow[n]
		}
	}

	return best
}
