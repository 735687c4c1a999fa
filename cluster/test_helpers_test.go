package cluster_test

import (
	"math"
	"sort"

	"github.com/katalvlaran/pillchase/maze"
)

// graphMaze is a hand-wired maze for scenarios that are awkward to draw as a
// grid. adj[n] lists n's neighbours in maze.Moves order.
type graphMaze struct {
	adj        map[int][4]int
	pills      map[int]bool
	powerPills map[int]bool
}

var none = maze.NoNode

func newGraphMaze(adj map[int][4]int, pills ...int) *graphMaze {
	g := &graphMaze{adj: adj, pills: map[int]bool{}, powerPills: map[int]bool{}}
	for _, p := range pills {
		g.pills[p] = true
	}

	return g
}

// line wires nodes from..to as a left-to-right corridor.
func line(from, to int) map[int][4]int {
	adj := make(map[int][4]int)
	for n := from; n <= to; n++ {
		right, left := n+1, n-1
		if n == to {
			right = none
		}
		if n == from {
			left = none
		}
		adj[n] = [4]int{none, right, none, left}
	}

	return adj
}

func (g *graphMaze) Neighbors(node int) [4]int {
	if a, ok := g.adj[node]; ok {
		return a
	}

	return [4]int{none, none, none, none}
}

func (g *graphMaze) MoveToNeighbor(from, to int) maze.Move {
	for i, n := range g.Neighbors(from) {
		if n == to && n != none {
			return maze.Move(i)
		}
	}

	return maze.Neutral
}

func (g *graphMaze) Neighbor(node int, m maze.Move) int {
	if m < maze.Up || m > maze.Left {
		return none
	}

	return g.Neighbors(node)[m]
}

func (g *graphMaze) HasPill(node int) bool      { return g.pills[node] }
func (g *graphMaze) HasPowerPill(node int) bool { return g.powerPills[node] }

func (g *graphMaze) Distance(from, to int) float64 {
	dist := map[int]int{from: 0}
	queue := []int{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == to {
			return float64(dist[u])
		}
		for _, v := range g.Neighbors(u) {
			if v == none {
				continue
			}
			if _, seen := dist[v]; !seen {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return math.Inf(1)
}

// collectibles returns the active pills and power pills of g, ascending.
func collectibles(g *maze.Grid) []int {
	out := append(g.ActivePills(), g.ActivePowerPills()...)
	sort.Ints(out)

	return out
}

// denseLayout has a pill on every corridor cell except the start, and every
// pill reaches every other through pill adjacency.
//
//	#########
//	#P......#
//	#.##.##.#
//	#.......#
//	#.##.##.#
//	#o.....o#
//	#########
const denseLayout = `
#########
#P......#
#.##.##.#
#.......#
#.##.##.#
#o.....o#
#########
`

// islandsLayout has two pill groups more than MaxSeparation hops apart.
//
//	#################
//	#P..          ..#
//	#################
const islandsLayout = `
#################
#P..          ..#
#################
`
