package cluster

import "github.com/katalvlaran/pillchase/maze"

// PillAdjacent returns the collectible nodes pill-adjacent to node, in
// neighbour order. For each direction that has a neighbour, it walks straight
// on while the current node holds no collectible; the walk gives up after
// maxSeparation non-collectible nodes or at a dead end.
//
// PillAdjacent only reads m; it does not need node itself to be a collectible.
// Complexity: O(4·maxSeparation).
func PillAdjacent(m Maze, node, maxSeparation int) []int {
	out := make([]int, 0, 4)
	for _, next := range m.Neighbors(node) {
		if next == maze.NoNode {
			continue
		}
		dir := m.MoveToNeighbor(node, next)
		hops := 0
		for hops < maxSeparation && next != maze.NoNode && !isCollectible(m, next) {
			hops++
			next = m.Neighbor(next, dir)
		}
		if hops == maxSeparation || next == maze.NoNode {
			continue
		}
		out = append(out, next)
	}

	return out
}

func isCollectible(m Maze, node int) bool {
	return m.HasPill(node) || m.HasPowerPill(node)
}
