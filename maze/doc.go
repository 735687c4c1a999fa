// Package maze provides a grid-backed maze that answers the topology and
// collectible queries a pill-pursuit agent needs.
//
// What:
//
//   - Grid parses an ASCII layout into walkable nodes with 4-way adjacency.
//   - Nodes are indexed in row-major order over walkable cells only.
//   - Path distances come from a breadth-first search per source, cached.
//   - Pills and power pills are tracked per node and consumed by Advance.
//   - AddPoints records a debug overlay of coloured node sets.
//
// Why:
//
//   - Drive clustering and target-selection code without a game engine.
//   - Reproduce scenarios deterministically in tests and from the CLI.
//
// Layout legend:
//
//	#  wall
//	.  pill
//	o  power pill
//	   empty corridor (space)
//	P  agent start (empty corridor)
//
// Complexity:
//
//   - Parse:            O(W×H) time and memory.
//   - Distance:         O(N) per uncached source, O(1) afterwards; O(N²) memory worst case.
//   - NextMoveTowards:  O(1) after the target row is cached.
//
// Errors:
//
//   - ErrEmptyLayout     layout has no rows or no columns.
//   - ErrNonRectangular  rows of differing lengths.
//   - ErrUnknownCell     a rune outside the legend.
//   - ErrNoStart         no (or more than one) 'P' cell.
//   - ErrNodeRange       node index outside [0, Nodes()).
package maze
