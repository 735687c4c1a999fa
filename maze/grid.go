package maze

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/graph/simple"
)

// Grid is a rectangular maze parsed from an ASCII layout. Topology is fixed
// once parsed; collectibles, agent position and overlay change over an episode.
// Grid is not safe for concurrent use.
type Grid struct {
	width, height int
	nodeOf        []int    // cell index -> node index or NoNode
	cellOf        []int    // node index -> cell index
	neighbors     [][4]int // node index -> neighbour per Move
	topology      *simple.UndirectedGraph
	pills         []bool
	powerPills    []bool
	remaining     int
	start         int
	position      int
	level         int
	dist          [][]int // lazily filled BFS rows, nil until first use
	overlay       []Mark
}

// Parse builds a Grid at level 0 from layout. Leading and trailing newlines
// are ignored so raw string literals can be used directly.
// Returns ErrEmptyLayout, ErrNonRectangular, ErrUnknownCell or ErrNoStart.
// Complexity: O(W×H) time and memory.
func Parse(layout string) (*Grid, error) {
	g := &Grid{}
	if err := g.Reset(layout, 0); err != nil {
		return nil, err
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(layout string) *Grid {
	g, err := Parse(layout)
	if err != nil {
		panic(err)
	}

	return g
}

// Reset replaces the topology and collectibles with a freshly parsed layout
// and sets the level. The agent returns to the layout's start cell and the
// overlay is cleared. On error the Grid is left unchanged.
func (g *Grid) Reset(layout string, level int) error {
	rows := splitRows(layout)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrEmptyLayout
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return ErrNonRectangular
		}
	}

	// 1. Classify cells and number walkable ones in row-major order
	kinds := make([]cellKind, w*h)
	nodeOf := make([]int, w*h)
	cellOf := make([]int, 0, w*h)
	start := NoNode
	for y, row := range rows {
		for x, r := range row {
			ci := y*w + x
			k, isStart, err := classify(r)
			if err != nil {
				return fmt.Errorf("%w: %q at (%d,%d)", err, r, x, y)
			}
			kinds[ci] = k
			if k == wall {
				nodeOf[ci] = NoNode
				continue
			}
			nodeOf[ci] = len(cellOf)
			cellOf = append(cellOf, ci)
			if isStart {
				if start != NoNode {
					return ErrNoStart
				}
				start = nodeOf[ci]
			}
		}
	}
	if start == NoNode {
		return ErrNoStart
	}

	// 2. Precompute neighbours in fixed Up, Right, Down, Left order
	n := len(cellOf)
	neighbors := make([][4]int, n)
	pills := make([]bool, n)
	powerPills := make([]bool, n)
	remaining := 0
	for node, ci := range cellOf {
		x, y := ci%w, ci/w
		for _, m := range Moves {
			dx, dy := m.offset()
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				neighbors[node][m] = NoNode
				continue
			}
			neighbors[node][m] = nodeOf[ny*w+nx]
		}
		switch kinds[ci] {
		case pill:
			pills[node] = true
			remaining++
		case powerPill:
			powerPills[node] = true
			remaining++
		}
	}

	// 3. Mirror the corridors into an undirected graph for path queries
	topology := simple.NewUndirectedGraph()
	for node := range neighbors {
		topology.AddNode(simple.Node(node))
	}
	for u, adj := range neighbors {
		for _, v := range adj {
			if v > u {
				topology.SetEdge(topology.NewEdge(simple.Node(u), simple.Node(v)))
			}
		}
	}

	*g = Grid{
		width:      w,
		height:     h,
		nodeOf:     nodeOf,
		cellOf:     cellOf,
		neighbors:  neighbors,
		topology:   topology,
		pills:      pills,
		powerPills: powerPills,
		remaining:  remaining,
		start:      start,
		position:   start,
		level:      level,
		dist:       make([][]int, n),
	}

	return nil
}

func splitRows(layout string) []string {
	layout = strings.ReplaceAll(layout, "\r", "")
	layout = strings.Trim(layout, "\n")
	if layout == "" {
		return nil
	}

	return strings.Split(layout, "\n")
}

func classify(r rune) (cellKind, bool, error) {
	switch r {
	case '#':
		return wall, false, nil
	case ' ':
		return corridor, false, nil
	case '.':
		return pill, false, nil
	case 'o':
		return powerPill, false, nil
	case 'P':
		return corridor, true, nil
	default:
		return wall, false, ErrUnknownCell
	}
}

// Width returns the layout width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the layout height in cells.
func (g *Grid) Height() int { return g.height }

// Nodes returns the number of walkable nodes.
func (g *Grid) Nodes() int { return len(g.cellOf) }

// Level returns the current level number.
func (g *Grid) Level() int { return g.level }

// Position returns the agent's current node.
func (g *Grid) Position() int { return g.position }

// Start returns the agent's start node for the current layout.
func (g *Grid) Start() int { return g.start }

// valid reports whether node is a node index of g.
func (g *Grid) valid(node int) bool {
	return node >= 0 && node < len(g.cellOf)
}

// NodeAt returns the node at cell (x,y), or NoNode for walls and
// out-of-bounds coordinates.
// Complexity: O(1).
func (g *Grid) NodeAt(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return NoNode
	}

	return g.nodeOf[y*g.width+x]
}

// Coordinate converts a node index back to its (x,y) cell.
// Returns ErrNodeRange for an invalid node.
func (g *Grid) Coordinate(node int) (x, y int, err error) {
	if !g.valid(node) {
		return 0, 0, ErrNodeRange
	}
	ci := g.cellOf[node]

	return ci % g.width, ci / g.width, nil
}

// Neighbors returns the neighbours of node in Up, Right, Down, Left order,
// with NoNode where a wall or the border blocks that direction.
func (g *Grid) Neighbors(node int) [4]int {
	if !g.valid(node) {
		return [4]int{NoNode, NoNode, NoNode, NoNode}
	}

	return g.neighbors[node]
}

// Neighbor steps one node from node in direction m.
// Returns NoNode when blocked, for Neutral, or for an invalid node.
func (g *Grid) Neighbor(node int, m Move) int {
	if !g.valid(node) || m < Up || m > Left {
		return NoNode
	}

	return g.neighbors[node][m]
}

// MoveToNeighbor returns the move leading from one node to a direct
// neighbour, or Neutral when to is not adjacent to from.
func (g *Grid) MoveToNeighbor(from, to int) Move {
	if !g.valid(from) || to == NoNode {
		return Neutral
	}
	for _, m := range Moves {
		if g.neighbors[from][m] == to {
			return m
		}
	}

	return Neutral
}

// HasPill reports whether node currently holds an uneaten pill.
func (g *Grid) HasPill(node int) bool {
	return g.valid(node) && g.pills[node]
}

// HasPowerPill reports whether node currently holds an uneaten power pill.
func (g *Grid) HasPowerPill(node int) bool {
	return g.valid(node) && g.powerPills[node]
}

// ActivePills returns the uneaten pill nodes in ascending order.
func (g *Grid) ActivePills() []int {
	return collect(g.pills)
}

// ActivePowerPills returns the uneaten power pill nodes in ascending order.
func (g *Grid) ActivePowerPills() []int {
	return collect(g.powerPills)
}

func collect(flags []bool) []int {
	out := make([]int, 0, len(flags))
	for node, on := range flags {
		if on {
			out = append(out, node)
		}
	}

	return out
}

// Remaining returns the number of uneaten pills and power pills.
func (g *Grid) Remaining() int { return g.remaining }

// Eat consumes the collectible at node, if any, and reports whether one was there.
func (g *Grid) Eat(node int) bool {
	if !g.valid(node) || (!g.pills[node] && !g.powerPills[node]) {
		return false
	}
	g.pills[node] = false
	g.powerPills[node] = false
	g.remaining--

	return true
}

// Advance consumes the collectible under the agent and then moves it one
// node in direction m. Moving into a wall or Neutral leaves the agent in place.
// Returns the agent's new node.
func (g *Grid) Advance(m Move) int {
	g.Eat(g.position)
	if next := g.Neighbor(g.position, m); next != NoNode {
		g.position = next
	}

	return g.position
}

// Place moves the agent directly to node without consuming anything.
func (g *Grid) Place(node int) error {
	if !g.valid(node) {
		return ErrNodeRange
	}
	g.position = node

	return nil
}

// AddPoints records a debug overlay entry painting nodes with c.
func (g *Grid) AddPoints(c colorful.Color, nodes []int) {
	cp := make([]int, len(nodes))
	copy(cp, nodes)
	g.overlay = append(g.overlay, Mark{Color: c, Nodes: cp})
}

// Overlay returns the overlay entries recorded since the last ClearOverlay.
func (g *Grid) Overlay() []Mark { return g.overlay }

// ClearOverlay drops all recorded overlay entries.
func (g *Grid) ClearOverlay() { g.overlay = g.overlay[:0] }

// String renders the current state in layout notation, with 'P' on the agent.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			node := g.nodeOf[y*g.width+x]
			switch {
			case node == NoNode:
				b.WriteByte('#')
			case node == g.position:
				b.WriteByte('P')
			case g.pills[node]:
				b.WriteByte('.')
			case g.powerPills[node]:
				b.WriteByte('o')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
