package maze_test

import (
	"errors"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pillchase/maze"
)

// corridor is a single horizontal corridor of five pills with the agent at the left end:
//
//	#######
//	#P....#
//	#######
const corridor = `
#######
#P....#
#######
`

func TestParse_Corridor(t *testing.T) {
	g, err := maze.Parse(corridor)
	require.NoError(t, err)

	assert.Equal(t, 7, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 5, g.Nodes())
	assert.Equal(t, 0, g.Level())
	assert.Equal(t, 0, g.Position())
	assert.Equal(t, []int{1, 2, 3, 4}, g.ActivePills())
	assert.Empty(t, g.ActivePowerPills())
	assert.Equal(t, 4, g.Remaining())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		layout string
		want   error
	}{
		{"empty", "", maze.ErrEmptyLayout},
		{"only newlines", "\n\n", maze.ErrEmptyLayout},
		{"jagged", "###\n#P\n###", maze.ErrNonRectangular},
		{"unknown rune", "###\n#Px\n###", maze.ErrUnknownCell},
		{"no start", "###\n#.#\n###", maze.ErrNoStart},
		{"two starts", "####\n#PP#\n####", maze.ErrNoStart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Parse(tc.layout)
			assert.True(t, errors.Is(err, tc.want), "got %v; want %v", err, tc.want)
		})
	}
}

func TestGrid_NeighborsAndMoves(t *testing.T) {
	// Plus-shaped junction:
	//
	//	#####
	//	##.##
	//	#.P.#
	//	##o##
	//	#####
	g := maze.MustParse("#####\n##.##\n#.P.#\n##o##\n#####")
	center := g.NodeAt(2, 2)
	up, right, down, left := g.NodeAt(2, 1), g.NodeAt(3, 2), g.NodeAt(2, 3), g.NodeAt(1, 2)

	assert.Equal(t, [4]int{up, right, down, left}, g.Neighbors(center))
	assert.Equal(t, [4]int{maze.NoNode, maze.NoNode, center, maze.NoNode}, g.Neighbors(up))

	assert.Equal(t, maze.Up, g.MoveToNeighbor(center, up))
	assert.Equal(t, maze.Left, g.MoveToNeighbor(center, left))
	assert.Equal(t, maze.Neutral, g.MoveToNeighbor(up, down), "not adjacent")

	assert.Equal(t, down, g.Neighbor(center, maze.Down))
	assert.Equal(t, maze.NoNode, g.Neighbor(up, maze.Up))
	assert.Equal(t, maze.NoNode, g.Neighbor(center, maze.Neutral))

	assert.True(t, g.HasPowerPill(down))
	assert.False(t, g.HasPill(down))
	assert.True(t, g.HasPill(right))
	assert.False(t, g.HasPill(center))
	assert.False(t, g.HasPill(maze.NoNode))
}

func TestGrid_NodeAtAndCoordinate(t *testing.T) {
	g := maze.MustParse(corridor)
	assert.Equal(t, maze.NoNode, g.NodeAt(0, 0), "wall")
	assert.Equal(t, maze.NoNode, g.NodeAt(-1, 1), "out of bounds")

	for node := 0; node < g.Nodes(); node++ {
		x, y, err := g.Coordinate(node)
		require.NoError(t, err)
		assert.Equal(t, node, g.NodeAt(x, y))
	}
	_, _, err := g.Coordinate(g.Nodes())
	assert.ErrorIs(t, err, maze.ErrNodeRange)
}

func TestGrid_AdvanceConsumesBeforeMoving(t *testing.T) {
	g := maze.MustParse(corridor)
	require.NoError(t, g.Place(1))
	require.True(t, g.HasPill(1))

	pos := g.Advance(maze.Right)
	assert.Equal(t, 2, pos)
	assert.False(t, g.HasPill(1), "pill under the agent is consumed")
	assert.True(t, g.HasPill(2), "pill at the destination survives until the next advance")
	assert.Equal(t, 3, g.Remaining())

	// Blocked moves keep the agent in place.
	require.NoError(t, g.Place(4))
	assert.Equal(t, 4, g.Advance(maze.Up))
	assert.False(t, g.HasPill(4))
	assert.Equal(t, 2, g.Remaining())
}

func TestGrid_EatTwiceIsNoop(t *testing.T) {
	g := maze.MustParse(corridor)
	assert.True(t, g.Eat(3))
	assert.False(t, g.Eat(3))
	assert.False(t, g.Eat(0), "start cell is empty")
	assert.Equal(t, 3, g.Remaining())
}

func TestGrid_ResetChangesLevel(t *testing.T) {
	g := maze.MustParse(corridor)
	g.Eat(1)
	g.AddPoints(colorful.Color{R: 1}, []int{2})

	require.NoError(t, g.Reset("####\n#P.#\n####", 3))
	assert.Equal(t, 3, g.Level())
	assert.Equal(t, []int{1}, g.ActivePills())
	assert.Empty(t, g.Overlay())

	assert.Error(t, g.Reset("", 4))
	assert.Equal(t, 3, g.Level(), "failed reset leaves the grid unchanged")
}

func TestGrid_Overlay(t *testing.T) {
	g := maze.MustParse(corridor)
	nodes := []int{1, 2}
	red := colorful.Hsv(0, 1, 1)
	g.AddPoints(red, nodes)
	nodes[0] = 4

	require.Len(t, g.Overlay(), 1)
	assert.Equal(t, []int{1, 2}, g.Overlay()[0].Nodes, "overlay keeps its own copy")
	assert.Equal(t, red, g.Overlay()[0].Color)

	g.ClearOverlay()
	assert.Empty(t, g.Overlay())
}

func TestGrid_String(t *testing.T) {
	g := maze.MustParse(corridor)
	g.Advance(maze.Right)
	g.Advance(maze.Right)
	assert.Equal(t, "#######\n#  P..#\n#######\n", g.String())
}

func TestMove_StringAndOpposite(t *testing.T) {
	assert.Equal(t, "UP", maze.Up.String())
	assert.Equal(t, "NEUTRAL", maze.Neutral.String())
	for _, m := range maze.Moves {
		assert.Equal(t, m, m.Opposite().Opposite())
		assert.NotEqual(t, m, m.Opposite())
	}
	assert.Equal(t, maze.Neutral, maze.Neutral.Opposite())
}
