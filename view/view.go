// Package view renders a maze, its collectibles and the cluster overlay to a
// terminal through tcell.
package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/pillchase/maze"
)

// Glyphs used by Frame.
const (
	WallRune      = '█'
	PillRune      = '·'
	PowerPillRune = '●'
	AgentRune     = 'ᗧ'
	EmptyRune     = ' '
)

// Cell is one rendered character. Overlaid is set when a debug overlay
// coloured the cell; Color is then its foreground.
type Cell struct {
	Rune     rune
	Color    colorful.Color
	Overlaid bool
}

// Frame lays out g as rows of cells. Overlay marks recolour the nodes they
// list; a later mark wins over an earlier one.
func Frame(g *maze.Grid) [][]Cell {
	rows := make([][]Cell, g.Height())
	for y := range rows {
		rows[y] = make([]Cell, g.Width())
		for x := range rows[y] {
			node := g.NodeAt(x, y)
			switch {
			case node == maze.NoNode:
				rows[y][x].Rune = WallRune
			case node == g.Position():
				rows[y][x].Rune = AgentRune
			case g.HasPill(node):
				rows[y][x].Rune = PillRune
			case g.HasPowerPill(node):
				rows[y][x].Rune = PowerPillRune
			default:
				rows[y][x].Rune = EmptyRune
			}
		}
	}
	for _, mark := range g.Overlay() {
		for _, node := range mark.Nodes {
			x, y, err := g.Coordinate(node)
			if err != nil {
				continue
			}
			rows[y][x].Color = mark.Color
			rows[y][x].Overlaid = true
		}
	}

	return rows
}

// Style returns the tcell style of c.
func Style(c Cell) tcell.Style {
	switch {
	case c.Overlaid:
		r, g, b := c.Color.RGB255()
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	case c.Rune == WallRune:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case c.Rune == AgentRune:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}

// Draw paints frame at the top-left corner of screen, followed by a status
// line, and shows it.
func Draw(screen tcell.Screen, frame [][]Cell, status string) {
	screen.Clear()
	for y, row := range frame {
		for x, c := range row {
			screen.SetContent(x, y, c.Rune, nil, Style(c))
		}
	}
	for i, r := range []rune(status) {
		screen.SetContent(i, len(frame)+1, r, nil, tcell.StyleDefault)
	}
	screen.Show()
}
