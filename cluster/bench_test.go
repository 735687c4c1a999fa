package cluster_test

import (
	"testing"

	"github.com/katalvlaran/pillchase/cluster"
	"github.com/katalvlaran/pillchase/maze"
)

// BenchmarkComponent_Remove measures splitting the single initial component
// of the first built-in level at a corridor pill.
// Complexity: O(k·MaxSeparation·log k) per removal for k members.
func BenchmarkComponent_Remove(b *testing.B) {
	// 1. Fixed topology and the node to remove: the pill left of the start.
	g := maze.MustParse(maze.Builtin[0])
	all := collectibles(g)
	node := g.NodeAt(8, 8)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// 2. A fresh component each round, since Remove consumes its members.
		b.StopTimer()
		c, err := cluster.NewComponent(all)
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()

		if _, ok := c.Remove(g, node); !ok {
			b.Fatal("node not tracked")
		}
	}
}

// BenchmarkRegistry_NearestPerCluster measures the per-tick query after the
// first level has been split into several clusters. Distance rows are warm
// after the first round.
func BenchmarkRegistry_NearestPerCluster(b *testing.B) {
	g := maze.MustParse(maze.Builtin[0])
	r := cluster.NewRegistry(g, collectibles(g))
	for _, x := range []int{4, 8, 10, 14} {
		r.RemoveElement(g.NodeAt(x, 4))
	}
	origin := g.Start()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.NearestPerCluster(origin); err != nil {
			b.Fatal(err)
		}
	}
}
