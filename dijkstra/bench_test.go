package dijkstra_test

import (
	"strconv"
	"testing"

	"github.com/vizwalk/vizwalk/core"
	"github.com/vizwalk/vizwalk/dijkstra"
)

// weightedGrid builds an n×n grid with small varying weights.
func weightedGrid(n int) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	id := func(r, c int) string { return strconv.Itoa(r) + ":" + strconv.Itoa(c) }
	w := func(r, c int) int64 { return int64((r+c)%7 + 1) }
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n {
				_, _ = g.AddEdge(id(r, c), id(r, c+1), w(r, c))
			}
			if r+1 < n {
				_, _ = g.AddEdge(id(r, c), id(r+1, c), w(r, c))
			}
		}
	}

	return g
}

func BenchmarkDijkstra_Grid32(b *testing.B) {
	g := weightedGrid(32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Dijkstra(g, dijkstra.Source("0:0")); err != nil {
			b.Fatal(err)
		}
	}
}
