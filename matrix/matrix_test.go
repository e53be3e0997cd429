package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizwalk/vizwalk/bfs"
	"github.com/vizwalk/vizwalk/core"
	"github.com/vizwalk/vizwalk/dijkstra"
	"github.com/vizwalk/vizwalk/matrix"
)

func TestNewAdjacency_Validation(t *testing.T) {
	_, err := matrix.NewAdjacency(nil)
	assert.ErrorIs(t, err, matrix.ErrNilGraph)
	_, err = matrix.NewIncidence(nil)
	assert.ErrorIs(t, err, matrix.ErrNilGraph)
	_, err = matrix.FloydWarshall(nil)
	assert.ErrorIs(t, err, matrix.ErrNilGraph)
}

// TestNewAdjacency_Demo pins the 5-vertex demonstration graph used by the
// matrix scenes.
func TestNewAdjacency_Demo(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "5"}, {"1", "3"}, {"3", "5"},
	} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	adj, err := matrix.NewAdjacency(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, adj.Index)

	want := [][]float64{
		{0, 1, 1, 0, 0},
		{1, 0, 1, 0, 0},
		{1, 1, 0, 1, 1},
		{0, 0, 1, 0, 1},
		{0, 0, 1, 1, 0},
	}
	assert.Equal(t, want, adj.Data)

	v, err := adj.At("3", "5")
	require.NoError(t, err)
	assert.Equal(t, float64(1), v)

	_, err = adj.At("3", "9")
	assert.ErrorIs(t, err, matrix.ErrVertexNotFound)
}

func TestNewIncidence_Demo(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "5"}, {"1", "3"}, {"3", "5"},
	} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	inc, err := matrix.NewIncidence(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, inc.Vertices)
	assert.Equal(t, []string{"e1", "e2", "e3", "e4", "e5", "e6"}, inc.EdgeIDs)

	// columns follow edge insertion order
	want := [][]int{
		{1, 0, 0, 0, 1, 0},
		{1, 1, 0, 0, 0, 0},
		{0, 1, 1, 0, 1, 1},
		{0, 0, 1, 1, 0, 0},
		{0, 0, 0, 1, 0, 1},
	}
	assert.Equal(t, want, inc.Data)
}

func TestNewIncidence_DirectedAndLoop(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "B", 0)
	require.NoError(t, err)

	inc, err := matrix.NewIncidence(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{-1, 0}, {1, 2}}, inc.Data)
}

func TestFloydWarshall_Hops(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("Z"))

	d, err := matrix.FloydWarshall(g)
	require.NoError(t, err)

	ac, err := d.At("A", "C")
	require.NoError(t, err)
	assert.Equal(t, float64(2), ac)

	az, err := d.At("A", "Z")
	require.NoError(t, err)
	assert.True(t, math.IsInf(az, 1))

	aa, err := d.At("A", "A")
	require.NoError(t, err)
	assert.Zero(t, aa)
}

// TestFloydWarshall_MatchesBFSHops cross-checks BFS depth labels against
// the all-pairs hop counts on the unweighted demonstration graph.
func TestFloydWarshall_MatchesBFSHops(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"0", "1"}, {"0", "2"}, {"1", "3"}, {"1", "4"},
		{"2", "5"}, {"3", "6"}, {"4", "6"},
	} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	d, err := matrix.FloydWarshall(g)
	require.NoError(t, err)

	res, err := bfs.BFS(g, "0")
	require.NoError(t, err)
	for v, depth := range res.Depth {
		got, err := d.At("0", v)
		require.NoError(t, err)
		assert.Equal(t, float64(depth), got, "hops 0→%s", v)
	}
}

// TestFloydWarshall_MatchesDijkstra cross-checks the single-source kernel
// against the all-pairs ground truth on the weighted demonstration graph.
func TestFloydWarshall_MatchesDijkstra(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		from, to string
		w        int64
	}{
		{"0", "1", 4}, {"0", "2", 2}, {"1", "3", 5}, {"1", "4", 3},
		{"2", "5", 6}, {"3", "6", 4}, {"4", "6", 2},
	} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	d, err := matrix.FloydWarshall(g)
	require.NoError(t, err)

	for _, src := range g.Vertices() {
		res, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		require.NoError(t, err)
		for _, dst := range g.Vertices() {
			got, err := d.At(src, dst)
			require.NoError(t, err)
			assert.Equal(t, float64(res.Dist[dst]), got, "dist %s→%s", src, dst)
		}
	}
}
