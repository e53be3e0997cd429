package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizwalk/vizwalk/core"
	"github.com/vizwalk/vizwalk/dfs"
	"github.com/vizwalk/vizwalk/trace"
)

// sevenVertexGraph builds the traversal demonstration graph:
// 0-1, 0-2, 1-3, 1-4, 2-5, 3-6, 4-6.
func sevenVertexGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"0", "1"}, {"0", "2"}, {"1", "3"}, {"1", "4"}, {"2", "5"}, {"3", "6"}, {"4", "6"},
	} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return g
}

func TestDFS_Errors(t *testing.T) {
	if _, err := dfs.DFS(nil, "A"); !errors.Is(err, dfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := dfs.DFS(g, "missing"); !errors.Is(err, dfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := dfs.DFSIterative(nil, "A"); !errors.Is(err, dfs.ErrGraphNil) {
		t.Errorf("iterative nil graph: want ErrGraphNil, got %v", err)
	}
}

func TestDFS_DefaultOrder(t *testing.T) {
	g := sevenVertexGraph(t)
	res, err := dfs.DFS(g, "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "3", "6", "4", "2", "5"}, res.Order)
	// deepest-first discovery makes 4 a child of 6
	assert.Equal(t, "6", res.Parent["4"])
	assert.Equal(t, 3, res.Depth["6"])
}

// TestDFS_NeighborOrderTieBreak reproduces the demonstration spanning tree:
// visiting 4 before 3 at vertex 1 turns the tree edge (6,4) into (1,4).
func TestDFS_NeighborOrderTieBreak(t *testing.T) {
	g := sevenVertexGraph(t)
	res, err := dfs.DFS(g, "0", dfs.WithNeighborOrder(func(curr string, nbrs []string) []string {
		if curr != "1" {
			return nbrs
		}
		out := []string{"4", "3"}
		for _, n := range nbrs {
			if n != "3" && n != "4" {
				out = append(out, n)
			}
		}
		return out
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "4", "6", "3", "2", "5"}, res.Order)
	assert.Equal(t, "1", res.Parent["4"])
	assert.Equal(t, "4", res.Parent["6"])
}

func TestDFSIterative_MatchesRecursive(t *testing.T) {
	g := sevenVertexGraph(t)
	rec, err := dfs.DFS(g, "0")
	require.NoError(t, err)
	it, err := dfs.DFSIterative(g, "0")
	require.NoError(t, err)

	assert.Equal(t, rec.Order, it.Order)
	assert.Equal(t, rec.Depth, it.Depth)
	assert.Equal(t, rec.Parent, it.Parent)
}

// TestDFSIterative_DuplicatePushResolvedAtPop drives the case where a vertex
// sits on the stack twice: in the demonstration graph, 4 is pushed by 1 and
// later by 6, and only the pop through 6 visits it.
func TestDFSIterative_DuplicatePushResolvedAtPop(t *testing.T) {
	g := sevenVertexGraph(t)
	recd := trace.NewRecorder()
	res, err := dfs.DFSIterative(g, "0", dfs.WithSink(recd))
	require.NoError(t, err)

	pushes4, visits4 := 0, 0
	for _, ev := range recd.Events() {
		if ev.Vertex != "4" {
			continue
		}
		switch ev.Kind {
		case trace.KindPush:
			pushes4++
		case trace.KindVisit:
			visits4++
		}
	}
	assert.Equal(t, 2, pushes4, "4 must be pushed by both 1 and 6")
	assert.Equal(t, 1, visits4, "duplicate resolved at pop time")
	assert.Equal(t, "6", res.Parent["4"])
}

func TestDFS_EveryReachableVertexOnce(t *testing.T) {
	g := sevenVertexGraph(t)
	for name, run := range map[string]func() (*dfs.Result, error){
		"recursive": func() (*dfs.Result, error) { return dfs.DFS(g, "0") },
		"iterative": func() (*dfs.Result, error) { return dfs.DFSIterative(g, "0") },
	} {
		res, err := run()
		require.NoError(t, err, name)
		seen := map[string]int{}
		for _, v := range res.Order {
			seen[v]++
		}
		assert.Len(t, seen, 7, name)
		for v, n := range seen {
			assert.Equalf(t, 1, n, "%s: vertex %s visited %d times", name, v, n)
		}
	}
}

func TestDFS_FullTraversalForest(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("X", "Y", 0)
	require.NoError(t, err)

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "X", "Y"}, res.Order)
	// two roots, two tree edges
	assert.Len(t, res.TreeEdges(), 2)
	assert.Equal(t, 0, res.Depth["X"])
}

func TestDFS_MaxDepth(t *testing.T) {
	g := sevenVertexGraph(t)
	res, err := dfs.DFS(g, "0", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, res.Order)

	it, err := dfs.DFSIterative(g, "0", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, res.Order, it.Order)
}

func TestDFS_HooksAndAbort(t *testing.T) {
	g := sevenVertexGraph(t)

	var exits []string
	res, err := dfs.DFS(g, "0", dfs.WithOnExit(func(id string) error {
		exits = append(exits, id)
		return nil
	}))
	require.NoError(t, err)
	// post-order: the root finishes last
	assert.Equal(t, "0", exits[len(exits)-1])
	assert.Len(t, exits, len(res.Order))

	boom := errors.New("boom")
	_, err = dfs.DFS(g, "0", dfs.WithOnVisit(func(id string) error {
		if id == "6" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_Cancellation(t *testing.T) {
	g := sevenVertexGraph(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(g, "0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = dfs.DFSIterative(g, "0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_CompleteEventLast(t *testing.T) {
	g := sevenVertexGraph(t)
	rec := trace.NewRecorder()
	res, err := dfs.DFS(g, "0", dfs.WithSink(rec))
	require.NoError(t, err)
	evs := rec.Events()
	require.NotEmpty(t, evs)
	assert.Equal(t, trace.KindComplete, evs[len(evs)-1].Kind)
	assert.Same(t, res, evs[len(evs)-1].Result)
}
