package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizwalk/vizwalk/core"
)

func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	// idempotent re-add
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestVertices_SortedAscending(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertices("2", "0", "1", "10"))
	assert.Equal(t, []string{"0", "1", "10", "2"}, g.Vertices())
}

func TestAddEdge_Policies(t *testing.T) {
	// unweighted graph rejects non-zero weight
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 3)
	require.ErrorIs(t, err, core.ErrBadWeight)

	// loops disabled by default
	_, err = g.AddEdge("A", "A", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	// parallel edges disabled by default
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// undirected mirror: B→A counts as the same slot
	_, err = g.AddEdge("B", "A", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// endpoints are auto-added
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
}

func TestAddEdge_MultiAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())

	// an undirected self-loop contributes two to the degree
	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 4, deg)
}

func TestNeighbors_DeterministicOrder(t *testing.T) {
	g := core.NewGraph()
	for _, pair := range [][2]string{{"0", "2"}, {"0", "1"}, {"0", "3"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	ids, err := g.NeighborIDs("0")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids)

	edges, err := g.Neighbors("0")
	require.NoError(t, err)
	require.Len(t, edges, 3)
	// edge-ID order follows insertion
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "2", edges[0].To)

	_, err = g.NeighborIDs("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDirectedGraph_OneWayAdjacency(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	back, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Empty(t, back)
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.Zero(t, g.EdgeCount())

	require.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 7)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2)
	require.NoError(t, err)

	c := g.Clone()
	require.NoError(t, c.RemoveEdge(eid))

	// original untouched
	assert.True(t, g.HasEdge("A", "B"))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1, c.EdgeCount())
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.True(t, c.Weighted())
}

func TestEdges_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("A", "B", 2)
	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "B", edges[0].From)
	assert.Equal(t, "A", edges[1].From)
}
