package euler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizwalk/vizwalk/core"
	"github.com/vizwalk/vizwalk/euler"
	"github.com/vizwalk/vizwalk/trace"
	"github.com/vizwalk/vizwalk/walk"
)

func buildUndirected(t *testing.T, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return g
}

// hierholzerDemo is the 9-vertex demonstration graph: odd degrees at 5 and
// 7, so an open trail from 5 to 7 exists.
func hierholzerDemo(t *testing.T) *core.Graph {
	return buildUndirected(t, [][2]string{
		{"1", "2"}, {"1", "6"}, {"1", "8"}, {"1", "9"},
		{"2", "3"}, {"2", "4"}, {"2", "8"},
		{"3", "4"},
		{"5", "8"},
		{"6", "9"},
		{"7", "8"},
	})
}

func TestTrail_Validation(t *testing.T) {
	_, err := euler.Trail(nil)
	assert.ErrorIs(t, err, euler.ErrNilGraph)

	directed := core.NewGraph(core.WithDirected(true))
	_, err = euler.Trail(directed)
	assert.ErrorIs(t, err, euler.ErrDirectedGraph)

	empty := core.NewGraph()
	require.NoError(t, empty.AddVertex("A"))
	_, err = euler.Trail(empty)
	assert.ErrorIs(t, err, euler.ErrNoEdges)
}

func TestTrail_RejectsNonEulerianDegrees(t *testing.T) {
	// K4: all four vertices have odd degree 3
	g := buildUndirected(t, [][2]string{
		{"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "1"}, {"2", "4"}, {"1", "3"},
	})
	_, err := euler.Trail(g)
	assert.ErrorIs(t, err, euler.ErrNotEulerian)
}

func TestTrail_RejectsDisconnected(t *testing.T) {
	// two disjoint triangles: all degrees even, still no single trail
	g := buildUndirected(t, [][2]string{
		{"1", "2"}, {"2", "3"}, {"3", "1"},
		{"4", "5"}, {"5", "6"}, {"6", "4"},
	})
	_, err := euler.Trail(g)
	assert.ErrorIs(t, err, euler.ErrNotEulerian)
}

// TestTrail_HierholzerDemo pins the demonstration walk: start at the
// smallest odd-degree vertex (5), smallest-neighbor-first edge choice.
func TestTrail_HierholzerDemo(t *testing.T) {
	g := hierholzerDemo(t)
	res, err := euler.Trail(g)
	require.NoError(t, err)

	assert.Equal(t, "5", res.Start)
	assert.False(t, res.Closed)
	assert.Equal(t, []string{"5", "8", "1", "6", "9", "1", "2", "3", "4", "2", "8", "7"}, res.Trail)

	// every edge exactly once and consecutive vertices always adjacent
	assert.Len(t, res.Trail, g.EdgeCount()+1)
	kind, err := walk.Classify(g, res.Trail)
	require.NoError(t, err)
	assert.Equal(t, walk.Trail, kind)
}

func TestTrail_StartOverride(t *testing.T) {
	g := hierholzerDemo(t)

	res, err := euler.Trail(g, euler.WithStart("7"))
	require.NoError(t, err)
	assert.Equal(t, "7", res.Trail[0])
	assert.Equal(t, "5", res.Trail[len(res.Trail)-1])

	_, err = euler.Trail(g, euler.WithStart("1"))
	assert.ErrorIs(t, err, euler.ErrBadStart, "even-degree start with odd vertices present")

	_, err = euler.Trail(g, euler.WithStart("nope"))
	assert.ErrorIs(t, err, euler.ErrBadStart)
}

func TestCircuit_Square(t *testing.T) {
	g := buildUndirected(t, [][2]string{
		{"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "1"},
	})
	res, err := euler.Circuit(g)
	require.NoError(t, err)

	assert.True(t, res.Closed)
	assert.Equal(t, []string{"1", "2", "3", "4", "1"}, res.Trail)
	assert.True(t, walk.IsClosed(res.Trail))
}

func TestCircuit_RejectsOpenTrailGraph(t *testing.T) {
	g := hierholzerDemo(t)
	_, err := euler.Circuit(g)
	assert.ErrorIs(t, err, euler.ErrNotEulerian)
}

func TestTrail_EventStream(t *testing.T) {
	g := buildUndirected(t, [][2]string{
		{"1", "2"}, {"2", "3"}, {"3", "1"},
	})
	rec := trace.NewRecorder()
	res, err := euler.Trail(g, euler.WithSink(rec))
	require.NoError(t, err)

	evs := rec.Events()
	require.NotEmpty(t, evs)
	assert.Equal(t, trace.KindComplete, evs[len(evs)-1].Kind)
	assert.Same(t, res, evs[len(evs)-1].Result)

	pushes, backtracks := 0, 0
	for _, ev := range evs {
		switch ev.Kind {
		case trace.KindPush:
			pushes++
		case trace.KindBacktrack:
			backtracks++
		}
	}
	assert.Equal(t, g.EdgeCount(), pushes, "one push per consumed edge")
	assert.Equal(t, len(res.Trail), backtracks, "each trail vertex is emitted once while unwinding")
}

func TestTrail_Cancellation(t *testing.T) {
	g := hierholzerDemo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := euler.Trail(g, euler.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
