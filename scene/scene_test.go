package scene_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizwalk/vizwalk/bfs"
	"github.com/vizwalk/vizwalk/dfs"
	"github.com/vizwalk/vizwalk/dijkstra"
	"github.com/vizwalk/vizwalk/euler"
	"github.com/vizwalk/vizwalk/hamilton"
	"github.com/vizwalk/vizwalk/scene"
	"github.com/vizwalk/vizwalk/trace"
)

func TestNames_CoversAllPresets(t *testing.T) {
	want := []string{
		"bfs-basic", "dfs-iterative", "dfs-recursive",
		"dijkstra-basic", "dijkstra-square",
		"euler-circuit", "euler-path",
		"hamilton-cycle", "hamilton-none",
	}
	assert.Equal(t, want, scene.Names())

	for _, name := range want {
		s, err := scene.Preset(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name)
		require.NoError(t, s.Validate(), name)
	}

	_, err := scene.Preset("no-such-scene")
	assert.ErrorIs(t, err, scene.ErrUnknownScene)
}

func TestRun_BFSBasic(t *testing.T) {
	s, err := scene.Preset("bfs-basic")
	require.NoError(t, err)

	rec := trace.NewRecorder()
	sum, err := scene.Run(context.Background(), s, rec)
	require.NoError(t, err)

	res, ok := sum.Result.(*bfs.Result)
	require.True(t, ok)
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6"}, res.Order)
	assert.Equal(t, 3, res.Depth["6"])
	assert.Equal(t, []string{"0", "1", "3", "6"}, sum.Path)
	assert.Equal(t, rec.Len(), sum.Events)
	assert.Positive(t, sum.Events)
}

// TestRun_DFSPriority checks that the recursive scene's priority table
// flips the order at vertex 1, matching the original animation.
func TestRun_DFSPriority(t *testing.T) {
	s, err := scene.Preset("dfs-recursive")
	require.NoError(t, err)

	sum, err := scene.Run(context.Background(), s, nil)
	require.NoError(t, err)

	res, ok := sum.Result.(*dfs.Result)
	require.True(t, ok)
	assert.Equal(t, []string{"0", "1", "4", "6", "3", "2", "5"}, res.Order)
	assert.Equal(t, "1", res.Parent["4"])
}

func TestRun_DFSIterativeMatchesDefault(t *testing.T) {
	s, err := scene.Preset("dfs-iterative")
	require.NoError(t, err)

	sum, err := scene.Run(context.Background(), s, nil)
	require.NoError(t, err)

	res, ok := sum.Result.(*dfs.Result)
	require.True(t, ok)
	assert.Equal(t, []string{"0", "1", "3", "6", "4", "2", "5"}, res.Order)
}

func TestRun_DijkstraBasic(t *testing.T) {
	s, err := scene.Preset("dijkstra-basic")
	require.NoError(t, err)

	sum, err := scene.Run(context.Background(), s, nil)
	require.NoError(t, err)

	res, ok := sum.Result.(*dijkstra.Result)
	require.True(t, ok)
	want := map[string]int64{"0": 0, "1": 4, "2": 2, "3": 9, "4": 7, "5": 8, "6": 9}
	assert.Equal(t, want, res.Dist)
	assert.Equal(t, []string{"0", "1", "4", "6"}, sum.Path)
}

func TestRun_EulerScenes(t *testing.T) {
	s, err := scene.Preset("euler-path")
	require.NoError(t, err)
	sum, err := scene.Run(context.Background(), s, nil)
	require.NoError(t, err)

	res, ok := sum.Result.(*euler.Result)
	require.True(t, ok)
	assert.Equal(t, "5", res.Start)
	assert.False(t, res.Closed)
	assert.Len(t, res.Trail, 12)

	s, err = scene.Preset("euler-circuit")
	require.NoError(t, err)
	sum, err = scene.Run(context.Background(), s, nil)
	require.NoError(t, err)
	res, ok = sum.Result.(*euler.Result)
	require.True(t, ok)
	assert.True(t, res.Closed)
}

func TestRun_HamiltonScenes(t *testing.T) {
	s, err := scene.Preset("hamilton-cycle")
	require.NoError(t, err)
	sum, err := scene.Run(context.Background(), s, nil)
	require.NoError(t, err)

	res, ok := sum.Result.(*hamilton.Result)
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3", "5", "4"}, res.Path)
	assert.Equal(t, 2, res.Backtracks)

	s, err = scene.Preset("hamilton-none")
	require.NoError(t, err)
	_, err = scene.Run(context.Background(), s, nil)
	assert.ErrorIs(t, err, hamilton.ErrNoCycle)
}

func TestLoadFile(t *testing.T) {
	s, err := scene.LoadFile(filepath.Join("testdata", "weighted-square.toml"))
	require.NoError(t, err)
	assert.Equal(t, "weighted-square", s.Name)
	assert.Equal(t, scene.AlgoDijkstra, s.Run.Algorithm)
	require.Len(t, s.Graph.Edges, 4)
	assert.Equal(t, int64(6), s.Graph.Edges[0].Weight)

	sum, err := scene.Run(context.Background(), s, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "2", "3"}, sum.Path)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := scene.LoadFile(filepath.Join("testdata", "bad-algorithm.toml"))
	assert.ErrorIs(t, err, scene.ErrUnknownAlgorithm)

	_, err = scene.LoadFile(filepath.Join("testdata", "does-not-exist.toml"))
	assert.ErrorIs(t, err, scene.ErrBadScene)
}

func TestValidate(t *testing.T) {
	s := scene.Scene{
		Graph: scene.GraphSpec{Vertices: []string{"a"}},
		Run:   scene.RunSpec{Algorithm: scene.AlgoBFS},
	}
	assert.ErrorIs(t, s.Validate(), scene.ErrBadScene, "bfs needs a source")

	s.Run.Source = "a"
	assert.NoError(t, s.Validate())

	s.Run.Algorithm = "nope"
	assert.ErrorIs(t, s.Validate(), scene.ErrUnknownAlgorithm)

	empty := scene.Scene{Run: scene.RunSpec{Algorithm: scene.AlgoBFS, Source: "a"}}
	assert.ErrorIs(t, empty.Validate(), scene.ErrBadScene)
}
