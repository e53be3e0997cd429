package scene

import (
	"fmt"
	"sort"
)

// sevenVertexEdges is the unweighted traversal demo graph shared by the
// bfs and dfs scenes.
func sevenVertexEdges() []EdgeSpec {
	return []EdgeSpec{
		{From: "0", To: "1"}, {From: "0", To: "2"},
		{From: "1", To: "3"}, {From: "1", To: "4"},
		{From: "2", To: "5"},
		{From: "3", To: "6"}, {From: "4", To: "6"},
	}
}

// presets holds the built-in demonstration scenes, one per original
// animation scenario.
func presets() map[string]Scene {
	return map[string]Scene{
		"bfs-basic": {
			Description: "breadth-first layers of the 7-vertex demo graph",
			Graph:       GraphSpec{Edges: sevenVertexEdges()},
			Run:         RunSpec{Algorithm: AlgoBFS, Source: "0", Target: "6"},
		},
		"dfs-recursive": {
			Description: "recursive depth-first walk, vertex 4 explored before 3",
			Graph:       GraphSpec{Edges: sevenVertexEdges()},
			Run: RunSpec{
				Algorithm: AlgoDFS,
				Source:    "0",
				Priority:  map[string][]string{"1": {"4", "3"}},
			},
		},
		"dfs-iterative": {
			Description: "explicit-stack depth-first walk of the same graph",
			Graph:       GraphSpec{Edges: sevenVertexEdges()},
			Run:         RunSpec{Algorithm: AlgoDFSIterative, Source: "0"},
		},
		"dijkstra-square": {
			Description: "two competing routes across a weighted square",
			Graph: GraphSpec{
				Weighted: true,
				Edges: []EdgeSpec{
					{From: "0", To: "1", Weight: 6}, {From: "0", To: "2", Weight: 5},
					{From: "1", To: "3", Weight: 5}, {From: "2", To: "3", Weight: 5},
				},
			},
			Run: RunSpec{Algorithm: AlgoDijkstra, Source: "0", Target: "3"},
		},
		"dijkstra-basic": {
			Description: "shortest paths over the weighted 7-vertex demo graph",
			Graph: GraphSpec{
				Weighted: true,
				Edges: []EdgeSpec{
					{From: "0", To: "1", Weight: 4}, {From: "0", To: "2", Weight: 2},
					{From: "1", To: "3", Weight: 5}, {From: "1", To: "4", Weight: 3},
					{From: "2", To: "5", Weight: 6},
					{From: "3", To: "6", Weight: 4}, {From: "4", To: "6", Weight: 2},
				},
			},
			Run: RunSpec{Algorithm: AlgoDijkstra, Source: "0", Target: "6"},
		},
		"euler-path": {
			Description: "open Eulerian trail from 5 to 7 on the 9-vertex example",
			Graph: GraphSpec{
				Edges: []EdgeSpec{
					{From: "1", To: "2"}, {From: "1", To: "6"}, {From: "1", To: "8"}, {From: "1", To: "9"},
					{From: "2", To: "3"}, {From: "2", To: "4"}, {From: "2", To: "8"},
					{From: "3", To: "4"},
					{From: "5", To: "8"},
					{From: "6", To: "9"},
					{From: "7", To: "8"},
				},
			},
			Run: RunSpec{Algorithm: AlgoEulerTrail, Source: "5"},
		},
		"euler-circuit": {
			Description: "Eulerian circuit around a square, all degrees even",
			Graph: GraphSpec{
				Edges: []EdgeSpec{
					{From: "1", To: "2"}, {From: "2", To: "3"},
					{From: "3", To: "4"}, {From: "4", To: "1"},
				},
			},
			Run: RunSpec{Algorithm: AlgoEulerCircuit},
		},
		"hamilton-cycle": {
			Description: "backtracking search that dead-ends at 5 before closing 1→2→3→5→4→1",
			Graph: GraphSpec{
				Edges: []EdgeSpec{
					{From: "1", To: "2"}, {From: "2", To: "3"}, {From: "3", To: "4"},
					{From: "4", To: "5"}, {From: "3", To: "5"}, {From: "4", To: "1"},
				},
			},
			Run: RunSpec{Algorithm: AlgoHamiltonCycle, Source: "1"},
		},
		"hamilton-none": {
			Description: "the claw K_{1,3}, provably without a Hamiltonian cycle",
			Graph: GraphSpec{
				Edges: []EdgeSpec{
					{From: "c", To: "a"}, {From: "c", To: "b"}, {From: "c", To: "d"},
				},
			},
			Run: RunSpec{Algorithm: AlgoHamiltonCycle, Source: "c"},
		},
	}
}

// Names returns the built-in scene names in ascending order.
func Names() []string {
	p := presets()
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Preset returns the built-in scene with the given name.
func Preset(name string) (Scene, error) {
	s, ok := presets()[name]
	if !ok {
		return Scene{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s.Name = name

	return s, nil
}
