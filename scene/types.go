// Package scene: sentinel errors, the Scene schema, and the run Summary.
package scene

import (
	"errors"
	"fmt"

	"github.com/vizwalk/vizwalk/core"
)

// Sentinel errors returned by the scene package.
var (
	// ErrUnknownScene indicates that no built-in scene has the given name.
	ErrUnknownScene = errors.New("scene: unknown scene")

	// ErrUnknownAlgorithm indicates an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("scene: unknown algorithm")

	// ErrBadScene indicates a structurally unusable scene definition.
	ErrBadScene = errors.New("scene: bad scene definition")
)

// Algorithm names the kernel a scene runs.
type Algorithm string

// The supported algorithms.
const (
	AlgoBFS           Algorithm = "bfs"
	AlgoDFS           Algorithm = "dfs"
	AlgoDFSIterative  Algorithm = "dfs-iterative"
	AlgoDijkstra      Algorithm = "dijkstra"
	AlgoEulerTrail    Algorithm = "euler-trail"
	AlgoEulerCircuit  Algorithm = "euler-circuit"
	AlgoHamiltonCycle Algorithm = "hamilton-cycle"
	AlgoHamiltonPath  Algorithm = "hamilton-path"
)

// needsSource lists which algorithms require a source vertex. The Eulerian
// ones pick their own start when none is given.
func (a Algorithm) needsSource() bool {
	switch a {
	case AlgoEulerTrail, AlgoEulerCircuit:
		return false
	default:
		return true
	}
}

// known reports whether a names a supported kernel.
func (a Algorithm) known() bool {
	switch a {
	case AlgoBFS, AlgoDFS, AlgoDFSIterative, AlgoDijkstra,
		AlgoEulerTrail, AlgoEulerCircuit, AlgoHamiltonCycle, AlgoHamiltonPath:
		return true
	default:
		return false
	}
}

// EdgeSpec is one edge of a scene graph.
type EdgeSpec struct {
	From   string `toml:"from" json:"from"`
	To     string `toml:"to" json:"to"`
	Weight int64  `toml:"weight" json:"weight,omitempty"`
}

// GraphSpec describes the scene's graph.
type GraphSpec struct {
	Directed bool       `toml:"directed" json:"directed,omitempty"`
	Weighted bool       `toml:"weighted" json:"weighted,omitempty"`
	Vertices []string   `toml:"vertices" json:"vertices,omitempty"`
	Edges    []EdgeSpec `toml:"edges" json:"edges"`
}

// RunSpec describes what to run over the graph.
type RunSpec struct {
	Algorithm Algorithm `toml:"algorithm" json:"algorithm"`

	// Source is the start vertex. Optional for the Eulerian algorithms.
	Source string `toml:"source" json:"source,omitempty"`

	// Target, when set, asks the summary for a reconstructed path to it
	// (bfs and dijkstra only).
	Target string `toml:"target" json:"target,omitempty"`

	// Priority overrides the ascending neighbor order of the dfs kernels
	// for the listed vertices.
	Priority map[string][]string `toml:"priority" json:"priority,omitempty"`
}

// Scene is one runnable demonstration scenario.
type Scene struct {
	Name        string    `toml:"-" json:"name"`
	Description string    `toml:"description" json:"description,omitempty"`
	Graph       GraphSpec `toml:"graph" json:"graph"`
	Run         RunSpec   `toml:"run" json:"run"`
}

// Validate checks the scene for structural problems.
func (s *Scene) Validate() error {
	if len(s.Graph.Vertices) == 0 && len(s.Graph.Edges) == 0 {
		return fmt.Errorf("%w: graph has no vertices and no edges", ErrBadScene)
	}
	if !s.Run.Algorithm.known() {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s.Run.Algorithm)
	}
	if s.Run.Source == "" && s.Run.Algorithm.needsSource() {
		return fmt.Errorf("%w: algorithm %q needs run.source", ErrBadScene, s.Run.Algorithm)
	}

	return nil
}

// Build materializes the scene's graph.
func (s *Scene) Build() (*core.Graph, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var opts []core.GraphOption
	if s.Graph.Directed {
		opts = append(opts, core.WithDirected(true))
	}
	if s.Graph.Weighted {
		opts = append(opts, core.WithWeighted())
	}

	g := core.NewGraph(opts...)
	if err := g.AddVertices(s.Graph.Vertices...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScene, err)
	}
	for _, e := range s.Graph.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge %s-%s: %v", ErrBadScene, e.From, e.To, err)
		}
	}

	return g, nil
}

// Summary is what running a scene reports back.
type Summary struct {
	Scene     string    `json:"scene"`
	Algorithm Algorithm `json:"algorithm"`

	// Events counts the trace events the run emitted.
	Events int `json:"events"`

	// Result is the kernel's own result struct.
	Result any `json:"result"`

	// Path is the reconstructed route to run.target, when one was asked for.
	Path []string `json:"path,omitempty"`
}
