// Package core: type declarations, sentinel errors, and the Graph constructor.
package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a connection between two vertices.
//
// ID is unique within the owning Graph and reflects insertion order
// ("e1", "e2", ...). For undirected graphs the edge is stored once with
// From/To as given but is traversable both ways.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge; always 0 on unweighted graphs.
	Weight int64

	// Directed mirrors the owning Graph's directedness flag.
	Directed bool
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the in-memory graph shared by all kernels.
//
// Storage: a vertex set, an edge catalog in insertion order, and a nested
// adjacency index adj[from][to] = edge IDs. Undirected edges are mirrored in
// the index so neighbor lookups are symmetric.
type Graph struct {
	mu sync.RWMutex

	// configuration flags, immutable after construction
	directed   bool
	weighted   bool
	allowLoops bool
	allowMulti bool

	nextEdge uint64
	vertices map[string]struct{}
	edges    map[string]*Edge
	edgeIDs  []string // insertion order, drives Edges() and incidence columns

	adj map[string]map[string][]string
}

// NewGraph creates an empty Graph.
// Defaults: undirected, unweighted, no loops, no multi-edges.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		edges:    make(map[string]*Edge),
		adj:      make(map[string]map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero edge weights are permitted.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// nextEdgeID generates the next unique edge ID. Caller must hold g.mu.
func (g *Graph) nextEdgeID() string {
	g.nextEdge++

	return "e" + strconv.FormatUint(g.nextEdge, 10)
}
