// Package dfs: options, sentinel errors, and the Result type for both
// traversal variants.
package dfs

import (
	"context"
	"errors"

	"github.com/vizwalk/vizwalk/trace"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before
	// expansion. Return true to traverse into that neighbor.
	FilterNeighbor func(id string) bool

	// NeighborOrder, if non-nil, may reorder the ascending-sorted neighbor
	// list of curr before expansion. It must return a permutation of nbrs;
	// extra or unknown IDs are ignored by the walker.
	NeighborOrder func(curr string, nbrs []string) []string

	// FullTraversal, if true, restarts DFS from every unvisited vertex,
	// covering disconnected components (forest traversal).
	FullTraversal bool

	// Sink receives trace events; nil means no emission.
	Sink trace.Sink

	// OnVisit, if non-nil, is invoked on discovery (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order). Returning an error aborts traversal.
	// Only the recursive variant has a meaningful post-order.
	OnExit func(id string) error
}

// DefaultOptions returns Options with background context, no hooks, no
// depth limit, no filtering, natural neighbor order, single-source mode.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for traversal.
// Passing nil has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters neighbor IDs.
// If fn(id) == false, that neighbor is skipped.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithNeighborOrder installs a tie-break on the expansion order of a
// vertex's neighbors. The walker passes the ascending-sorted neighbor list
// and expands in the returned order. Scenes use this to reproduce a
// particular spanning tree; leave unset for plain ascending order.
func WithNeighborOrder(fn func(curr string, nbrs []string) []string) Option {
	return func(o *Options) {
		o.NeighborOrder = fn
	}
}

// WithFullTraversal enables forest traversal over disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// WithSink emits the traversal's trace events into s.
func WithSink(s trace.Sink) Option {
	return func(o *Options) {
		o.Sink = s
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in the sequence they were discovered (preorder).
	Order []string `json:"order"`

	// Depth maps each vertex ID to its distance (#edges) from its tree root.
	Depth map[string]int `json:"depth"`

	// Parent maps each vertex ID to the vertex it was first discovered from.
	// Tree roots do not appear.
	Parent map[string]string `json:"parent,omitempty"`

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool `json:"-"`
}

// TreeEdges returns the spanning-forest edges as (parent, child) pairs in
// discovery order of the child.
func (r *Result) TreeEdges() [][2]string {
	out := make([][2]string, 0, len(r.Parent))
	for _, v := range r.Order {
		if p, ok := r.Parent[v]; ok {
			out = append(out, [2]string{p, v})
		}
	}

	return out
}
