// Package euler: sentinel errors, functional options, and the Result type.
package euler

import (
	"context"
	"errors"

	"github.com/vizwalk/vizwalk/trace"
)

// Sentinel errors returned by the euler package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("euler: graph is nil")

	// ErrDirectedGraph indicates that the graph is directed; only
	// undirected graphs are supported.
	ErrDirectedGraph = errors.New("euler: directed graphs are not supported")

	// ErrNoEdges indicates that the graph has no edges to traverse.
	ErrNoEdges = errors.New("euler: graph has no edges")

	// ErrNotEulerian indicates that the graph violates the Eulerian degree
	// condition or is disconnected over its non-isolated vertices.
	ErrNotEulerian = errors.New("euler: graph is not Eulerian")

	// ErrBadStart indicates an unusable start vertex: missing, isolated, or
	// even-degree while odd-degree vertices exist.
	ErrBadStart = errors.New("euler: unusable start vertex")
)

// Options configures one trail construction.
type Options struct {
	// Start overrides the default start vertex.
	Start string

	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Sink receives trace events; nil means no emission.
	Sink trace.Sink
}

// Option is a functional option for Trail and Circuit.
type Option func(*Options)

// DefaultOptions returns Options with background context, automatic start
// selection, and no sink.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithStart sets the start vertex. When the graph has odd-degree vertices
// the start must be one of them, otherwise any non-isolated vertex works.
func WithStart(id string) Option {
	return func(o *Options) {
		o.Start = id
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSink emits the walk's trace events into s.
func WithSink(s trace.Sink) Option {
	return func(o *Options) {
		o.Sink = s
	}
}

// Result holds a constructed Eulerian trail.
type Result struct {
	// Start echoes the vertex the trail begins at.
	Start string `json:"start"`

	// Trail lists the vertices in traversal order; every graph edge appears
	// between exactly one consecutive pair.
	Trail []string `json:"trail"`

	// Closed reports whether the trail returns to Start (a circuit).
	Closed bool `json:"closed"`
}
