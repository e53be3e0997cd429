// Package hamilton: sentinel errors, functional options, and the Result type.
package hamilton

import (
	"context"
	"errors"
	"fmt"

	"github.com/vizwalk/vizwalk/trace"
)

// DefaultMaxVertices is the size guard applied when WithMaxVertices is not
// given. Backtracking beyond this is rarely a good idea.
const DefaultMaxVertices = 16

// Sentinel errors returned by the hamilton package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("hamilton: graph is nil")

	// ErrVertexNotFound indicates that the start vertex does not exist.
	ErrVertexNotFound = errors.New("hamilton: start vertex not found in graph")

	// ErrTooLarge indicates that the graph exceeds the MaxVertices guard.
	ErrTooLarge = errors.New("hamilton: graph exceeds the vertex-count guard")

	// ErrNoCycle indicates that no Hamiltonian cycle exists from the start.
	ErrNoCycle = errors.New("hamilton: no Hamiltonian cycle found")

	// ErrNoPath indicates that no Hamiltonian path exists from the start.
	ErrNoPath = errors.New("hamilton: no Hamiltonian path found")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("hamilton: option violation")
)

// Options configures one backtracking search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxVertices rejects graphs with more vertices than this before the
	// exponential search starts.
	MaxVertices int

	// Sink receives trace events; nil means no emission.
	Sink trace.Sink

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for Cycle and Path.
type Option func(*Options)

// DefaultOptions returns Options with background context, the default size
// guard, and no sink.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxVertices: DefaultMaxVertices,
	}
}

// WithMaxVertices overrides the vertex-count guard. Non-positive values
// are rejected with ErrOptionViolation when the search runs.
func WithMaxVertices(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxVertices must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxVertices = n
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

// WithSink emits the search's trace events into s.
func WithSink(s trace.Sink) Option {
	return func(o *Options) {
		o.Sink = s
	}
}

// Result holds a found Hamiltonian path or cycle.
type Result struct {
	// Start echoes the start vertex.
	Start string `json:"start"`

	// Path lists every vertex exactly once, beginning at Start.
	Path []string `json:"path"`

	// Closed reports whether the closing edge from the last vertex back to
	// Start is part of the answer (always true for Cycle results).
	Closed bool `json:"closed"`

	// Backtracks counts how many extensions the search had to undo.
	Backtracks int `json:"backtracks"`
}
