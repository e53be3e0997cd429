// Package dijkstra: sentinel errors, functional options, and the Result type.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/vizwalk/vizwalk/trace"
)

// Unreachable is the distance reported for vertices the source cannot reach.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source vertex ID was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted;
	// Dijkstra needs weights to be meaningful.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of one Dijkstra run.
type Options struct {
	// Source is the ID of the start vertex; must be non-empty and present.
	Source string

	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDistance caps exploration: vertices whose shortest distance exceeds
	// it are never finalized. Default math.MaxInt64 (no cap).
	MaxDistance int64

	// Sink receives trace events; nil means no emission.
	Sink trace.Sink

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with background context, no distance cap,
// and no sink.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.MaxInt64,
	}
}

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
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

// WithMaxDistance caps the exploration radius.
// Negative values are rejected with ErrBadMaxDistance when Dijkstra runs.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithSink emits the run's trace events into s.
func WithSink(s trace.Sink) Option {
	return func(o *Options) {
		o.Sink = s
	}
}

// Result holds the outcome of one Dijkstra run.
type Result struct {
	// Source echoes the start vertex.
	Source string `json:"source"`

	// Dist maps every vertex to its shortest distance from Source;
	// Unreachable for vertices no path reaches.
	Dist map[string]int64 `json:"dist"`

	// Parent maps each reached vertex (except Source) to its predecessor on
	// a shortest path.
	Parent map[string]string `json:"parent,omitempty"`
}

// PathTo reconstructs a shortest path from the source to dest.
// Returns an error if dest was never reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Dist[dest]
	if !ok || d == Unreachable {
		return nil, fmt.Errorf("dijkstra: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
		cur = r.Parent[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
