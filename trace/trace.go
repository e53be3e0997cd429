package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// Kind names one category of algorithm event.
type Kind string

// Event kinds emitted by the kernels.
const (
	// KindVisit marks a vertex visited, exactly once per vertex.
	KindVisit Kind = "visit"

	// KindDistance reports a tentative distance that was set or improved.
	KindDistance Kind = "distance-update"

	// KindPush reports a vertex entering the frontier (queue, stack, or heap).
	KindPush Kind = "frontier-push"

	// KindPop reports a vertex leaving the frontier.
	KindPop Kind = "frontier-pop"

	// KindRelax reports one examined edge during Dijkstra relaxation.
	KindRelax Kind = "edge-relax"

	// KindBacktrack reports an undone choice in a backtracking search.
	KindBacktrack Kind = "backtrack"

	// KindComplete closes the stream and carries the final result.
	KindComplete Kind = "complete"
)

// Event is one immutable algorithm step. Only the fields relevant to the
// event's Kind are populated; the rest stay at their zero values and are
// omitted from the JSON encoding.
type Event struct {
	// Seq is the strictly increasing chronological index, assigned by the
	// Recorder starting at 0.
	Seq int `json:"seq"`

	// Kind categorizes the event.
	Kind Kind `json:"kind"`

	// Vertex is the subject of visit/distance/push/pop/backtrack events.
	Vertex string `json:"vertex,omitempty"`

	// Parent is the vertex this one was discovered from; empty for roots.
	Parent string `json:"parent,omitempty"`

	// From, To, Weight describe the examined edge of a KindRelax event.
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
	Weight int64  `json:"weight,omitempty"`

	// Distance is the new tentative distance of a KindDistance event.
	// Zero values are omitted from JSON: a distance-update line without a
	// distance field means distance 0 (the source vertex).
	Distance int64 `json:"distance,omitempty"`

	// Accepted reports whether a KindRelax improved the best-known distance.
	Accepted bool `json:"accepted,omitempty"`

	// Result carries the algorithm's final artifact on KindComplete:
	// a visit order, distance map, parent map, trail, or cycle.
	Result any `json:"result,omitempty"`
}

// Sink consumes algorithm events in emission order.
// Implementations must not block indefinitely; a kernel treats Emit as a
// completed frame boundary and proceeds immediately after it returns.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) { f(e) }

// Recorder is the standard Sink: it stamps each event with the next Seq and
// retains the whole stream for later inspection or serialization.
// Safe for use from a single kernel run; the mutex only guards against a
// reader (e.g. a progress display) walking the events mid-run.
type Recorder struct {
	mu     sync.Mutex
	runID  string
	events []Event
}

// NewRecorder returns an empty Recorder with a fresh random run ID.
func NewRecorder() *Recorder {
	return &Recorder{runID: uuid.NewString()}
}

// RunID returns the UUID assigned to this recording.
func (r *Recorder) RunID() string { return r.runID }

// Emit appends e to the stream, overwriting e.Seq with the next index.
func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.Seq = len(r.events)
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded stream in chronological order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.events)
}

// header is the first JSON line of a serialized recording.
type header struct {
	RunID  string `json:"run_id"`
	Events int    `json:"events"`
}

// WriteJSONLines serializes the recording as JSON lines: one header line
// with the run ID, then one line per event in order. This is the wire format
// the animation player consumes.
func (r *Recorder) WriteJSONLines(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	enc := json.NewEncoder(w)
	if err := enc.Encode(header{RunID: r.runID, Events: len(r.events)}); err != nil {
		return fmt.Errorf("trace: encode header: %w", err)
	}
	for i := range r.events {
		if err := enc.Encode(&r.events[i]); err != nil {
			return fmt.Errorf("trace: encode event %d: %w", i, err)
		}
	}

	return nil
}
