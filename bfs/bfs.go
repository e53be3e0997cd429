package bfs

import (
	"fmt"

	"github.com/vizwalk/vizwalk/core"
	"github.com/vizwalk/vizwalk/trace"
)

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state for one run.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrWeightedGraph for weighted graphs, ErrOptionViolation for bad options,
// or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	// BFS depths are edge counts; weights would silently lie
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// seed the frontier with the start vertex (no parent)
	w.enqueue(startID, 0, "")
	if err := w.loop(); err != nil {
		return w.res, err
	}
	w.emit(trace.Event{Kind: trace.KindComplete, Result: w.res})

	return w.res, nil
}

// emit forwards an event to the sink, if any.
func (w *walker) emit(e trace.Event) {
	if w.opts.Sink != nil {
		w.opts.Sink.Emit(e)
	}
}

// enqueue marks id visited at depth d, records its parent and distance,
// and appends it to the frontier. The visited mark here is the
// enqueued-at-most-once guard.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.emit(trace.Event{Kind: trace.KindPush, Vertex: id, Parent: parent})
	w.emit(trace.Event{Kind: trace.KindDistance, Vertex: id, Distance: int64(d)})
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first frontier item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.emit(trace.Event{Kind: trace.KindPop, Vertex: item.id})

	return item
}

// visit records the vertex in Order and calls the OnVisit hook.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	w.emit(trace.Event{Kind: trace.KindVisit, Vertex: item.id, Parent: item.parent})
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors in ascending order, applies filtering
// and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
