package dfs

import (
	"fmt"

	"github.com/vizwalk/vizwalk/core"
	"github.com/vizwalk/vizwalk/trace"
)

// walker encapsulates state shared by both traversal variants.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs recursive depth-first search on graph g. With
// WithFullTraversal it covers all disconnected components; otherwise it
// starts only from startID.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, startID, opts)
	if err != nil {
		return nil, err
	}

	if w.opts.FullTraversal {
		for _, v := range g.Vertices() {
			if !w.res.Visited[v] {
				if err = w.traverse(v, "", 0); err != nil {
					return w.res, err
				}
			}
		}
	} else {
		if err = w.traverse(startID, "", 0); err != nil {
			return w.res, err
		}
	}
	w.emit(trace.Event{Kind: trace.KindComplete, Result: w.res})

	return w.res, nil
}

// newWalker validates inputs, applies options, and allocates the result.
func newWalker(g *core.Graph, startID string, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	return &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}, nil
}

// wrapHookErr annotates a hook failure with the hook name and vertex.
func wrapHookErr(hook, id string, err error) error {
	return fmt.Errorf("dfs: %s hook for %q: %w", hook, id, err)
}

func (w *walker) emit(e trace.Event) {
	if w.opts.Sink != nil {
		w.opts.Sink.Emit(e)
	}
}

// neighborsOf returns the expansion order for id: ascending by default,
// reordered by the NeighborOrder tie-break when installed.
func (w *walker) neighborsOf(id string) ([]string, error) {
	nbrs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	if w.opts.NeighborOrder != nil {
		nbrs = w.opts.NeighborOrder(id, nbrs)
	}

	return nbrs, nil
}

// traverse visits vertex id at the given depth, recursing into unvisited
// neighbors. The conceptual stack frame is the call frame, so a push event
// is emitted on entry and a pop event after the subtree is explored.
func (w *walker) traverse(id, parent string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.emit(trace.Event{Kind: trace.KindPush, Vertex: id})
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.res.Order = append(w.res.Order, id)
	w.emit(trace.Event{Kind: trace.KindVisit, Vertex: id, Parent: parent})

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return wrapHookErr("OnVisit", id, err)
		}
	}

	nbrs, err := w.neighborsOf(id)
	if err != nil {
		return err
	}
	for _, nid := range nbrs {
		if nid == id {
			continue // self-loop never deepens the tree
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			continue
		}
		if !w.res.Visited[nid] {
			if err = w.traverse(nid, id, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return wrapHookErr("OnExit", id, err)
		}
	}
	w.emit(trace.Event{Kind: trace.KindPop, Vertex: id})

	return nil
}
