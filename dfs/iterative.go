package dfs

import (
	"github.com/vizwalk/vizwalk/core"
	"github.com/vizwalk/vizwalk/trace"
)

// frame is one explicit stack entry: the vertex to expand, the vertex it
// was reached from, and its tree depth.
type frame struct {
	id     string
	parent string
	depth  int
}

// DFSIterative performs depth-first search with an explicit LIFO stack
// instead of the call stack, so arbitrarily deep graphs cannot exhaust
// recursion limits.
//
// A vertex may be pushed more than once before it is popped (each discovery
// path pushes its own frame); duplicates are resolved at pop time by the
// already-visited check, and only the first pop establishes the parent
// link. Neighbors are pushed in reverse expansion order so the smallest
// neighbor is popped, and therefore visited, first — the visit sequence
// matches the recursive variant.
func DFSIterative(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, startID, opts)
	if err != nil {
		return nil, err
	}

	if w.opts.FullTraversal {
		for _, v := range g.Vertices() {
			if !w.res.Visited[v] {
				if err = w.iterate(v); err != nil {
					return w.res, err
				}
			}
		}
	} else {
		if err = w.iterate(startID); err != nil {
			return w.res, err
		}
	}
	w.emit(trace.Event{Kind: trace.KindComplete, Result: w.res})

	return w.res, nil
}

// iterate drains one explicit-stack traversal rooted at rootID.
func (w *walker) iterate(rootID string) error {
	stack := []frame{{id: rootID}}
	w.emit(trace.Event{Kind: trace.KindPush, Vertex: rootID})

	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		w.emit(trace.Event{Kind: trace.KindPop, Vertex: f.id})

		// stale frame: the vertex was reached first through another path
		if w.res.Visited[f.id] {
			continue
		}

		w.res.Visited[f.id] = true
		w.res.Depth[f.id] = f.depth
		if f.parent != "" {
			w.res.Parent[f.id] = f.parent
		}
		w.res.Order = append(w.res.Order, f.id)
		w.emit(trace.Event{Kind: trace.KindVisit, Vertex: f.id, Parent: f.parent})

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(f.id); err != nil {
				return wrapHookErr("OnVisit", f.id, err)
			}
		}

		if w.opts.MaxDepth >= 0 && f.depth >= w.opts.MaxDepth {
			continue
		}

		nbrs, err := w.neighborsOf(f.id)
		if err != nil {
			return err
		}
		// reverse push: last pushed is expanded first
		for i := len(nbrs) - 1; i >= 0; i-- {
			nid := nbrs[i]
			if nid == f.id {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				continue
			}
			if !w.res.Visited[nid] {
				stack = append(stack, frame{id: nid, parent: f.id, depth: f.depth + 1})
				w.emit(trace.Event{Kind: trace.KindPush, Vertex: nid, Parent: f.id})
			}
		}
	}

	return nil
}
