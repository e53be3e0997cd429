package hamilton

import (
	"fmt"

	"github.com/vizwalk/vizwalk/core"
	"github.com/vizwalk/vizwalk/trace"
)

// Cycle searches for a Hamiltonian cycle starting and ending at startID.
// The returned Result's Path holds every vertex exactly once; the closing
// edge back to startID is implied by Closed.
func Cycle(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	return search(g, startID, true, opts)
}

// Path searches for an open Hamiltonian path starting at startID.
func Path(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	return search(g, startID, false, opts)
}

func search(g *core.Graph, startID string, wantCycle bool, opts []Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, startID)
	}
	if n := g.VertexCount(); n > cfg.MaxVertices {
		return nil, fmt.Errorf("%w: %d vertices, guard is %d", ErrTooLarge, n, cfg.MaxVertices)
	}

	b := &backtracker{
		g:       g,
		opts:    cfg,
		total:   g.VertexCount(),
		visited: make(map[string]bool, g.VertexCount()),
		cycle:   wantCycle,
	}
	b.path = append(b.path, startID)
	b.visited[startID] = true
	b.emit(trace.Event{Kind: trace.KindPush, Vertex: startID})

	found, err := b.extend(startID)
	if err != nil {
		return nil, err
	}
	if !found {
		if wantCycle {
			return nil, fmt.Errorf("%w: start %q", ErrNoCycle, startID)
		}

		return nil, fmt.Errorf("%w: start %q", ErrNoPath, startID)
	}

	res := &Result{
		Start:      startID,
		Path:       append([]string(nil), b.path...),
		Closed:     wantCycle,
		Backtracks: b.backtracks,
	}
	b.emit(trace.Event{Kind: trace.KindComplete, Result: res})

	return res, nil
}

// backtracker carries the search state: the explicit path, the visited set,
// and the undo counter.
type backtracker struct {
	g          *core.Graph
	opts       Options
	total      int
	path       []string
	visited    map[string]bool
	cycle      bool
	backtracks int
}

func (b *backtracker) emit(e trace.Event) {
	if b.opts.Sink != nil {
		b.opts.Sink.Emit(e)
	}
}

// extend tries to grow the path beyond u, smallest unvisited neighbor
// first, and reports whether a complete answer was reached.
func (b *backtracker) extend(u string) (bool, error) {
	select {
	case <-b.opts.Ctx.Done():
		return false, b.opts.Ctx.Err()
	default:
	}

	if len(b.path) == b.total {
		if !b.cycle {
			return true, nil
		}

		return b.g.HasEdge(u, b.path[0]), nil
	}

	nbrs, err := b.g.NeighborIDs(u)
	if err != nil {
		return false, fmt.Errorf("hamilton: neighbors of %q: %w", u, err)
	}
	for _, v := range nbrs {
		if b.visited[v] {
			continue
		}

		b.path = append(b.path, v)
		b.visited[v] = true
		b.emit(trace.Event{Kind: trace.KindPush, Vertex: v, Parent: u})

		found, err := b.extend(v)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}

		// dead end below v: undo the extension and try the next neighbor
		b.path = b.path[:len(b.path)-1]
		delete(b.visited, v)
		b.backtracks++
		b.emit(trace.Event{Kind: trace.KindBacktrack, Vertex: v})
	}

	return false, nil
}
