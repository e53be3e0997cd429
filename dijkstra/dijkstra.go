package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/vizwalk/vizwalk/core"
	"github.com/vizwalk/vizwalk/trace"
)

// Dijkstra computes shortest distances from the source vertex (Source
// option) to all other vertices in the weighted graph g.
//
// Validation order: options, source non-empty, graph non-nil, graph
// weighted, source present, no negative edge weight. The negative-weight
// scan is O(E) and runs before any relaxation so a bad input never produces
// a partially wrong result.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.VertexCount()
	r := &runner{
		g:    g,
		opts: cfg,
		res: &Result{
			Source: cfg.Source,
			Dist:   make(map[string]int64, n),
			Parent: make(map[string]string, n),
		},
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	r.emit(trace.Event{Kind: trace.KindComplete, Result: r.res})

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	opts    Options
	res     *Result
	visited map[string]bool // distance finalized
	pq      nodePQ
}

func (r *runner) emit(e trace.Event) {
	if r.opts.Sink != nil {
		r.opts.Sink.Emit(e)
	}
}

// init seeds every distance at infinity, the source at zero, and pushes the
// source onto the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.res.Dist[v] = Unreachable
	}
	r.res.Dist[r.opts.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.opts.Source, dist: 0})
	r.emit(trace.Event{Kind: trace.KindPush, Vertex: r.opts.Source})
	r.emit(trace.Event{Kind: trace.KindDistance, Vertex: r.opts.Source, Distance: 0})
}

// process extracts the minimum-distance vertex, finalizes it, and relaxes
// its outgoing edges, until the heap drains or MaxDistance is exceeded.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		r.emit(trace.Event{Kind: trace.KindPop, Vertex: item.id})

		// stale lazy-deletion entry: the vertex was finalized earlier with a
		// smaller distance
		if r.visited[item.id] {
			continue
		}
		// beyond the cap nothing closer remains in the heap, stop entirely
		if item.dist > r.opts.MaxDistance {
			break
		}

		r.visited[item.id] = true
		r.emit(trace.Event{Kind: trace.KindVisit, Vertex: item.id, Parent: r.res.Parent[item.id]})

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves neighbor distances.
// Assumes Dist[u] is final.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		// directed edges in the adjacency view always leave u; for
		// undirected ones the stored endpoints may be either way around
		v := e.To
		if v == u {
			v = e.From
		}
		if e.Directed && e.From != u {
			continue
		}

		newDist := r.res.Dist[u] + e.Weight
		accepted := newDist < r.res.Dist[v] && newDist <= r.opts.MaxDistance
		r.emit(trace.Event{
			Kind:     trace.KindRelax,
			From:     u,
			To:       v,
			Weight:   e.Weight,
			Accepted: accepted,
		})
		if !accepted {
			continue
		}

		r.res.Dist[v] = newDist
		r.res.Parent[v] = u
		r.emit(trace.Event{Kind: trace.KindDistance, Vertex: v, Distance: newDist})

		// lazy decrease-key: push a fresh entry, the stale one is skipped
		// at pop via the visited check
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
		r.emit(trace.Event{Kind: trace.KindPush, Vertex: v, Parent: u})
	}

	return nil
}

// nodeItem is one heap entry: a vertex and its tentative distance.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, ties by vertex ID
// so heap behavior is deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
