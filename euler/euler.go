package euler

import (
	"fmt"

	"github.com/vizwalk/vizwalk/core"
	"github.com/vizwalk/vizwalk/trace"
	"github.com/vizwalk/vizwalk/walk"
)

// Trail constructs an Eulerian trail of g: open when the graph has two
// odd-degree vertices, closed (a circuit) when it has none.
func Trail(g *core.Graph, opts ...Option) (*Result, error) {
	return run(g, false, opts)
}

// Circuit constructs an Eulerian circuit of g. All vertices must have even
// degree; graphs with odd-degree vertices are rejected with ErrNotEulerian
// even when an open trail exists.
func Circuit(g *core.Graph, opts ...Option) (*Result, error) {
	return run(g, true, opts)
}

func run(g *core.Graph, wantCircuit bool, opts []Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	if g.EdgeCount() == 0 {
		return nil, ErrNoEdges
	}

	odd, err := walk.OddVertices(g)
	if err != nil {
		return nil, err
	}
	switch {
	case wantCircuit && len(odd) != 0:
		return nil, fmt.Errorf("%w: circuit requires all-even degrees, found %d odd", ErrNotEulerian, len(odd))
	case len(odd) != 0 && len(odd) != 2:
		return nil, fmt.Errorf("%w: found %d odd-degree vertices, need 0 or 2", ErrNotEulerian, len(odd))
	}

	start, err := pickStart(g, cfg.Start, odd)
	if err != nil {
		return nil, err
	}
	if !connectedFrom(g, start) {
		return nil, fmt.Errorf("%w: edges are not all reachable from %q", ErrNotEulerian, start)
	}

	h := &hierholzer{g: g, opts: cfg}
	trail, err := h.walk(start)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Start:  start,
		Trail:  trail,
		Closed: trail[0] == trail[len(trail)-1],
	}
	h.emit(trace.Event{Kind: trace.KindComplete, Result: res})

	return res, nil
}

// pickStart resolves the start vertex: an explicit override is validated,
// otherwise the smallest odd-degree vertex wins, else the smallest
// non-isolated one.
func pickStart(g *core.Graph, override string, odd []string) (string, error) {
	if override != "" {
		if !g.HasVertex(override) {
			return "", fmt.Errorf("%w: %q not in graph", ErrBadStart, override)
		}
		deg, err := g.Degree(override)
		if err != nil {
			return "", err
		}
		if deg == 0 {
			return "", fmt.Errorf("%w: %q is isolated", ErrBadStart, override)
		}
		if len(odd) == 2 && deg%2 == 0 {
			return "", fmt.Errorf("%w: %q has even degree but the trail must start at an odd-degree vertex", ErrBadStart, override)
		}

		return override, nil
	}
	if len(odd) == 2 {
		return odd[0], nil
	}
	for _, v := range g.Vertices() {
		deg, err := g.Degree(v)
		if err != nil {
			return "", err
		}
		if deg > 0 {
			return v, nil
		}
	}

	return "", ErrNoEdges
}

// connectedFrom reports whether every edge endpoint is reachable from
// start. Isolated vertices are permitted.
func connectedFrom(g *core.Graph, start string) bool {
	seen := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return false
		}
		for _, v := range nbrs {
			if !seen[v] {
				seen[v] = true
				stack = append(stack, v)
			}
		}
	}
	for _, e := range g.Edges() {
		if !seen[e.From] || !seen[e.To] {
			return false
		}
	}

	return true
}

// hierholzer carries the walk state: a remaining-edge multiset per vertex
// pair, mirrored for both endpoints.
type hierholzer struct {
	g         *core.Graph
	opts      Options
	remaining map[string]map[string]int
}

func (h *hierholzer) emit(e trace.Event) {
	if h.opts.Sink != nil {
		h.opts.Sink.Emit(e)
	}
}

// walk runs the edge-consuming loop from start and returns the finished
// trail. While the current vertex has a remaining incident edge, the vertex
// is pushed and the edge consumed; otherwise the vertex is appended to the
// output and the stack popped. The output builds back-to-front, so it is
// reversed before returning.
func (h *hierholzer) walk(start string) ([]string, error) {
	h.remaining = make(map[string]map[string]int, h.g.VertexCount())
	for _, e := range h.g.Edges() {
		h.consumeInit(e.From, e.To)
	}

	var out, stack []string
	cur := start
	for {
		select {
		case <-h.opts.Ctx.Done():
			return nil, h.opts.Ctx.Err()
		default:
		}

		next := h.smallestRemaining(cur)
		if next == "" {
			out = append(out, cur)
			h.emit(trace.Event{Kind: trace.KindBacktrack, Vertex: cur})
			if len(stack) == 0 {
				break
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			h.emit(trace.Event{Kind: trace.KindPop, Vertex: cur})
			continue
		}

		stack = append(stack, cur)
		h.emit(trace.Event{Kind: trace.KindPush, Vertex: cur})
		h.consume(cur, next)
		cur = next
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

func (h *hierholzer) consumeInit(u, v string) {
	if h.remaining[u] == nil {
		h.remaining[u] = make(map[string]int)
	}
	h.remaining[u][v]++
	if u == v {
		return
	}
	if h.remaining[v] == nil {
		h.remaining[v] = make(map[string]int)
	}
	h.remaining[v][u]++
}

func (h *hierholzer) consume(u, v string) {
	h.remaining[u][v]--
	if u != v {
		h.remaining[v][u]--
	}
}

// smallestRemaining returns the least neighbor ID of u with an unused edge,
// or "" when none remain.
func (h *hierholzer) smallestRemaining(u string) string {
	best := ""
	for v, n := range h.remaining[u] {
		if n > 0 && (best == "" || v < best) {
			best = v
		}
	}

	return best
}
