// Package core: vertex, edge, and adjacency operations on Graph.
//
// All mutating and querying methods take the single graph mutex; read methods
// use the shared (R) side. Adjacency is a nested map from→to→[]edgeID, with
// undirected edges mirrored both ways.
package core

import "sort"

// AddVertex inserts a vertex with the given ID.
// Returns ErrEmptyVertexID if id is empty.
// Adding an existing vertex is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}
	g.adj[id] = make(map[string][]string)

	return nil
}

// AddVertices inserts every given ID, stopping at the first error.
func (g *Graph) AddVertices(ids ...string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return err
		}
	}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertices returns all vertex IDs in ascending lexicographic order.
// Kernels seed their traversals from this ordering, so it must stay stable.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// AddEdge creates an edge from→to with the given weight and returns its ID.
// Both endpoints are added if absent. For undirected graphs the adjacency
// index is mirrored so the edge is traversable both ways.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, or
// ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// validation before any mutation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && len(g.adj[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := g.nextEdgeID()
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e
	g.edgeIDs = append(g.edgeIDs, eid)
	g.adj[from][to] = append(g.adj[from][to], eid)
	if !g.directed && from != to {
		g.adj[to][from] = append(g.adj[to][from], eid)
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists.
// For undirected graphs the direction of the arguments does not matter.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[from][to]) > 0
}

// RemoveEdge deletes the edge with the given ID and its mirror entry.
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	for i, id := range g.edgeIDs {
		if id == eid {
			g.edgeIDs = append(g.edgeIDs[:i], g.edgeIDs[i+1:]...)
			break
		}
	}
	g.adj[e.From][e.To] = removeID(g.adj[e.From][e.To], eid)
	if !e.Directed && e.From != e.To {
		g.adj[e.To][e.From] = removeID(g.adj[e.To][e.From], eid)
	}

	return nil
}

// removeID drops the first occurrence of eid from ids.
func removeID(ids []string, eid string) []string {
	for i, id := range ids {
		if id == eid {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}

// Edges returns all edges in insertion order.
// The incidence matrix maps its columns onto this ordering.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edgeIDs))
	for _, eid := range g.edgeIDs {
		out = append(out, g.edges[eid])
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// NeighborIDs returns the distinct neighbor IDs of id in ascending order.
// For directed graphs only outgoing edges count.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(deg log deg).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(g.adj[id]))
	for to, eids := range g.adj[id] {
		if len(eids) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Neighbors returns every edge incident to id that can be traversed away
// from id, sorted by edge ID for determinism. Undirected edges appear even
// when id is the stored To endpoint.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	var out []*Edge
	for _, eids := range g.adj[id] {
		for _, eid := range eids {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Degree returns the degree of the vertex id.
// For undirected graphs a self-loop counts twice, per convention.
// For directed graphs it returns out-degree plus in-degree.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(E).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	deg := 0
	for _, e := range g.edges {
		if e.From == id {
			deg++
		}
		if e.To == id {
			deg++
		}
	}
	// the double count above is exactly the loop convention for undirected
	// graphs; for e.From != e.To at most one branch fires

	return deg, nil
}
