package core

// Clone returns a deep copy of the graph: same flags, same vertices, and
// fresh Edge values with the same IDs, weights, and insertion order.
// The Eulerian kernel walks a clone so the caller's graph survives the
// edge-consuming traversal untouched.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		nextEdge:   g.nextEdge,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		edgeIDs:    append([]string(nil), g.edgeIDs...),
		adj:        make(map[string]map[string][]string, len(g.adj)),
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for eid, e := range g.edges {
		dup := *e
		c.edges[eid] = &dup
	}
	for from, tos := range g.adj {
		c.adj[from] = make(map[string][]string, len(tos))
		for to, eids := range tos {
			c.adj[from][to] = append([]string(nil), eids...)
		}
	}

	return c
}
