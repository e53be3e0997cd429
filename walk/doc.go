// Package walk classifies vertex sequences over a core.Graph into the
// classical hierarchy of graph traversals.
//
// What
//
// A sequence of vertices v₀ → v₁ → … → vₖ is a
//
//   - Walk  — every consecutive pair is joined by an edge of the graph;
//     vertices and edges may repeat.
//   - Trail — a walk that never uses the same edge twice (parallel edges
//     count separately in multigraphs).
//   - Path  — a trail that never repeats a vertex.
//
// Classify returns the most specific kind that applies, or Invalid when
// some consecutive pair has no connecting edge (or a vertex is missing from
// the graph). IsClosed reports whether a sequence starts and ends at the
// same vertex, which turns a trail into a circuit and a path into a cycle.
//
// The package also hosts degree helpers (OddVertices) shared with the
// Eulerian kernel's precondition check.
//
// Complexity
//
// Classify runs in O(len(seq) + E) time and O(E) memory for the edge
// multiset. OddVertices is O(V + E).
//
// Errors
//
//   - ErrNilGraph      — the graph argument is nil.
//   - ErrEmptySequence — the vertex sequence has no elements.
//
// A sequence that merely fails to be a walk is not an error: Classify
// reports Invalid in-band.
package walk
