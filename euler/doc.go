// Package euler constructs Eulerian trails and circuits of undirected
// graphs with Hierholzer's algorithm.
//
// What
//
// An Eulerian trail uses every edge of the graph exactly once; an Eulerian
// circuit is a trail that returns to its starting vertex. Trail produces
// either, Circuit insists on a closed one.
//
// Why
//
// The degree condition decides existence: a connected graph has an Eulerian
// circuit iff every vertex has even degree, and an open Eulerian trail iff
// exactly two vertices have odd degree (the trail's endpoints). Both
// functions validate the condition up front and reject violating graphs
// with ErrNotEulerian instead of walking into a wrong answer.
//
// The walk itself keeps a current vertex, a stack of vertices with
// unexplored alternatives, and a remaining-edge multiset. While the current
// vertex has an unused incident edge: push it, consume the edge, move to
// the other endpoint. When it has none: append it to the output and pop the
// stack. The output reversed is the trail. Edge choice is deterministic
// (smallest remaining neighbor first), so a given graph always yields the
// same trail.
//
// Complexity
//
// O(V + E) time after the O(V + E) precondition check; O(V + E) memory.
//
// Options
//
//   - WithStart(id)    — start vertex; must be odd-degree when odd-degree
//     vertices exist. Default: smallest odd-degree vertex, else smallest
//     non-isolated vertex.
//   - WithContext(ctx) — cancellation.
//   - WithSink(s)      — frontier-push / frontier-pop / backtrack /
//     complete events of the walk.
//
// Errors
//
//   - ErrNilGraph      — the graph argument is nil.
//   - ErrDirectedGraph — directed graphs are not supported.
//   - ErrNoEdges       — the graph has no edges to traverse.
//   - ErrNotEulerian   — degree condition or connectivity violated.
//   - ErrBadStart      — WithStart names a missing, isolated, or (when odd
//     vertices exist) even-degree vertex.
package euler
