// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted graphs with non-negative edge weights.
//
// What
//
//   - Compute the minimum-cost distance from a source vertex to every
//     reachable vertex, plus parent links for path reconstruction.
//   - Vertices are processed in order of increasing distance using a
//     container/heap min-heap keyed by (distance, vertex ID).
//   - Lazy decrease-key: an improved distance pushes a fresh heap entry and
//     the stale one is skipped when popped (the finalized check). A vertex's
//     distance is locked the first time it is popped.
//   - Each examined edge emits an edge-relax trace event carrying whether it
//     improved the best-known distance, so a presentation layer can show
//     accepted and rejected relaxations.
//
// Correctness
//
//	The finalize-on-first-pop invariant relies on non-negative weights. The
//	kernel scans all edges up front and fails fast with ErrNegativeWeight
//	rather than silently producing wrong distances.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (heap may hold one entry per relaxation)
//
// Options
//
//   - Source(id):          the start vertex (required).
//   - WithContext(ctx):    cancellation via context.Context.
//   - WithMaxDistance(x):  vertices farther than x are not explored (x ≥ 0).
//   - WithSink(s):         emit trace events into s.
//
// Errors
//
//   - ErrEmptySource     if no source was provided.
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrUnweightedGraph if the graph does not carry weights.
//   - ErrVertexNotFound  if the source vertex does not exist.
//   - ErrNegativeWeight  if any edge weight is negative.
//   - ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra
