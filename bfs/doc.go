// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start
//     vertex using a FIFO frontier.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - A vertex is enqueued at most once (guarded at enqueue time) and
//     dequeued exactly once; unreachable vertices never appear in Depth.
//   - Every frontier mutation, distance assignment, and visit is emitted to
//     an optional trace.Sink so a presentation layer can replay the run.
//
// Determinism
//
//	core.NeighborIDs returns neighbors in ascending order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, Depth map, Parent map, visited set
//
// Options
//
//   - WithContext(ctx):       set a custom context for cancellation.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0); 0 = no limit.
//   - WithFilterNeighbor(fn): skip edges for which fn(curr, neighbor) == false.
//   - WithSink(s):            emit trace events into s.
//   - WithOnVisit(fn):        hook during visit; returning an error aborts.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrWeightedGraph        if run on a weighted graph.
//   - ErrOptionViolation      if an invalid Option is supplied.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
