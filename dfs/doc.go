// Package dfs implements depth-first search on a core.Graph, in a recursive
// variant (DFS, natural call stack) and an iterative variant (DFSIterative,
// explicit LIFO stack).
//
// What
//
//   - Visit every vertex reachable from a start vertex exactly once,
//     following edges as deep as possible before exploring siblings.
//   - Returns a Result with preorder visit Order, per-vertex Depth, Parent
//     links (the spanning forest), and the Visited set.
//   - DFSIterative keeps an explicit stack of (vertex, parent) frames. A
//     vertex may sit on the stack several times before it is popped;
//     duplicates are resolved by the already-visited check at pop time, not
//     at push time. Neighbors are pushed in reverse order so the smallest
//     is expanded first, matching the recursive variant.
//
// Determinism
//
//	Neighbors are explored in ascending order by default. WithNeighborOrder
//	installs a per-vertex tie-break for scenes that need a specific spanning
//	tree; the kernel itself carries no special cases.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the stack and metadata maps
//
// Options
//
//   - WithContext(ctx)        cancellation via context.Context.
//   - WithMaxDepth(limit)     stop beyond the given depth (>= 0); -1 = no limit.
//   - WithFilterNeighbor(fn)  skip neighbors for which fn returns false.
//   - WithNeighborOrder(fn)   reorder a vertex's neighbor list before expansion.
//   - WithFullTraversal()     restart from every unvisited vertex (forest).
//   - WithSink(s)             emit trace events into s.
//   - WithOnVisit(fn)         pre-order hook; error aborts traversal.
//   - WithOnExit(fn)          post-order hook; error aborts traversal.
//
// Errors
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartVertexNotFound if startID is missing (single-source mode).
//   - context.Canceled       if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
