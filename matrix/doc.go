// Package matrix renders core graphs as dense matrices and computes
// all-pairs shortest paths over them.
//
// What
//
//   - NewAdjacency  — square vertex-by-vertex matrix; cells hold edge
//     weight (weighted graphs) or edge multiplicity (unweighted ones).
//   - NewIncidence  — vertex-by-edge matrix; rows follow sorted vertex IDs,
//     columns follow edge insertion order. Directed edges contribute -1 at
//     the tail and +1 at the head, undirected ones 1 and 1, self-loops 2.
//   - FloydWarshall — all-pairs shortest distances with a fixed k → i → j
//     loop order for deterministic accumulation; +Inf means "no path".
//
// FloydWarshall is O(n³) and exists as the independent ground truth the
// single-source kernels are checked against; it shares no code with them.
//
// Errors
//
//   - ErrNilGraph       — the graph argument is nil.
//   - ErrVertexNotFound — At was asked about a vertex outside the index.
package matrix
