// Package hamilton searches for Hamiltonian paths and cycles by plain
// backtracking.
//
// What
//
// A Hamiltonian path visits every vertex of the graph exactly once; a
// Hamiltonian cycle additionally returns to the start over a closing edge.
// Cycle and Path grow an explicit path plus visited set, extending through
// the smallest unvisited neighbor first, and undo the latest extension when
// a dead end is reached. Exhausting all alternatives yields ErrNoCycle /
// ErrNoPath rather than a silent empty result.
//
// Why backtracking and why the size guard
//
// The search is exponential in the worst case and applies no pruning
// beyond the visited set, which is fine for the small demonstration graphs
// it exists for. WithMaxVertices (default 16) rejects larger inputs with
// ErrTooLarge before the search can blow up.
//
// Options
//
//   - WithMaxVertices(n) — raise or lower the size guard.
//   - WithContext(ctx)   — cancellation, checked at every extension.
//   - WithSink(s)        — frontier-push on extension, backtrack on undo,
//     complete on success.
//
// Errors
//
//   - ErrNilGraph        — the graph argument is nil.
//   - ErrVertexNotFound  — the start vertex does not exist.
//   - ErrTooLarge        — vertex count exceeds the MaxVertices guard.
//   - ErrNoCycle         — the search space is exhausted without a cycle.
//   - ErrNoPath          — the search space is exhausted without a path.
//   - ErrOptionViolation — invalid option value (non-positive MaxVertices).
package hamilton
