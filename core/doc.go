// Package core defines the Graph and Edge types shared by every algorithm
// kernel in this module.
//
// What
//
//   - Graph: a small in-memory graph keyed by string vertex IDs, with
//     configurable directedness, weights, self-loops, and parallel edges.
//   - Deterministic read surface: Vertices() and NeighborIDs() return IDs in
//     ascending lexicographic order, and Edges() preserves insertion order.
//     Every kernel in this module relies on that ordering for reproducible
//     traversals, so the demonstration traces are stable run to run.
//
// Why
//
//   - The kernels (bfs, dfs, dijkstra, euler, hamilton) need one shared,
//     boring graph representation; each scene builds a Graph, hands it to a
//     kernel, and discards it when the run ends.
//
// Concurrency
//
//	A single sync.RWMutex guards all state. Scenes run single-threaded, but
//	the guard keeps concurrent readers (e.g. a sink inspecting degrees while
//	a test drives a kernel) safe without any caller-side discipline.
//
// Errors
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
