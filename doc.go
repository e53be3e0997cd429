// Package vizwalk runs the classic graph-traversal algorithms over small
// demonstration graphs and records everything they do as a replayable
// event trace.
//
// 🚀 What is vizwalk?
//
//	A thread-safe in-memory graph core plus the textbook kernels around it:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Traversals: BFS, DFS (recursive and explicit-stack)
//		• Shortest paths: Dijkstra with a lazy-deletion heap
//		• Eulerian trails & circuits: Hierholzer with precondition checks
//		• Hamiltonian paths & cycles: guarded backtracking
//		• Matrix views: adjacency & incidence + Floyd–Warshall ground truth
//		• Walk taxonomy: walk / trail / path classification
//
// Every kernel emits its visits, frontier pushes and pops, edge
// relaxations, and backtracks as trace events, so a consumer can replay a
// run step by step without knowing anything about the algorithm that
// produced it.
//
// Everything is organized under per-concern subpackages:
//
//	core/     — fundamental Graph and Edge types & thread-safe primitives
//	trace/    — the event model, sinks, and the JSON-lines recorder
//	bfs/      — breadth-first traversal with depth labeling
//	dfs/      — depth-first traversal, recursive and iterative
//	dijkstra/ — single-source shortest paths
//	euler/    — Eulerian trails and circuits
//	hamilton/ — Hamiltonian paths and cycles
//	matrix/   — adjacency & incidence matrices, Floyd–Warshall
//	walk/     — vertex-sequence classification and degree helpers
//	builder/  — deterministic demo topologies (K_n, K_{m,n}, cycles, grids)
//	scene/    — named demonstration scenarios, preset or TOML-defined
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square: Eulerian circuit A→B→D→C→A, Hamiltonian cycle likewise.
//
// The cmd/vizwalk CLI lists the built-in scenes and replays one, emitting
// its trace as JSON lines.
package vizwalk
