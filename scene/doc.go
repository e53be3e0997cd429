// Package scene bundles a demonstration graph with the algorithm to run
// over it.
//
// What
//
// A Scene names a graph (shape flags, vertices, edges) and a run
// configuration (algorithm, source vertex, optional per-vertex neighbor
// priorities). Preset returns the built-in demonstration scenes; LoadFile
// reads one from a TOML file:
//
//	description = "shortest paths on the weighted demo graph"
//
//	[graph]
//	weighted = true
//	vertices = ["0", "1", "2", "3"]
//
//	[[graph.edges]]
//	from = "0"
//	to = "1"
//	weight = 6
//
//	[run]
//	algorithm = "dijkstra"
//	source = "0"
//
// Run builds the graph, dispatches on the algorithm, streams the kernel's
// trace events into the given sink, and returns a Summary with the
// kernel's own result attached.
//
// Errors
//
//   - ErrUnknownScene     — Preset was asked for a name that is not built in.
//   - ErrUnknownAlgorithm — the run configuration names no known kernel.
//   - ErrBadScene         — the scene is structurally unusable (no
//     vertices, missing source, unreadable file, bad TOML).
package scene
