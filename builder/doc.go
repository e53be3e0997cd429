// Package builder assembles common demonstration graph topologies on top
// of core.
//
// What
//
// Build creates a graph and applies Constructor closures in order:
//
//	g, err := builder.Build(nil, nil,
//		builder.Cycle(6),
//		builder.Star(4),
//	)
//
// Available constructors: Complete (K_n), CompleteBipartite (K_{m,n}),
// Cycle, Path, Star, and Grid. All of them are deterministic: the same
// parameters and options always produce an identical graph.
//
// Vertex identity
//
// Constructors number vertices 0..n-1 and render IDs through the
// configured scheme (plain decimal by default, WithPrefix prepends a
// label). Grid is the exception: its IDs are always "r:c" coordinates.
// CompleteBipartite prefixes the two partitions "l" and "r" so they stay
// disjoint regardless of the scheme.
//
// Errors
//
//   - ErrTooFewVertices — a constructor parameter is below its minimum.
//   - ErrNilConstructor — Build was given a nil constructor.
package builder
