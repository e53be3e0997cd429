package builder

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vizwalk/vizwalk/core"
)

// Sentinel errors returned by the builder package.
var (
	// ErrTooFewVertices indicates a constructor parameter below its minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrNilConstructor indicates a nil Constructor passed to Build.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// Constructor applies one deterministic topology to the graph.
type Constructor func(g *core.Graph, cfg config) error

// config is the resolved builder configuration.
type config struct {
	prefix string
}

// id renders the vertex ID for index i.
func (c config) id(i int) string {
	return c.prefix + strconv.Itoa(i)
}

// Option configures Build.
type Option func(*config)

// WithPrefix prepends a label to every generated vertex ID.
func WithPrefix(p string) Option {
	return func(c *config) {
		c.prefix = p
	}
}

// Build creates a graph with the given core options and applies all
// constructors in order. The first constructor error aborts the build.
func Build(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)

	var cfg config
	for _, opt := range bopts {
		opt(&cfg)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilConstructor, i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}

	return g, nil
}

// Complete builds the complete simple graph K_n: every unordered pair
// {i, j} with i < j gets one edge.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
		}
		ids := vertexIDs(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(ids[i], ids[j], 0); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{m,n}: partitions "l0..l(m-1)" and
// "r0..r(n-1)" with every cross pair joined, m*n edges total.
func CompleteBipartite(m, n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if m < 1 || n < 1 {
			return fmt.Errorf("CompleteBipartite: m=%d n=%d: %w", m, n, ErrTooFewVertices)
		}
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				left := cfg.prefix + "l" + strconv.Itoa(i)
				right := cfg.prefix + "r" + strconv.Itoa(j)
				if _, err := g.AddEdge(left, right, 0); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Cycle builds the cycle C_n: 0-1-…-(n-1)-0. Needs n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
		}
		ids := vertexIDs(g, cfg, n)
		for i := 0; i < n; i++ {
			if _, err := g.AddEdge(ids[i], ids[(i+1)%n], 0); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path builds the path graph P_n: 0-1-…-(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
		}
		ids := vertexIDs(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if _, err := g.AddEdge(ids[i], ids[i+1], 0); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds the star S_n: center 0 joined to leaves 1..n. Equivalent to
// K_{1,n} up to vertex naming.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("Star: n=%d: %w", n, ErrTooFewVertices)
		}
		ids := vertexIDs(g, cfg, n+1)
		for i := 1; i <= n; i++ {
			if _, err := g.AddEdge(ids[0], ids[i], 0); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid builds the rows×cols orthogonal grid with 4-neighborhood. Vertex
// IDs are "r:c" coordinates in row-major order.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		id := func(r, c int) string {
			return cfg.prefix + strconv.Itoa(r) + ":" + strconv.Itoa(c)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(id(r, c)); err != nil {
					return err
				}
				if c+1 < cols {
					if _, err := g.AddEdge(id(r, c), id(r, c+1), 0); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if _, err := g.AddEdge(id(r, c), id(r+1, c), 0); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// vertexIDs adds n vertices in index order and returns their IDs.
func vertexIDs(g *core.Graph, cfg config, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.id(i)
		_ = g.AddVertex(ids[i]) // idempotent, only fails on empty ID
	}

	return ids
}
