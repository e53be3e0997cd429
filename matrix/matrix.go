package matrix

import (
	"errors"
	"fmt"
	"math"

	"github.com/vizwalk/vizwalk/core"
)

// Sentinel errors returned by the matrix package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrVertexNotFound indicates a lookup outside the matrix index.
	ErrVertexNotFound = errors.New("matrix: vertex not in index")
)

// Dense is a square vertex-by-vertex matrix. Index fixes the row and
// column order (sorted vertex IDs); Data is row-major.
type Dense struct {
	Index []string
	Data  [][]float64
}

// At returns the cell for the (u, v) vertex pair.
func (d *Dense) At(u, v string) (float64, error) {
	i, err := d.indexOf(u)
	if err != nil {
		return 0, err
	}
	j, err := d.indexOf(v)
	if err != nil {
		return 0, err
	}

	return d.Data[i][j], nil
}

func (d *Dense) indexOf(v string) (int, error) {
	for i, id := range d.Index {
		if id == v {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
}

// NewAdjacency builds the dense adjacency matrix of g. Weighted graphs
// store edge weights (parallel edges sum), unweighted ones store edge
// multiplicity. Undirected edges are mirrored.
func NewAdjacency(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	d := newZeros(g.Vertices())
	pos := make(map[string]int, len(d.Index))
	for i, v := range d.Index {
		pos[v] = i
	}

	for _, e := range g.Edges() {
		i, j := pos[e.From], pos[e.To]
		cell := float64(1)
		if g.Weighted() {
			cell = float64(e.Weight)
		}
		d.Data[i][j] += cell
		if !e.Directed && i != j {
			d.Data[j][i] += cell
		}
	}

	return d, nil
}

// FloydWarshall computes all-pairs shortest distances of g. Off-diagonal
// cells with no connecting path hold +Inf; the diagonal is zero. Unweighted
// graphs count hops. The loop order is fixed (k → i → j) so accumulation is
// deterministic.
func FloydWarshall(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	adj, err := NewAdjacency(g)
	if err != nil {
		return nil, err
	}

	n := len(adj.Index)
	dist := adj // reuse the adjacency cells as the initial distance matrix
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				dist.Data[i][j] = 0
				continue
			}
			if dist.Data[i][j] == 0 {
				dist.Data[i][j] = math.Inf(1)
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := dist.Data[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if cand := ik + dist.Data[k][j]; cand < dist.Data[i][j] {
					dist.Data[i][j] = cand
				}
			}
		}
	}

	return dist, nil
}

// Incidence is a vertex-by-edge matrix: Vertices fixes the row order
// (sorted IDs), EdgeIDs the column order (insertion order).
type Incidence struct {
	Vertices []string
	EdgeIDs  []string
	Data     [][]int
}

// NewIncidence builds the incidence matrix of g. A directed edge puts -1
// at its tail row and +1 at its head row; an undirected edge puts 1 at
// both; a self-loop puts 2 in its single row.
func NewIncidence(g *core.Graph) (*Incidence, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	verts := g.Vertices()
	pos := make(map[string]int, len(verts))
	for i, v := range verts {
		pos[v] = i
	}

	edges := g.Edges()
	inc := &Incidence{
		Vertices: verts,
		EdgeIDs:  make([]string, len(edges)),
		Data:     make([][]int, len(verts)),
	}
	for i := range inc.Data {
		inc.Data[i] = make([]int, len(edges))
	}

	for col, e := range edges {
		inc.EdgeIDs[col] = e.ID
		i, j := pos[e.From], pos[e.To]
		switch {
		case i == j:
			inc.Data[i][col] = 2
		case e.Directed:
			inc.Data[i][col] = -1
			inc.Data[j][col] = 1
		default:
			inc.Data[i][col] = 1
			inc.Data[j][col] = 1
		}
	}

	return inc, nil
}

func newZeros(index []string) *Dense {
	d := &Dense{
		Index: append([]string(nil), index...),
		Data:  make([][]float64, len(index)),
	}
	for i := range d.Data {
		d.Data[i] = make([]float64, len(index))
	}

	return d
}
