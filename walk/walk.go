package walk

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vizwalk/vizwalk/core"
)

// Sentinel errors returned by the walk package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("walk: graph is nil")

	// ErrEmptySequence indicates that the vertex sequence has no elements.
	ErrEmptySequence = errors.New("walk: vertex sequence is empty")
)

// Kind is the classification of a vertex sequence over a graph.
type Kind uint8

const (
	// Invalid: some vertex is missing from the graph or some consecutive
	// pair has no connecting edge.
	Invalid Kind = iota

	// Walk: every consecutive pair is connected; vertices and edges may repeat.
	Walk

	// Trail: a walk that uses no edge more than once.
	Trail

	// Path: a trail that visits no vertex more than once.
	Path
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Walk:
		return "walk"
	case Trail:
		return "trail"
	case Path:
		return "path"
	default:
		return "invalid"
	}
}

// Classify reports the most specific traversal kind of seq over g: Path,
// then Trail, then Walk, or Invalid when seq is not a walk at all.
//
// In multigraphs each parallel edge may be used once, so a pair may appear
// in a trail as many times as edges join it.
func Classify(g *core.Graph, seq []string) (Kind, error) {
	if g == nil {
		return Invalid, ErrNilGraph
	}
	if len(seq) == 0 {
		return Invalid, ErrEmptySequence
	}
	for _, v := range seq {
		if !g.HasVertex(v) {
			return Invalid, nil
		}
	}

	// edge multiset: how many distinct edges join each pair
	avail := make(map[[2]string]int, g.EdgeCount())
	for _, e := range g.Edges() {
		avail[pairKey(e.From, e.To, e.Directed)]++
	}

	isTrail := true
	for i := 1; i < len(seq); i++ {
		u, v := seq[i-1], seq[i]
		if !g.HasEdge(u, v) {
			return Invalid, nil
		}
		k := pairKey(u, v, g.Directed())
		if avail[k] == 0 {
			isTrail = false
			continue
		}
		avail[k]--
	}
	if !isTrail {
		return Walk, nil
	}

	seen := make(map[string]bool, len(seq))
	for _, v := range seq {
		if seen[v] {
			return Trail, nil
		}
		seen[v] = true
	}

	return Path, nil
}

// IsClosed reports whether seq begins and ends at the same vertex. A closed
// trail is a circuit; a closed path is a cycle.
func IsClosed(seq []string) bool {
	return len(seq) >= 2 && seq[0] == seq[len(seq)-1]
}

// OddVertices returns the IDs of all odd-degree vertices in ascending
// order. Self-loops contribute 2 to the degree and never change parity.
func OddVertices(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	var odd []string
	for _, v := range g.Vertices() {
		deg, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("walk: degree of %q: %w", v, err)
		}
		if deg%2 == 1 {
			odd = append(odd, v)
		}
	}
	sort.Strings(odd)

	return odd, nil
}

// pairKey normalizes an edge's endpoints into a map key: ordered for
// directed graphs, endpoint-sorted for undirected ones.
func pairKey(u, v string, directed bool) [2]string {
	if !directed && v < u {
		u, v = v, u
	}

	return [2]string{u, v}
}
