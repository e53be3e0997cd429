package scene

import (
	"context"
	"sort"

	"github.com/vizwalk/vizwalk/bfs"
	"github.com/vizwalk/vizwalk/dfs"
	"github.com/vizwalk/vizwalk/dijkstra"
	"github.com/vizwalk/vizwalk/euler"
	"github.com/vizwalk/vizwalk/hamilton"
	"github.com/vizwalk/vizwalk/trace"
)

// Run builds the scene's graph, dispatches to the configured kernel, and
// streams the run's trace events into sink (which may be nil).
func Run(ctx context.Context, s Scene, sink trace.Sink) (*Summary, error) {
	g, err := s.Build()
	if err != nil {
		return nil, err
	}

	counter := &countingSink{next: sink}
	sum := &Summary{Scene: s.Name, Algorithm: s.Run.Algorithm}

	switch s.Run.Algorithm {
	case AlgoBFS:
		res, err := bfs.BFS(g, s.Run.Source,
			bfs.WithContext(ctx), bfs.WithSink(counter))
		if err != nil {
			return nil, err
		}
		sum.Result = res
		if s.Run.Target != "" {
			if path, err := res.PathTo(s.Run.Target); err == nil {
				sum.Path = path
			}
		}

	case AlgoDFS, AlgoDFSIterative:
		opts := []dfs.Option{dfs.WithContext(ctx), dfs.WithSink(counter)}
		if len(s.Run.Priority) > 0 {
			opts = append(opts, dfs.WithNeighborOrder(priorityOrder(s.Run.Priority)))
		}
		var res *dfs.Result
		if s.Run.Algorithm == AlgoDFS {
			res, err = dfs.DFS(g, s.Run.Source, opts...)
		} else {
			res, err = dfs.DFSIterative(g, s.Run.Source, opts...)
		}
		if err != nil {
			return nil, err
		}
		sum.Result = res

	case AlgoDijkstra:
		res, err := dijkstra.Dijkstra(g, dijkstra.Source(s.Run.Source),
			dijkstra.WithContext(ctx), dijkstra.WithSink(counter))
		if err != nil {
			return nil, err
		}
		sum.Result = res
		if s.Run.Target != "" {
			if path, err := res.PathTo(s.Run.Target); err == nil {
				sum.Path = path
			}
		}

	case AlgoEulerTrail, AlgoEulerCircuit:
		opts := []euler.Option{euler.WithContext(ctx), euler.WithSink(counter)}
		if s.Run.Source != "" {
			opts = append(opts, euler.WithStart(s.Run.Source))
		}
		var res *euler.Result
		if s.Run.Algorithm == AlgoEulerTrail {
			res, err = euler.Trail(g, opts...)
		} else {
			res, err = euler.Circuit(g, opts...)
		}
		if err != nil {
			return nil, err
		}
		sum.Result = res
		sum.Path = res.Trail

	case AlgoHamiltonCycle, AlgoHamiltonPath:
		opts := []hamilton.Option{hamilton.WithContext(ctx), hamilton.WithSink(counter)}
		var res *hamilton.Result
		if s.Run.Algorithm == AlgoHamiltonCycle {
			res, err = hamilton.Cycle(g, s.Run.Source, opts...)
		} else {
			res, err = hamilton.Path(g, s.Run.Source, opts...)
		}
		if err != nil {
			return nil, err
		}
		sum.Result = res
		sum.Path = res.Path

	default:
		return nil, ErrUnknownAlgorithm
	}

	sum.Events = counter.count

	return sum, nil
}

// priorityOrder turns the per-vertex priority lists into a dfs neighbor
// ordering: listed neighbors first in list order, the rest ascending.
func priorityOrder(prio map[string][]string) func(string, []string) []string {
	return func(curr string, nbrs []string) []string {
		pref, ok := prio[curr]
		if !ok {
			return nbrs
		}

		rank := make(map[string]int, len(pref))
		for i, id := range pref {
			rank[id] = i
		}
		out := append([]string(nil), nbrs...)
		sort.SliceStable(out, func(i, j int) bool {
			ri, iOK := rank[out[i]]
			rj, jOK := rank[out[j]]
			switch {
			case iOK && jOK:
				return ri < rj
			case iOK:
				return true
			case jOK:
				return false
			default:
				return false // keep ascending input order
			}
		})

		return out
	}
}

// countingSink forwards events and counts them, so the summary can report
// the trace length even when the caller passed no sink.
type countingSink struct {
	next  trace.Sink
	count int
}

func (c *countingSink) Emit(e trace.Event) {
	c.count++
	if c.next != nil {
		c.next.Emit(e)
	}
}
