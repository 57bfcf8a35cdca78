package bellmanford

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpaths/gridgraph"
	"github.com/katalvlaran/gridpaths/internal/logutil"
	"github.com/katalvlaran/gridpaths/spt"
)

// BellmanFord computes the shortest-path tree from s over g by repeated full
// sweeps: each pass visits every vertex in ascending index order and relaxes
// its out-arcs in enumeration order. The run stops after a pass without
// improvement or after the pass cap (V−1 unless lowered by WithMaxPasses).
//
// Negative weights are allowed as long as no negative-weight cycle is
// reachable from s. Such a cycle is not detected: the run ends at the cap and
// the tree is meaningless.
//
// Errors: ErrNilGraph, ErrSourceOutOfRange (wraps gridgraph.ErrOutOfBounds),
// and ctx.Err() when the WithCancelContext context ends between passes.
//
// Complexity:
//
//   - Time:  O(V·E) worst case, O(E) per pass.
//   - Space: O(V).
func BellmanFord(g gridgraph.Graph, s int, opts ...Option) (*spt.Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumVertices()
	if s < 0 || s >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d): %w", ErrSourceOutOfRange, s, n, gridgraph.ErrOutOfBounds)
	}

	limit := n - 1
	if cfg.MaxPasses > 0 && cfg.MaxPasses < limit {
		limit = cfg.MaxPasses
	}

	tree := spt.New(n, s)
	var st Stats
	buf := make([]gridgraph.Arc, 0, 8)
	dists, parents := tree.Dists, tree.Parents

	// A single vertex has no edges to relax.
	if limit == 0 {
		st.Converged = true
	}
	for st.Passes < limit {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		st.Passes++
		improved := false
		for u := 0; u < n; u++ {
			du := dists[u]
			if math.IsInf(du, 1) {
				continue
			}
			buf = g.AppendOutArcs(buf[:0], u)
			for _, a := range buf {
				nd := du + a.Weight
				if nd < dists[a.Neighbor] {
					dists[a.Neighbor] = nd
					parents[a.Neighbor] = u
					st.Relaxations++
					improved = true
				}
			}
		}
		if !improved {
			st.Converged = true
			break
		}
	}
	if !st.Converged {
		st.Converged = !relaxable(g, dists, buf)
	}

	logutil.OrDiscard(cfg.Logger, "bellmanford").WithFields(logrus.Fields{
		"source":      s,
		"vertices":    n,
		"passes":      st.Passes,
		"converged":   st.Converged,
		"relaxations": st.Relaxations,
	}).Debug("shortest-path tree complete")
	if cfg.Stats != nil {
		*cfg.Stats = st
	}

	return tree, nil
}

// relaxable reports whether some edge out of a reached vertex would still
// improve its destination.
func relaxable(g gridgraph.Graph, dists []float64, buf []gridgraph.Arc) bool {
	for u, du := range dists {
		if math.IsInf(du, 1) {
			continue
		}
		buf = g.AppendOutArcs(buf[:0], u)
		for _, a := range buf {
			if du+a.Weight < dists[a.Neighbor] {
				return true
			}
		}
	}
	return false
}

// ShortestPath runs BellmanFord from s and returns the s→d vertex sequence
// and its total weight. An unreachable d yields spt.ErrUnreachable.
func ShortestPath(g gridgraph.Graph, s, d int, opts ...Option) ([]int, float64, error) {
	tree, err := BellmanFord(g, s, opts...)
	if err != nil {
		return nil, 0, err
	}
	path, err := tree.PathTo(d)
	if err != nil {
		return nil, 0, err
	}
	return path, tree.Dists[d], nil
}
