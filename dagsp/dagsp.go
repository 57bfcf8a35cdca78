package dagsp

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpaths/gridgraph"
	"github.com/katalvlaran/gridpaths/internal/logutil"
	"github.com/katalvlaran/gridpaths/spt"
)

// cancelCheckEvery is the number of swept vertices between context polls.
const cancelCheckEvery = 4096

// Shortest computes the shortest-path tree from s over g by a single sweep in
// ascending vertex index, starting at s. Every reached vertex relaxes its
// out-arcs once, in enumeration order; vertices still at +Inf are skipped.
//
// The result is correct only when ascending index is a topological order of
// g, which holds for gridgraph.KindAcyclic grids. Negative weights are fine.
// The order is not verified unless WithOrderCheck or WithRequireAcyclic is
// given; a violation otherwise yields a silently wrong tree.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. s must be in [0, V) (ErrSourceOutOfRange, wrapping gridgraph.ErrOutOfBounds).
//  3. WithRequireAcyclic: g.IsAcyclic() (ErrNotAcyclic).
//  4. WithOrderCheck: every arc ascends (ErrNotTopological).
//
// Complexity:
//
//   - Time:  O(V+E), plus O(V+E) for WithOrderCheck.
//   - Space: O(V).
func Shortest(g gridgraph.Graph, s int, opts ...Option) (*spt.Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumVertices()
	if s < 0 || s >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d): %w", ErrSourceOutOfRange, s, n, gridgraph.ErrOutOfBounds)
	}
	if cfg.RequireAcyclic && !g.IsAcyclic() {
		return nil, ErrNotAcyclic
	}
	if cfg.CheckOrder {
		if err := CheckOrder(g); err != nil {
			return nil, err
		}
	}

	// 2) Sweep.
	tree := spt.New(n, s)
	dists, parents := tree.Dists, tree.Parents
	buf := make([]gridgraph.Arc, 0, 8)
	var st Stats

	for u := s; u < n; u++ {
		if (u-s)%cancelCheckEvery == 0 {
			if err := cfg.Ctx.Err(); err != nil {
				return nil, err
			}
		}
		du := dists[u]
		if math.IsInf(du, 1) {
			continue
		}
		st.Processed++
		buf = g.AppendOutArcs(buf[:0], u)
		for _, a := range buf {
			nd := du + a.Weight
			if nd < dists[a.Neighbor] {
				dists[a.Neighbor] = nd
				parents[a.Neighbor] = u
				st.Relaxations++
			}
		}
	}

	logutil.OrDiscard(cfg.Logger, "dagsp").WithFields(logrus.Fields{
		"source":      s,
		"vertices":    n,
		"processed":   st.Processed,
		"relaxations": st.Relaxations,
	}).Debug("shortest-path tree complete")
	if cfg.Stats != nil {
		*cfg.Stats = st
	}

	return tree, nil
}

// CheckOrder reports ErrNotTopological, naming the first offending arc, unless
// every arc of g goes from a lower to a higher vertex index.
// Complexity: O(V+E).
func CheckOrder(g gridgraph.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	buf := make([]gridgraph.Arc, 0, 8)
	for u := 0; u < g.NumVertices(); u++ {
		buf = g.AppendOutArcs(buf[:0], u)
		for _, a := range buf {
			if a.Neighbor <= u {
				return fmt.Errorf("%w: arc %d→%d", ErrNotTopological, u, a.Neighbor)
			}
		}
	}
	return nil
}

// ShortestPath runs Shortest from s and returns the s→d vertex sequence and
// its total weight. An unreachable d yields spt.ErrUnreachable.
func ShortestPath(g gridgraph.Graph, s, d int, opts ...Option) ([]int, float64, error) {
	tree, err := Shortest(g, s, opts...)
	if err != nil {
		return nil, 0, err
	}
	path, err := tree.PathTo(d)
	if err != nil {
		return nil, 0, err
	}
	return path, tree.Dists[d], nil
}
