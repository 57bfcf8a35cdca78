package dijkstra

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpaths/gridgraph"
	"github.com/katalvlaran/gridpaths/internal/logutil"
	"github.com/katalvlaran/gridpaths/pqueue"
	"github.com/katalvlaran/gridpaths/spt"
)

// Run computes the shortest-path tree from s over g using the caller-supplied
// queue q as working state.
//
// The queue must be empty on entry. The run owns it exclusively until it
// returns and leaves it empty, so the same queue can serve many runs.
// In ModeDecreaseKey q must implement pqueue.Updater.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. q must be non-nil (ErrNilQueue).
//  3. ModeDecreaseKey requires a pqueue.Updater (ErrNoDecreaseKey).
//  4. q must be empty (ErrQueueNotEmpty).
//  5. s must be in [0, V) (ErrSourceOutOfRange, wrapping gridgraph.ErrOutOfBounds).
//  6. With WithNegativeWeightCheck, no weight may be negative (ErrNegativeWeight).
//
// Without the check, negative weights are a caller obligation: every vertex
// is settled once, so the run terminates with a well-formed tree whose
// distances may be wrong.
//
// Complexity:
//
//   - Time:  O(E log V) decrease-key, O(E log E) naive.
//   - Space: O(V) plus queue entries.
func Run(q pqueue.Queue, g gridgraph.Graph, s int, opts ...Option) (*spt.Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return run(q, g, s, cfg)
}

// Dijkstra is Run with a freshly allocated queue: a pqueue.IndexedHeap in
// ModeDecreaseKey, a pqueue.Heap in ModeNaive.
func Dijkstra(g gridgraph.Graph, s int, opts ...Option) (*spt.Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	var q pqueue.Queue
	if cfg.Mode == ModeNaive {
		q = pqueue.NewHeap(g.NumVertices())
	} else {
		q = pqueue.NewIndexedHeap(g.NumVertices())
	}
	return run(q, g, s, cfg)
}

// ShortestPath runs Dijkstra from s and returns the s→d vertex sequence and
// its total weight. An unreachable d yields spt.ErrUnreachable.
func ShortestPath(g gridgraph.Graph, s, d int, opts ...Option) ([]int, float64, error) {
	tree, err := Dijkstra(g, s, opts...)
	if err != nil {
		return nil, 0, err
	}
	path, err := tree.PathTo(d)
	if err != nil {
		return nil, 0, err
	}
	return path, tree.Dists[d], nil
}

func run(q pqueue.Queue, g gridgraph.Graph, s int, cfg Options) (*spt.Tree, error) {
	// 1) Validate inputs in documented order.
	if g == nil {
		return nil, ErrNilGraph
	}
	if q == nil {
		return nil, ErrNilQueue
	}
	var upd pqueue.Updater
	if cfg.Mode == ModeDecreaseKey {
		var ok bool
		if upd, ok = q.(pqueue.Updater); !ok {
			return nil, fmt.Errorf("%w: got %T", ErrNoDecreaseKey, q)
		}
	}
	if q.Len() != 0 {
		return nil, fmt.Errorf("%w: %d entries", ErrQueueNotEmpty, q.Len())
	}
	n := g.NumVertices()
	if s < 0 || s >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d): %w", ErrSourceOutOfRange, s, n, gridgraph.ErrOutOfBounds)
	}
	if cfg.CheckNegative && g.HasNegativeWeights() {
		return nil, ErrNegativeWeight
	}

	// 2) Seed the tree and the queue with the source.
	r := &runner{
		ctx:  cfg.Ctx,
		g:    g,
		q:    q,
		upd:  upd,
		tree:    spt.New(n, s),
		settled: make([]bool, n),
		buf:     make([]gridgraph.Arc, 0, 8),
	}
	r.push(s, 0)

	// 3) Main loop. On cancellation the queue is emptied before returning.
	if err := r.process(); err != nil {
		q.Reset()
		return nil, err
	}

	logutil.OrDiscard(cfg.Logger, "dijkstra").WithFields(logrus.Fields{
		"mode":        cfg.Mode.String(),
		"source":      s,
		"vertices":    n,
		"pops":        r.stats.Pops,
		"stale":       r.stats.StalePops,
		"relaxations": r.stats.Relaxations,
	}).Debug("shortest-path tree complete")
	if cfg.Stats != nil {
		*cfg.Stats = r.stats
	}

	return r.tree, nil
}

// cancelCheckEvery is the number of pops between context polls.
const cancelCheckEvery = 1024

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	ctx     context.Context // cancellation
	g       gridgraph.Graph // read-only input
	q       pqueue.Queue    // caller-owned working queue
	upd     pqueue.Updater  // q as Updater in decrease-key mode, nil in naive mode
	tree    *spt.Tree       // result under construction
	settled []bool          // settled[v] once v has been popped and relaxed
	buf     []gridgraph.Arc // reused neighbor buffer
	stats   Stats
}

// push records a tentative distance for v in the queue according to the mode.
func (r *runner) push(v int, d float64) {
	if r.upd != nil {
		r.upd.Set(v, d)
		return
	}
	r.q.Push(v, d)
}

// process pops until the queue is empty. An entry for a settled vertex, or
// whose priority no longer equals the vertex's current distance, is stale
// and skipped; only naive mode produces such entries. Each vertex is
// settled and relaxed at most once.
func (r *runner) process() error {
	dists := r.tree.Dists
	for r.q.Len() > 0 {
		if r.stats.Pops%cancelCheckEvery == 0 {
			if err := r.ctx.Err(); err != nil {
				return err
			}
		}
		u, d := r.q.Pop()
		r.stats.Pops++
		if r.settled[u] || d != dists[u] {
			r.stats.StalePops++
			continue
		}
		r.settled[u] = true
		r.relax(u, d)
	}
	return nil
}

// relax tries to improve every unsettled out-neighbor of u, whose distance
// is du. Improvements are strict, so among equal-cost predecessors the first
// one settled is kept.
func (r *runner) relax(u int, du float64) {
	dists, parents := r.tree.Dists, r.tree.Parents
	r.buf = r.g.AppendOutArcs(r.buf[:0], u)
	for _, a := range r.buf {
		if r.settled[a.Neighbor] {
			continue
		}
		nd := du + a.Weight
		if nd >= dists[a.Neighbor] {
			continue
		}
		dists[a.Neighbor] = nd
		parents[a.Neighbor] = u
		r.stats.Relaxations++
		r.push(a.Neighbor, nd)
	}
}
