// Package dijkstra computes single-source shortest-path trees over grid
// graphs whose vertex weights are non-negative.
//
// Overview:
//
//   - The cost of entering a vertex is its weight; the source costs 0.
//   - The algorithm extracts the vertex with the smallest tentative distance
//     from a priority queue and relaxes its out-arcs, in the order the graph
//     enumerates them. Improvements are strict, so the first equal-cost
//     predecessor found is kept.
//   - The queue is supplied by the caller (Run) or allocated per call
//     (Dijkstra). Any pqueue.Queue works in ModeNaive; ModeDecreaseKey needs
//     a pqueue.Updater. Both modes produce the same tree for the same input,
//     because every queue orders entries by (distance, vertex).
//
// Modes:
//
//   - ModeDecreaseKey (default): one queue slot per vertex, updated in place.
//   - ModeNaive: an improved vertex is pushed again; entries whose distance
//     is above the vertex's current best, or whose vertex is already
//     settled, are discarded when popped.
//
// Queue contract:
//
//   - The queue must be empty on entry (ErrQueueNotEmpty otherwise).
//   - A run uses it exclusively and leaves it empty on return, so one queue
//     may serve many sequential runs. Queues are not safe for concurrent runs.
//
// Cancellation:
//
//   - WithCancelContext(ctx) polls ctx every 1024 pops. A cancelled run
//     returns ctx.Err(), no tree, and an emptied queue.
//
// Preconditions:
//
//   - Non-negative weights are a caller obligation. WithNegativeWeightCheck
//     turns the obligation into an O(V) check failing with ErrNegativeWeight.
//     Unchecked negative weights still terminate: each vertex is settled
//     once and never relaxed again, so the tree stays well formed but its
//     distances may be wrong.
//   - +Inf weights make a vertex unreachable (its distance stays +Inf).
//
// Complexity:
//
//   - Time:  O(E log V) decrease-key, O(E log E) naive; E ≤ 8V on grids.
//   - Space: O(V) for the tree plus queue entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilQueue, ErrNoDecreaseKey, ErrQueueNotEmpty,
//     ErrSourceOutOfRange (wraps gridgraph.ErrOutOfBounds), ErrNegativeWeight.
//   - ShortestPath additionally surfaces spt.ErrUnreachable and
//     spt.ErrVertexOutOfRange.
//
// API reference:
//
//	func Run(q pqueue.Queue, g gridgraph.Graph, s int, opts ...Option) (*spt.Tree, error)
//	func Dijkstra(g gridgraph.Graph, s int, opts ...Option) (*spt.Tree, error)
//	func ShortestPath(g gridgraph.Graph, s, d int, opts ...Option) ([]int, float64, error)
package dijkstra
