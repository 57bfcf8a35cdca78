// Package bellmanford computes single-source shortest-path trees over grid
// graphs by full edge-relaxation sweeps.
//
// Overview:
//
//   - Works on every grid variant, cyclic ones included, and tolerates
//     negative vertex weights when no negative-weight cycle is reachable
//     from the source. Negative cycles are not reported.
//   - Each pass visits vertices in ascending index order and relaxes their
//     out-arcs in enumeration order. Unreached vertices are skipped.
//   - The run ends early after a pass with no improvement. When the pass cap
//     is reached instead, one read-only sweep decides Stats.Converged; a
//     reachable negative cycle leaves it false.
//
// When to use:
//
//   - Grids with negative weights, where dijkstra gives wrong answers.
//   - As a slow, simple oracle when testing the faster algorithms.
//
// Options:
//
//   - WithMaxPasses(n): cap on passes, at most V−1 (panics on n < 1).
//   - WithStats(*Stats): passes, relaxations and convergence of the run.
//   - WithLogger(logrus.FieldLogger): debug run summary; nil discards.
//   - WithCancelContext(ctx): polled before every pass.
//
// Complexity:
//
//   - Time:  O(V·E) worst case; E ≤ 8V on grids.
//   - Space: O(V).
//
// Errors:
//
//   - ErrNilGraph, ErrSourceOutOfRange (wraps gridgraph.ErrOutOfBounds).
//   - ShortestPath additionally surfaces spt.ErrUnreachable and
//     spt.ErrVertexOutOfRange.
package bellmanford
