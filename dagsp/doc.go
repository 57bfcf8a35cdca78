// Package dagsp computes single-source shortest-path trees over grid graphs
// whose ascending vertex index is a topological order, by dynamic programming
// over that order.
//
// Overview:
//
//   - Vertices are swept in ascending index starting at the source. Each
//     reached vertex relaxes its out-arcs exactly once; by the topological
//     guarantee its own distance is already final at that point.
//   - The guarantee holds for gridgraph.KindAcyclic grids (arcs only go
//     right, down and down-right). For Dense and Sparse grids it is the
//     caller's obligation; a violation yields a wrong tree, not an error.
//   - Negative weights are allowed.
//   - On an acyclic grid with non-negative weights the tree equals the one
//     dijkstra produces, parents included: both keep the lowest-index
//     predecessor among equal-cost ones.
//
// Opt-in validation:
//
//   - WithRequireAcyclic(): O(1), trusts Graph.IsAcyclic (ErrNotAcyclic).
//   - WithOrderCheck():     O(V+E) scan of every arc (ErrNotTopological).
//     CheckOrder exposes the same scan on its own.
//
// Complexity:
//
//   - Time:  O(V+E), the fastest of the three algorithms.
//   - Space: O(V).
//
// Errors:
//
//   - ErrNilGraph, ErrSourceOutOfRange (wraps gridgraph.ErrOutOfBounds),
//     ErrNotAcyclic, ErrNotTopological, and ctx.Err() under WithCancelContext.
//   - ShortestPath additionally surfaces spt.ErrUnreachable and
//     spt.ErrVertexOutOfRange.
package dagsp
