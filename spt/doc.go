// Package spt holds the shortest-path tree produced by the dijkstra,
// bellmanford and dagsp packages, and the services that consume it.
//
// Overview:
//
//   - Tree stores, for a fixed Source, Parents[v] (predecessor or NoParent)
//     and Dists[v] (total path weight or +Inf).
//   - GetPath / Tree.PathTo rebuild a Source→d vertex sequence by walking
//     parent pointers; the walk is bounded by V steps.
//   - PathToMatrix projects any vertex sequence onto an H×W visit-count grid.
//
// Errors (sentinel):
//
//   - ErrUnreachable:      destination has infinite distance.
//   - ErrCorruptTree:      parent chain does not lead back to the source.
//   - ErrSourceMismatch:   requested source differs from Tree.Source.
//   - ErrVertexOutOfRange: destination outside [0, V).
package spt
