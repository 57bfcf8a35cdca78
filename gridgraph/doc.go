// Package gridgraph treats a rectangular matrix of vertex weights as an
// implicit directed graph, without materializing adjacency lists.
//
// What:
//
//   - Grid wraps an H×W [][]float64 weight matrix. Vertex (i,j) has index
//     v = i*W + j; Index and Coord convert between the two.
//   - The weight of an edge s→d is the weight of vertex d.
//   - Three variants share the same storage and differ only in the neighbor rule:
//     – KindDense (NewDense): all grid-adjacent cells, contains cycles.
//     – KindAcyclic (NewAcyclic): right, bottom and bottom-right only, so
//     ascending index is a topological order.
//     – KindSparse (NewSparse): like Dense, restricted to pairs of active cells.
//   - Neighbors are enumerated in ascending index order via AppendOutArcs /
//     AppendInArcs, which reuse a caller buffer.
//   - GonumView adapts a Grid to gonum's graph.WeightedDirected; EdgeWeights
//     materializes an explicit simple.WeightedDirectedGraph.
//
// Why:
//
//   - Path planning over cost maps, image cost analysis, seam carving:
//     large regular grids where explicit edge storage is wasteful.
//
// Complexity:
//
//   - Index, Coord, Weight, WeightAt, HasEdge, AppendOutArcs: O(1).
//   - HasNegativeWeights, Components: O(W×H×d), d = 4 or 8.
//   - NumEdges: O(1); for sparse grids the count is computed at construction.
//   - EdgeWeights: O(W×H + E).
//
// Options:
//
//   - WithConnectivity(Conn8) (default) or WithConnectivity(Conn4).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMaskShape: active mask shape differs from the weights.
//   - ErrNaNWeight: a weight is NaN.
//   - ErrOutOfBounds: coordinate or vertex index outside the grid.
//
// IsAcyclic reports the construction guarantee of the variant. It is not a
// cycle scan: a dense grid is reported cyclic even when all its weights make
// cycles irrelevant.
package gridgraph
