// Package gridpaths is an in-memory toolkit for implicit rectangular grid
// graphs and single-source shortest-path trees over them.
//
// What is gridpaths?
//
//	A small library that brings together:
//		• Grid graphs: Dense (8/4-neighbor), Acyclic (right/down/diagonal)
//		  and Sparse (masked) variants over one weight matrix, with
//		  allocation-free neighbor enumeration
//		• Shortest paths: Dijkstra (decrease-key or naive, caller-supplied
//		  queue), Bellman–Ford sweeps, topological-order DP
//		• Path services: parent-chain reconstruction and visit matrices
//		• Interop: a gonum graph view for cross-checking with gonum/graph
//
// Why choose gridpaths?
//
//   - No adjacency lists: a vertex's arcs are computed from its cell.
//   - One result shape (spt.Tree) for every algorithm.
//   - Preconditions are opt-in checks, so hot loops stay lean.
//
// Everything is organized under these subpackages:
//
//	gridgraph/   : coordinate mapping, weight store, variants, neighbor enumeration
//	spt/         : shortest-path tree, GetPath, PathToMatrix
//	pqueue/      : priority queues: IndexedHeap, Heap, BTree
//	dijkstra/    : priority-relaxation
//	bellmanford/ : full edge-relaxation sweeps (negative weights)
//	dagsp/       : rank-ordered DP for acyclic grids
//	gridfile/    : YAML grid fixtures
//	cmd/gridpaths/ : command line front end
//
// Quick ASCII example, an acyclic 3×3 grid (arcs point right, down and
// down-right; each arc costs the weight of the cell it enters):
//
//	    0 → 1 → 2
//	    ↓ ↘ ↓ ↘ ↓
//	    3 → 4 → 5
//	    ↓ ↘ ↓ ↘ ↓
//	    6 → 7 → 8
//
//	go get github.com/katalvlaran/gridpaths
package gridpaths
