package gridgraph

import (
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"
)

// GonumView exposes a Grid through the gonum graph interfaces
// (graph.WeightedDirected), so generic gonum algorithms such as
// path.DijkstraFrom or topo.Sort consume the grid without conversion.
// Node IDs are vertex indices. The view allocates only per query.
type GonumView struct {
	g *Grid
}

// Compile-time assertions for the collaborator contract.
var (
	_ graph.Directed         = (*GonumView)(nil)
	_ graph.WeightedDirected = (*GonumView)(nil)
)

// Gonum returns a gonum view of g.
func (g *Grid) Gonum() *GonumView {
	return &GonumView{g: g}
}

func (gv *GonumView) valid(id int64) bool {
	return id >= 0 && id < int64(gv.g.NumVertices())
}

// Node returns the node with the given ID, or nil if it is not a vertex.
func (gv *GonumView) Node(id int64) graph.Node {
	if !gv.valid(id) {
		return nil
	}
	return simple.Node(id)
}

// Nodes returns all H·W vertices in ascending ID order.
func (gv *GonumView) Nodes() graph.Nodes {
	return iterator.NewImplicitNodes(0, gv.g.NumVertices(), func(id int) graph.Node {
		return simple.Node(id)
	})
}

// From returns the out-neighbors of id.
func (gv *GonumView) From(id int64) graph.Nodes {
	if !gv.valid(id) {
		return iterator.NewOrderedNodes(nil)
	}
	return arcNodes(gv.g.AppendOutArcs(nil, int(id)))
}

// To returns the in-neighbors of id.
func (gv *GonumView) To(id int64) graph.Nodes {
	if !gv.valid(id) {
		return iterator.NewOrderedNodes(nil)
	}
	return arcNodes(gv.g.AppendInArcs(nil, int(id)))
}

func arcNodes(arcs []Arc) graph.Nodes {
	nodes := make([]graph.Node, len(arcs))
	for k, a := range arcs {
		nodes[k] = simple.Node(a.Neighbor)
	}
	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether an edge exists in either direction.
func (gv *GonumView) HasEdgeBetween(xid, yid int64) bool {
	return gv.HasEdgeFromTo(xid, yid) || gv.HasEdgeFromTo(yid, xid)
}

// HasEdgeFromTo reports whether the directed edge u→v exists.
func (gv *GonumView) HasEdgeFromTo(uid, vid int64) bool {
	if !gv.valid(uid) || !gv.valid(vid) {
		return false
	}
	return gv.g.HasEdge(int(uid), int(vid))
}

// Edge returns the edge u→v, or nil if it does not exist.
func (gv *GonumView) Edge(uid, vid int64) graph.Edge {
	return gv.WeightedEdge(uid, vid)
}

// WeightedEdge returns the edge u→v carrying the weight of v,
// or nil if it does not exist.
func (gv *GonumView) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	if !gv.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return simple.WeightedEdge{F: simple.Node(uid), T: simple.Node(vid), W: gv.g.weights[vid]}
}

// Weight returns the weight of the edge x→y. Following gonum convention,
// x == y yields (0, true) and a missing edge yields (+Inf, false).
func (gv *GonumView) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid && gv.valid(xid) {
		return 0, true
	}
	if !gv.HasEdgeFromTo(xid, yid) {
		return math.Inf(1), false
	}
	return gv.g.weights[yid], true
}

// EdgeWeights materializes the implicit adjacency as an explicit sparse
// edge-weight structure for generic graph tooling: every vertex becomes a
// node and every edge s→d is stored with weight(d). Self weight is 0 and
// absent edges report +Inf. The shortest-path algorithms never call it.
// Complexity: O(V + E) time and memory.
func (g *Grid) EdgeWeights() *simple.WeightedDirectedGraph {
	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	n := g.NumVertices()
	for v := 0; v < n; v++ {
		out.AddNode(simple.Node(v))
	}
	buf := make([]Arc, 0, len(g.out))
	for v := 0; v < n; v++ {
		buf = g.AppendOutArcs(buf[:0], v)
		for _, a := range buf {
			out.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(v),
				T: simple.Node(a.Neighbor),
				W: a.Weight,
			})
		}
	}
	return out
}
