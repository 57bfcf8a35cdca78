package gridgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/gridpaths/gridgraph"
)

// GonumSuite exercises the gonum collaborator contract of GonumView.
type GonumSuite struct {
	suite.Suite
	dense   *gridgraph.Grid
	acyclic *gridgraph.Grid
	sparse  *gridgraph.Grid
}

func (s *GonumSuite) SetupTest() {
	w := [][]float64{{1, 2, 3}, {4, 5, 6}}
	var err error
	s.dense, err = gridgraph.NewDense(w)
	require.NoError(s.T(), err)
	s.acyclic, err = gridgraph.NewAcyclic(w)
	require.NoError(s.T(), err)
	s.sparse, err = gridgraph.NewSparse(w, [][]bool{{true, true, false}, {true, false, true}})
	require.NoError(s.T(), err)
}

// TestNodes verifies every vertex is a node and out-of-range IDs are not.
func (s *GonumSuite) TestNodes() {
	gv := s.dense.Gonum()
	require.Equal(s.T(), 6, gv.Nodes().Len())
	require.NotNil(s.T(), gv.Node(5))
	require.Nil(s.T(), gv.Node(6))
	require.Nil(s.T(), gv.Node(-1))
}

// TestFromTo compares gonum iteration with the native enumeration.
func (s *GonumSuite) TestFromTo() {
	for _, g := range []*gridgraph.Grid{s.dense, s.acyclic, s.sparse} {
		gv := g.Gonum()
		for v := 0; v < g.NumVertices(); v++ {
			require.Equal(s.T(), g.OutNeighbors(v), ids(gv.From(int64(v))), "%v From(%d)", g, v)
			require.Equal(s.T(), g.InNeighbors(v), ids(gv.To(int64(v))), "%v To(%d)", g, v)
		}
		require.Equal(s.T(), 0, gv.From(99).Len())
	}
}

// TestWeight checks the destination-weight convention and gonum's self/absent rules.
func (s *GonumSuite) TestWeight() {
	gv := s.dense.Gonum()
	w, ok := gv.Weight(0, 4)
	require.True(s.T(), ok)
	require.Equal(s.T(), 5.0, w)

	w, ok = gv.Weight(4, 0)
	require.True(s.T(), ok)
	require.Equal(s.T(), 1.0, w)

	w, ok = gv.Weight(3, 3)
	require.True(s.T(), ok)
	require.Equal(s.T(), 0.0, w)

	w, ok = gv.Weight(0, 5)
	require.False(s.T(), ok)
	require.True(s.T(), math.IsInf(w, 1))

	require.Nil(s.T(), gv.Edge(0, 5))
	e := gv.WeightedEdge(1, 2)
	require.NotNil(s.T(), e)
	require.Equal(s.T(), int64(1), e.From().ID())
	require.Equal(s.T(), int64(2), e.To().ID())
	require.Equal(s.T(), 3.0, e.Weight())
}

// TestHasEdge checks directed vs undirected existence on the acyclic grid.
func (s *GonumSuite) TestHasEdge() {
	gv := s.acyclic.Gonum()
	require.True(s.T(), gv.HasEdgeFromTo(0, 1))
	require.False(s.T(), gv.HasEdgeFromTo(1, 0))
	require.True(s.T(), gv.HasEdgeBetween(1, 0))
	require.False(s.T(), gv.HasEdgeBetween(0, 5))
}

// TestTopoSort runs gonum's topological sort through the view: it succeeds
// on the acyclic variant and reports cycles on the dense one.
func (s *GonumSuite) TestTopoSort() {
	order, err := topo.Sort(s.acyclic.Gonum())
	require.NoError(s.T(), err)
	require.Len(s.T(), order, 6)

	_, err = topo.Sort(s.dense.Gonum())
	require.Error(s.T(), err)
}

// TestEdgeWeights checks the materialized structure against the implicit one.
func (s *GonumSuite) TestEdgeWeights() {
	for _, g := range []*gridgraph.Grid{s.dense, s.acyclic, s.sparse} {
		m := g.EdgeWeights()
		require.Equal(s.T(), g.NumVertices(), m.Nodes().Len())
		require.Equal(s.T(), g.NumEdges(), m.WeightedEdges().Len(), "%v", g)
		for u := 0; u < g.NumVertices(); u++ {
			for v := 0; v < g.NumVertices(); v++ {
				want, wantOK := g.Gonum().Weight(int64(u), int64(v))
				got, gotOK := m.Weight(int64(u), int64(v))
				require.Equal(s.T(), wantOK, gotOK, "%v (%d,%d)", g, u, v)
				require.Equal(s.T(), want, got, "%v (%d,%d)", g, u, v)
			}
		}
	}
}

func TestGonumSuite(t *testing.T) {
	suite.Run(t, new(GonumSuite))
}

func ids(it graph.Nodes) []int {
	out := make([]int, 0, it.Len())
	for it.Next() {
		out = append(out, int(it.Node().ID()))
	}
	return out
}
