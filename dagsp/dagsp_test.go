package dagsp_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpaths/bellmanford"
	"github.com/katalvlaran/gridpaths/dagsp"
	"github.com/katalvlaran/gridpaths/dijkstra"
	"github.com/katalvlaran/gridpaths/gridgraph"
	"github.com/katalvlaran/gridpaths/spt"
)

func weights(seed int64, h, w, lo, hi int) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	out := make([][]float64, h)
	for i := range out {
		out[i] = make([]float64, w)
		for j := range out[i] {
			out[i][j] = float64(lo + r.Intn(hi-lo+1))
		}
	}
	return out
}

// AcyclicSuite compares the sweep against the other algorithms on acyclic grids.
type AcyclicSuite struct {
	suite.Suite
	grids []*gridgraph.Grid
}

func (s *AcyclicSuite) SetupTest() {
	s.grids = nil
	for seed := int64(1); seed <= 3; seed++ {
		for _, c := range []gridgraph.Connectivity{gridgraph.Conn8, gridgraph.Conn4} {
			g, err := gridgraph.NewAcyclic(weights(seed, 9, 7, 1, 9), gridgraph.WithConnectivity(c))
			require.NoError(s.T(), err)
			s.grids = append(s.grids, g)
		}
	}
}

// TestMatchesDijkstra checks identical distances and parents against both
// dijkstra modes.
func (s *AcyclicSuite) TestMatchesDijkstra() {
	for _, g := range s.grids {
		for _, src := range []int{0, 10, 33, g.NumVertices() - 1} {
			got, err := dagsp.Shortest(g, src, dagsp.WithRequireAcyclic(), dagsp.WithOrderCheck())
			require.NoError(s.T(), err)

			dk, err := dijkstra.Dijkstra(g, src)
			require.NoError(s.T(), err)
			require.Equal(s.T(), dk, got, "%v from %d (decrease-key)", g, src)

			nv, err := dijkstra.Dijkstra(g, src, dijkstra.WithNaive())
			require.NoError(s.T(), err)
			require.Equal(s.T(), nv, got, "%v from %d (naive)", g, src)
		}
	}
}

// TestNegativeWeights checks distances against bellmanford when weights may
// be negative.
func (s *AcyclicSuite) TestNegativeWeights() {
	for seed := int64(1); seed <= 3; seed++ {
		g, err := gridgraph.NewAcyclic(weights(seed, 8, 8, -5, 5))
		require.NoError(s.T(), err)
		for _, src := range []int{0, 9, 40} {
			got, err := dagsp.Shortest(g, src)
			require.NoError(s.T(), err)
			ref, err := bellmanford.BellmanFord(g, src)
			require.NoError(s.T(), err)
			require.Equal(s.T(), ref.Dists, got.Dists, "%v from %d", g, src)
		}
	}
}

// TestLowerIndicesUnreached checks that nothing before the source is reached.
func (s *AcyclicSuite) TestLowerIndicesUnreached() {
	g := s.grids[0]
	tree, err := dagsp.Shortest(g, 20)
	require.NoError(s.T(), err)
	for v := 0; v < 20; v++ {
		require.False(s.T(), tree.Reached(v))
		require.Equal(s.T(), spt.NoParent, tree.Parents[v])
	}
}

func TestAcyclicSuite(t *testing.T) {
	suite.Run(t, new(AcyclicSuite))
}

func TestShortest_Validation(t *testing.T) {
	_, err := dagsp.Shortest(nil, 0)
	require.ErrorIs(t, err, dagsp.ErrNilGraph)
	require.ErrorIs(t, dagsp.CheckOrder(nil), dagsp.ErrNilGraph)

	g, err := gridgraph.NewAcyclic(weights(1, 2, 2, 1, 1))
	require.NoError(t, err)
	_, err = dagsp.Shortest(g, 4)
	require.ErrorIs(t, err, dagsp.ErrSourceOutOfRange)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

// TestShortest_OrderViolation shows the silent failure on a dense grid and
// the opt-in checks that catch it.
func TestShortest_OrderViolation(t *testing.T) {
	g, err := gridgraph.NewDense([][]float64{{1, 1, 1}})
	require.NoError(t, err)

	tree, err := dagsp.Shortest(g, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, tree.Dists[1])
	require.True(t, math.IsInf(tree.Dists[0], 1), "0 is never swept from")

	_, err = dagsp.Shortest(g, 2, dagsp.WithRequireAcyclic())
	require.ErrorIs(t, err, dagsp.ErrNotAcyclic)

	_, err = dagsp.Shortest(g, 2, dagsp.WithOrderCheck())
	require.ErrorIs(t, err, dagsp.ErrNotTopological)
	require.EqualError(t, err, "dagsp: ascending vertex index is not a topological order: arc 1→0")
}

// TestCheckOrder covers each variant under both connectivities.
func TestCheckOrder(t *testing.T) {
	w := weights(2, 3, 4, 1, 9)
	mask := [][]bool{
		{true, false, true, true},
		{false, true, true, false},
		{true, true, false, true},
	}
	for _, c := range []gridgraph.Connectivity{gridgraph.Conn8, gridgraph.Conn4} {
		opt := gridgraph.WithConnectivity(c)
		a, err := gridgraph.NewAcyclic(w, opt)
		require.NoError(t, err)
		require.NoError(t, dagsp.CheckOrder(a))

		d, err := gridgraph.NewDense(w, opt)
		require.NoError(t, err)
		require.ErrorIs(t, dagsp.CheckOrder(d), dagsp.ErrNotTopological)

		s, err := gridgraph.NewSparse(w, mask, opt)
		require.NoError(t, err)
		require.ErrorIs(t, dagsp.CheckOrder(s), dagsp.ErrNotTopological)
	}

	// A dense grid without arcs passes the scan but not the static flag.
	single, err := gridgraph.NewDense([][]float64{{3}})
	require.NoError(t, err)
	require.NoError(t, dagsp.CheckOrder(single))
	_, err = dagsp.Shortest(single, 0, dagsp.WithRequireAcyclic())
	require.ErrorIs(t, err, dagsp.ErrNotAcyclic)
}

func TestShortestPath(t *testing.T) {
	g, err := gridgraph.NewAcyclic([][]float64{
		{0, 2, 1},
		{2, 9, 1},
		{9, 9, 1},
	}, gridgraph.WithConnectivity(gridgraph.Conn4))
	require.NoError(t, err)

	p, d, err := dagsp.ShortestPath(g, 0, 8)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 5, 8}, p)
	require.Equal(t, 5.0, d)

	_, _, err = dagsp.ShortestPath(g, 4, 0)
	require.ErrorIs(t, err, spt.ErrUnreachable)
}

func TestStatsAndLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g, err := gridgraph.NewAcyclic(weights(5, 4, 4, 1, 3))
	require.NoError(t, err)

	var st dagsp.Stats
	_, err = dagsp.Shortest(g, 5, dagsp.WithStats(&st), dagsp.WithLogger(logger))
	require.NoError(t, err)
	// From (1,1) the reachable block is rows 1..3 × cols 1..3.
	require.Equal(t, 9, st.Processed)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "dagsp", entry.Data["module"])
	require.Equal(t, 9, entry.Data["processed"])
}

func TestWithCancelContext(t *testing.T) {
	g, err := gridgraph.NewAcyclic(weights(1, 3, 3, 1, 2))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tree, err := dagsp.Shortest(g, 0, dagsp.WithCancelContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, tree)
}
