package gridfile_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpaths/dijkstra"
	"github.com/katalvlaran/gridpaths/gridfile"
	"github.com/katalvlaran/gridpaths/gridgraph"
	"github.com/katalvlaran/gridpaths/spt"
)

func TestLoadGrid_Fixtures(t *testing.T) {
	cases := []struct {
		file  string
		kind  gridgraph.Kind
		conn  gridgraph.Connectivity
		h, w  int
		edges int
	}{
		{"dense.yaml", gridgraph.KindDense, gridgraph.Conn8, 3, 3, 40},
		{"acyclic.yaml", gridgraph.KindAcyclic, gridgraph.Conn4, 3, 3, 12},
		{"sparse.yaml", gridgraph.KindSparse, gridgraph.Conn8, 3, 4, 20},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			g, err := gridfile.LoadGrid(filepath.Join("testdata", tc.file))
			require.NoError(t, err)
			require.Equal(t, tc.kind, g.Kind())
			require.Equal(t, tc.conn, g.Connectivity())
			require.Equal(t, tc.h, g.Height())
			require.Equal(t, tc.w, g.Width())
			require.Equal(t, tc.edges, g.NumEdges())
		})
	}
}

// TestSparseFixture_InfWeight checks that .inf decodes to +Inf and that the
// inactive row only leaves the right-hand column as a bridge.
func TestSparseFixture_InfWeight(t *testing.T) {
	g, err := gridfile.LoadGrid(filepath.Join("testdata", "sparse.yaml"))
	require.NoError(t, err)

	w, err := g.WeightAt(1, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(w, 1))

	p, d, err := dijkstra.ShortestPath(g, 0, 8)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 7, 10, 9, 8}, p)
	require.Equal(t, 7.0, d)
}

func TestLoad_Errors(t *testing.T) {
	_, err := gridfile.LoadGrid(filepath.Join("testdata", "bad_kind.yaml"))
	require.ErrorIs(t, err, gridfile.ErrUnknownKind)
	require.Contains(t, err.Error(), "bad_kind.yaml")

	_, err = gridfile.Load(filepath.Join("testdata", "unknown_field.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "weight")

	_, err = gridfile.Load(filepath.Join("testdata", "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"Connectivity", "connectivity: 6\nweights: [[1]]\n", gridfile.ErrBadConnectivity},
		{"MaskOnDense", "weights: [[1]]\nactive: [[true]]\n", gridfile.ErrUnexpectedMask},
		{"SparseNoMask", "kind: sparse\nweights: [[1]]\n", gridgraph.ErrMaskShape},
		{"Ragged", "weights: [[1, 2], [3]]\n", gridgraph.ErrNonRectangular},
		{"Empty", "kind: acyclic\nweights: []\n", gridgraph.ErrEmptyGrid},
		{"NaN", "weights: [[1, .nan]]\n", gridgraph.ErrNaNWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := gridfile.Decode(strings.NewReader(tc.doc))
			require.NoError(t, err)
			_, err = f.Build()
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDecode_KindDefaultsAndCase(t *testing.T) {
	f, err := gridfile.Decode(strings.NewReader("weights: [[1, 2]]\n"))
	require.NoError(t, err)
	g, err := f.Build()
	require.NoError(t, err)
	require.Equal(t, gridgraph.KindDense, g.Kind())
	require.Equal(t, gridgraph.Conn8, g.Connectivity())

	f, err = gridfile.Decode(strings.NewReader("kind: Acyclic\nweights: [[1, 2]]\n"))
	require.NoError(t, err)
	g, err = f.Build()
	require.NoError(t, err)
	require.Equal(t, gridgraph.KindAcyclic, g.Kind())
}

// TestEncode_PreservesGrid writes a grid out and reads it back.
func TestEncode_PreservesGrid(t *testing.T) {
	orig, err := gridgraph.NewSparse(
		[][]float64{{1, math.Inf(1)}, {-2, 0.5}},
		[][]bool{{true, false}, {true, true}},
		gridgraph.WithConnectivity(gridgraph.Conn4),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gridfile.FromGrid(orig).Encode(&buf))
	require.Contains(t, buf.String(), ".inf")

	f, err := gridfile.Decode(&buf)
	require.NoError(t, err)
	got, err := f.Build()
	require.NoError(t, err)
	require.Equal(t, orig.String(), got.String())
	require.Equal(t, orig.Weights(), got.Weights())
	require.Equal(t, orig.Active(), got.Active())
}

func TestFixture_PathMatrix(t *testing.T) {
	g, err := gridfile.LoadGrid(filepath.Join("testdata", "dense.yaml"))
	require.NoError(t, err)

	p, _, err := dijkstra.ShortestPath(g, 3, 5)
	require.NoError(t, err)
	m, err := spt.PathToMatrix(g, p)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 0, 0}}, m)
}
