package gridgraph

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxIndex    = "Index"
	ctxCoord    = "Coord"
	ctxWeight   = "Weight"
	ctxWeightAt = "WeightAt"
)

// coordErrorf wraps err with the method tag and the offending coordinates.
func coordErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, i, j, err)
}

// vertexErrorf wraps err with the method tag and the offending vertex index.
func vertexErrorf(method string, v int, err error) error {
	return fmt.Errorf("Grid.%s(%d): %w", method, v, err)
}

// Grid treats an H×W matrix of vertex weights as a directed graph.
// It is immutable once built; all accessors are safe for concurrent reads.
//
// weights and active are flat row-major buffers (offset = i*w + j).
// out and in hold the candidate neighbor offsets of the variant, sorted so
// that enumerated neighbors come out in ascending vertex index.
type Grid struct {
	kind    Kind
	conn    Connectivity
	h, w    int
	weights []float64
	active  []bool // nil unless kind == KindSparse
	out     [][2]int
	in      [][2]int
	edges   int
}

// Neighbor offsets as (di, dj), listed in ascending row-major order.
var (
	offsets8 = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	offsets4 = [][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

	acyclicOut8 = [][2]int{{0, 1}, {1, 0}, {1, 1}}
	acyclicIn8  = [][2]int{{-1, -1}, {-1, 0}, {0, -1}}
	acyclicOut4 = [][2]int{{0, 1}, {1, 0}}
	acyclicIn4  = [][2]int{{-1, 0}, {0, -1}}
)

// NewDense builds a KindDense grid: every cell is linked to all in-bounds
// grid-adjacent cells (8 with Conn8, 4 with Conn4).
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNaNWeight on bad input.
// Complexity: O(H×W) time and memory.
func NewDense(weights [][]float64, opts ...Option) (*Grid, error) {
	return build(KindDense, weights, nil, opts)
}

// NewAcyclic builds a KindAcyclic grid: each cell is linked to its right,
// bottom and bottom-right neighbors only (right and bottom with Conn4), so
// ascending vertex index is a topological order.
// Complexity: O(H×W) time and memory.
func NewAcyclic(weights [][]float64, opts ...Option) (*Grid, error) {
	return build(KindAcyclic, weights, nil, opts)
}

// NewSparse builds a KindSparse grid. An edge exists between two adjacent
// cells only if both are active; inactive cells keep their index but have
// no incident edges. The directed edge count is computed once here.
// Weight errors take precedence; a nil or mis-shaped active mask then
// yields ErrMaskShape.
// Complexity: O(H×W) time and memory.
func NewSparse(weights [][]float64, active [][]bool, opts ...Option) (*Grid, error) {
	return build(KindSparse, weights, active, opts)
}

// build validates and deep-copies the inputs, then fixes the offset tables.
func build(kind Kind, weights [][]float64, active [][]bool, opts []Option) (*Grid, error) {
	if len(weights) == 0 || len(weights[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(weights), len(weights[0])
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	flat := make([]float64, 0, h*w)
	for i, row := range weights {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for j, x := range row {
			if math.IsNaN(x) {
				return nil, coordErrorf(ctxWeightAt, i, j, ErrNaNWeight)
			}
		}
		flat = append(flat, row...)
	}

	g := &Grid{kind: kind, conn: cfg.Conn, h: h, w: w, weights: flat}
	switch {
	case kind == KindAcyclic && cfg.Conn == Conn8:
		g.out, g.in = acyclicOut8, acyclicIn8
	case kind == KindAcyclic:
		g.out, g.in = acyclicOut4, acyclicIn4
	case cfg.Conn == Conn8:
		g.out, g.in = offsets8, offsets8
	default:
		g.out, g.in = offsets4, offsets4
	}

	if kind == KindSparse {
		if len(active) != h {
			return nil, ErrMaskShape
		}
		g.active = make([]bool, 0, h*w)
		for _, row := range active {
			if len(row) != w {
				return nil, ErrMaskShape
			}
			g.active = append(g.active, row...)
		}
		g.edges = g.countEdges()
	} else {
		g.edges = g.closedFormEdges()
	}

	return g, nil
}

// closedFormEdges returns the directed edge count of a mask-free grid.
func (g *Grid) closedFormEdges() int {
	horiz := g.h * (g.w - 1)
	vert := (g.h - 1) * g.w
	diag := (g.h - 1) * (g.w - 1)
	var undirected int
	if g.conn == Conn8 {
		undirected = horiz + vert + 2*diag
	} else {
		undirected = horiz + vert
	}
	if g.kind == KindAcyclic {
		if g.conn == Conn8 {
			return horiz + vert + diag
		}
		return horiz + vert
	}
	return 2 * undirected
}

// countEdges sums out-degrees over every vertex.
func (g *Grid) countEdges() int {
	total := 0
	for v := 0; v < g.h*g.w; v++ {
		total += g.outDegree(v)
	}
	return total
}

// Kind returns the adjacency policy tag.
func (g *Grid) Kind() Kind { return g.kind }

// Connectivity returns Conn4 or Conn8.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// NumVertices returns H·W. Inactive cells of a sparse grid are counted.
func (g *Grid) NumVertices() int { return g.h * g.w }

// NumEdges returns the number of directed edges.
// Complexity: O(1).
func (g *Grid) NumEdges() int { return g.edges }

// IsAcyclic reports whether the variant guarantees acyclicity by
// construction (true only for KindAcyclic). It does not scan for cycles.
func (g *Grid) IsAcyclic() bool { return g.kind == KindAcyclic }

// InBounds reports whether (i,j) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.h && j >= 0 && j < g.w
}

// validVertex reports whether v is a vertex index of g.
func (g *Grid) validVertex(v int) bool {
	return v >= 0 && v < g.h*g.w
}

// Index maps (i,j) to the row-major vertex index i*W + j.
// Returns ErrOutOfBounds outside the grid.
// Complexity: O(1).
func (g *Grid) Index(i, j int) (int, error) {
	if !g.InBounds(i, j) {
		return 0, coordErrorf(ctxIndex, i, j, ErrOutOfBounds)
	}
	return i*g.w + j, nil
}

// Coord converts a vertex index back to (i,j).
// Returns ErrOutOfBounds if v ∉ [0, H·W).
// Complexity: O(1).
func (g *Grid) Coord(v int) (i, j int, err error) {
	if !g.validVertex(v) {
		return 0, 0, vertexErrorf(ctxCoord, v, ErrOutOfBounds)
	}
	return v / g.w, v % g.w, nil
}

// Weight returns the weight of vertex v.
func (g *Grid) Weight(v int) (float64, error) {
	if !g.validVertex(v) {
		return 0, vertexErrorf(ctxWeight, v, ErrOutOfBounds)
	}
	return g.weights[v], nil
}

// WeightAt returns the weight of the cell at (i,j).
func (g *Grid) WeightAt(i, j int) (float64, error) {
	if !g.InBounds(i, j) {
		return 0, coordErrorf(ctxWeightAt, i, j, ErrOutOfBounds)
	}
	return g.weights[i*g.w+j], nil
}

// HasNegativeWeights reports whether any stored weight is < 0.
// Complexity: O(H×W).
func (g *Grid) HasNegativeWeights() bool {
	for _, x := range g.weights {
		if x < 0 {
			return true
		}
	}
	return false
}

// IsActive reports whether v participates in edges. Always true for
// non-sparse grids; false for out-of-range v.
func (g *Grid) IsActive(v int) bool {
	if !g.validVertex(v) {
		return false
	}
	return g.active == nil || g.active[v]
}

// Weights returns a deep copy of the weight matrix.
func (g *Grid) Weights() [][]float64 {
	out := make([][]float64, g.h)
	for i := range out {
		out[i] = make([]float64, g.w)
		copy(out[i], g.weights[i*g.w:(i+1)*g.w])
	}
	return out
}

// Active returns a deep copy of the active mask, or nil for non-sparse grids.
func (g *Grid) Active() [][]bool {
	if g.active == nil {
		return nil
	}
	out := make([][]bool, g.h)
	for i := range out {
		out[i] = make([]bool, g.w)
		copy(out[i], g.active[i*g.w:(i+1)*g.w])
	}
	return out
}

// String returns a short human-readable description.
func (g *Grid) String() string {
	conn := 8
	if g.conn == Conn4 {
		conn = 4
	}
	return fmt.Sprintf("%s grid %dx%d conn%d edges=%d", g.kind, g.h, g.w, conn, g.edges)
}

// Compile-time assertions.
var (
	_ Graph = (*Grid)(nil)
	_ Shape = (*Grid)(nil)
)
