// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridpaths.
package gridgraph

// Kind tags the implicit adjacency policy of a Grid.
type Kind int

const (
	// KindDense connects every cell to all grid-adjacent cells. Contains cycles.
	KindDense Kind = iota
	// KindAcyclic connects a cell only to cells with a strictly greater
	// row and/or column (right, bottom, bottom-right).
	KindAcyclic
	// KindSparse behaves like KindDense, restricted to pairs of active cells.
	KindSparse
)

// String returns the lower-case variant name.
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindAcyclic:
		return "acyclic"
	case KindSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4
)

// Arc is one traversable step out of (or into) a vertex.
// Weight is always the weight of the edge's destination vertex.
type Arc struct {
	Neighbor int     // vertex at the other end of the edge
	Weight   float64 // edge weight
}

// Graph is the read-only view consumed by the shortest-path algorithms.
// *Grid implements it.
type Graph interface {
	// NumVertices returns H·W.
	NumVertices() int
	// NumEdges returns the number of directed edges.
	NumEdges() int
	// AppendOutArcs appends the out-arcs of v to dst in ascending
	// neighbor index order and returns the extended slice.
	AppendOutArcs(dst []Arc, v int) []Arc
	// HasNegativeWeights reports whether any vertex weight is < 0.
	HasNegativeWeights() bool
	// IsAcyclic reports the construction-time acyclicity guarantee.
	IsAcyclic() bool
}

// Shape is the minimal coordinate surface needed to project vertex
// sequences back onto the grid.
type Shape interface {
	Height() int
	Width() int
	Coord(v int) (i, j int, err error)
}

// Options holds construction parameters shared by all variants.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity. Default Conn8.
	Conn Connectivity
}

// Option configures grid construction.
type Option func(*Options)

// DefaultOptions returns Options with Conn=Conn8.
func DefaultOptions() Options {
	return Options{Conn: Conn8}
}

// WithConnectivity selects the neighbor connectivity.
// Panics on values other than Conn4 and Conn8.
func WithConnectivity(c Connectivity) Option {
	if c != Conn4 && c != Conn8 {
		panic(ErrBadConnectivity.Error())
	}
	return func(o *Options) {
		o.Conn = c
	}
}
