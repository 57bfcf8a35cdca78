package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrMaskShape indicates the active mask does not match the weight matrix shape.
	ErrMaskShape = errors.New("gridgraph: active mask shape differs from weights")
	// ErrNaNWeight indicates a NaN vertex weight.
	ErrNaNWeight = errors.New("gridgraph: vertex weight is NaN")
	// ErrOutOfBounds indicates a coordinate or vertex index outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate or index out of bounds")
	// ErrBadConnectivity indicates a Connectivity value other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("gridgraph: connectivity must be Conn4 or Conn8")
)
