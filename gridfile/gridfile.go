// Package gridfile reads and writes grid fixtures as YAML documents.
//
// A fixture names the variant, the connectivity and the weight matrix, plus
// the active mask for sparse grids:
//
//	kind: sparse          # dense (default) | acyclic | sparse
//	connectivity: 4       # 8 (default) | 4
//	weights:
//	  - [1, 2, .inf]
//	  - [4, 5, 6]
//	active:
//	  - [true, true, false]
//	  - [true, false, true]
//
// Unknown keys are rejected. YAML's .inf is accepted as an impassable weight;
// .nan fails at Build with gridgraph.ErrNaNWeight.
package gridfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpaths/gridgraph"
)

// Sentinel errors for fixture decoding.
var (
	// ErrUnknownKind indicates a kind other than dense, acyclic or sparse.
	ErrUnknownKind = errors.New("gridfile: unknown grid kind")

	// ErrBadConnectivity indicates a connectivity other than 4 or 8.
	ErrBadConnectivity = errors.New("gridfile: connectivity must be 4 or 8")

	// ErrUnexpectedMask indicates an active mask on a dense or acyclic grid.
	ErrUnexpectedMask = errors.New("gridfile: active mask is only valid for sparse grids")
)

// File is the decoded form of a fixture.
type File struct {
	Kind         string      `yaml:"kind,omitempty"`
	Connectivity int         `yaml:"connectivity,omitempty"`
	Weights      [][]float64 `yaml:"weights"`
	Active       [][]bool    `yaml:"active,omitempty"`
}

// Decode reads one fixture document from r.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("gridfile: decode: %w", err)
	}
	return &f, nil
}

// Load decodes the fixture stored at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: load: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadGrid is Load followed by Build.
func LoadGrid(path string) (*gridgraph.Grid, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	g, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// kind parses f.Kind; an empty kind means dense.
func (f *File) kind() (gridgraph.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(f.Kind)) {
	case "", "dense":
		return gridgraph.KindDense, nil
	case "acyclic":
		return gridgraph.KindAcyclic, nil
	case "sparse":
		return gridgraph.KindSparse, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
	}
}

// connectivity parses f.Connectivity; zero means 8.
func (f *File) connectivity() (gridgraph.Connectivity, error) {
	switch f.Connectivity {
	case 0, 8:
		return gridgraph.Conn8, nil
	case 4:
		return gridgraph.Conn4, nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrBadConnectivity, f.Connectivity)
	}
}

// Build constructs the grid described by f. Construction errors from
// gridgraph (ErrEmptyGrid, ErrNonRectangular, ErrMaskShape, ErrNaNWeight)
// are returned as is.
func (f *File) Build() (*gridgraph.Grid, error) {
	kind, err := f.kind()
	if err != nil {
		return nil, err
	}
	conn, err := f.connectivity()
	if err != nil {
		return nil, err
	}
	if kind != gridgraph.KindSparse && f.Active != nil {
		return nil, fmt.Errorf("%w: kind %s", ErrUnexpectedMask, kind)
	}

	opt := gridgraph.WithConnectivity(conn)
	switch kind {
	case gridgraph.KindAcyclic:
		return gridgraph.NewAcyclic(f.Weights, opt)
	case gridgraph.KindSparse:
		return gridgraph.NewSparse(f.Weights, f.Active, opt)
	default:
		return gridgraph.NewDense(f.Weights, opt)
	}
}

// FromGrid describes g as a fixture.
func FromGrid(g *gridgraph.Grid) *File {
	conn := 8
	if g.Connectivity() == gridgraph.Conn4 {
		conn = 4
	}
	return &File{
		Kind:         g.Kind().String(),
		Connectivity: conn,
		Weights:      g.Weights(),
		Active:       g.Active(),
	}
}

// Encode writes f as a YAML document to w.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("gridfile: encode: %w", err)
	}
	return enc.Close()
}
