// Package spt defines the shortest-path tree shared by every algorithm of
// github.com/katalvlaran/gridpaths, and the path services built on it.
package spt

import (
	"errors"
	"math"
)

// NoParent marks the source and every unreached vertex in Tree.Parents.
const NoParent = -1

// Sentinel errors for path reconstruction.
var (
	// ErrUnreachable indicates the requested destination has infinite distance.
	ErrUnreachable = errors.New("spt: destination unreachable from source")

	// ErrCorruptTree indicates a parent-chain walk that did not reach the
	// source within V steps. It signals a malformed tree, never a normal outcome.
	ErrCorruptTree = errors.New("spt: parent chain does not lead back to source")

	// ErrSourceMismatch indicates a path request for a source other than the tree's.
	ErrSourceMismatch = errors.New("spt: source differs from tree source")

	// ErrVertexOutOfRange indicates a vertex index outside [0, V).
	ErrVertexOutOfRange = errors.New("spt: vertex index out of range")
)

// Tree is the result of a single-source shortest-path query from Source.
//
// Parents[v] is the predecessor of v on the best known Source→v path, or
// NoParent for the source itself and for unreached vertices.
// Dists[v] is the total path weight, or +Inf if v is unreached.
//
// A Tree is created once per algorithm invocation and owned by the caller;
// algorithms never keep a reference after returning it.
type Tree struct {
	Source  int
	Parents []int
	Dists   []float64
}

// New returns a tree over n vertices in its initial state:
// every parent NoParent, every distance +Inf except Dists[s] = 0.
// The caller guarantees 0 ≤ s < n.
// Complexity: O(n).
func New(n, s int) *Tree {
	t := &Tree{
		Source:  s,
		Parents: make([]int, n),
		Dists:   make([]float64, n),
	}
	inf := math.Inf(1)
	for v := 0; v < n; v++ {
		t.Parents[v] = NoParent
		t.Dists[v] = inf
	}
	t.Dists[s] = 0

	return t
}

// Len returns the number of vertices covered by the tree.
func (t *Tree) Len() int { return len(t.Dists) }

// Reached reports whether v has a finite distance.
// Out-of-range v is reported unreached.
func (t *Tree) Reached(v int) bool {
	return v >= 0 && v < len(t.Dists) && !math.IsInf(t.Dists[v], 1)
}

// Dist returns the distance of v, or +Inf when v is out of range.
func (t *Tree) Dist(v int) float64 {
	if v < 0 || v >= len(t.Dists) {
		return math.Inf(1)
	}
	return t.Dists[v]
}
