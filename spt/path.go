package spt

import (
	"fmt"

	"github.com/katalvlaran/gridpaths/gridgraph"
)

// GetPath reconstructs the s→d vertex sequence from t, source first.
//
// Behavior:
//  1. s must equal t.Source (ErrSourceMismatch) and d must be a vertex of
//     the tree (ErrVertexOutOfRange).
//  2. An infinite Dists[d] yields ErrUnreachable.
//  3. Parent pointers are followed from d; the walk is bounded by V steps.
//     Exceeding the bound, or hitting NoParent before s, yields ErrCorruptTree.
//
// Complexity: O(path length) time, bounded by O(V).
func GetPath(t *Tree, s, d int) ([]int, error) {
	if s != t.Source {
		return nil, fmt.Errorf("GetPath(%d,%d): tree source %d: %w", s, d, t.Source, ErrSourceMismatch)
	}
	n := t.Len()
	if d < 0 || d >= n {
		return nil, fmt.Errorf("GetPath(%d,%d): %w", s, d, ErrVertexOutOfRange)
	}
	if !t.Reached(d) {
		return nil, fmt.Errorf("GetPath(%d,%d): %w", s, d, ErrUnreachable)
	}

	path := []int{d}
	for at := d; at != s; {
		if len(path) > n {
			return nil, fmt.Errorf("GetPath(%d,%d): walk exceeded %d steps: %w", s, d, n, ErrCorruptTree)
		}
		at = t.Parents[at]
		if at < 0 || at >= n {
			return nil, fmt.Errorf("GetPath(%d,%d): parent %d: %w", s, d, at, ErrCorruptTree)
		}
		path = append(path, at)
	}
	// Reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathTo is GetPath(t, t.Source, d).
func (t *Tree) PathTo(d int) ([]int, error) {
	return GetPath(t, t.Source, d)
}

// PathToMatrix projects a vertex sequence onto an H×W integer matrix where
// entry (i,j) counts how many times the path visits vertex (i,j). Repeated
// vertices are counted once per occurrence, so walks are supported.
// The entries sum to len(path). A vertex outside g yields a wrapped
// gridgraph.ErrOutOfBounds.
// Complexity: O(H×W + len(path)).
func PathToMatrix(g gridgraph.Shape, path []int) ([][]int, error) {
	h, w := g.Height(), g.Width()
	counts := make([][]int, h)
	for i := range counts {
		counts[i] = make([]int, w)
	}
	for k, v := range path {
		i, j, err := g.Coord(v)
		if err != nil {
			return nil, fmt.Errorf("PathToMatrix: step %d: %w", k, err)
		}
		counts[i][j]++
	}

	return counts, nil
}
