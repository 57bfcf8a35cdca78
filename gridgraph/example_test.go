// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpaths/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: neighbor enumeration
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_AppendOutArcs shows the implicit adjacency of the three variants
// around the center cell of a 3×3 grid. Each arc carries the weight of its
// destination cell.
func ExampleGrid_AppendOutArcs() {
	weights := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	dense, _ := gridgraph.NewDense(weights)
	acyclic, _ := gridgraph.NewAcyclic(weights)
	sparse, _ := gridgraph.NewSparse(weights, [][]bool{
		{true, false, true},
		{true, true, true},
		{false, false, true},
	})

	center, _ := dense.Index(1, 1)
	for _, g := range []*gridgraph.Grid{dense, acyclic, sparse} {
		fmt.Printf("%-8s", g.Kind())
		for _, a := range g.AppendOutArcs(nil, center) {
			fmt.Printf(" %d(w=%g)", a.Neighbor, a.Weight)
		}
		fmt.Println()
	}

	// Output:
	// dense    0(w=1) 1(w=2) 2(w=3) 3(w=4) 5(w=6) 6(w=7) 7(w=8) 8(w=9)
	// acyclic  5(w=6) 7(w=8) 8(w=9)
	// sparse   0(w=1) 2(w=3) 3(w=4) 5(w=6) 8(w=9)
}

////////////////////////////////////////////////////////////////////////////////
// Example: coordinates
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Coord converts between (row, column) and vertex index.
func ExampleGrid_Coord() {
	g, _ := gridgraph.NewDense([][]float64{{0, 0, 0, 0}, {0, 0, 0, 0}})
	v, _ := g.Index(1, 2)
	i, j, _ := g.Coord(v)
	fmt.Println(v, i, j)

	_, err := g.Index(2, 0)
	fmt.Println(err)

	// Output:
	// 6 1 2
	// Grid.Index(2,0): gridgraph: coordinate or index out of bounds
}
