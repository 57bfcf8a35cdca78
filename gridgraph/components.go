package gridgraph

// Components finds the weakly connected components of the cells that take
// part in edges: every cell of a dense or acyclic grid, the active cells of
// a sparse grid. Edge direction is ignored.
// Each component is a slice of vertex indices in BFS discovery order;
// components are listed in order of their smallest vertex.
//
// An inactive cell of a sparse grid belongs to no component. Two vertices in
// different components are mutually unreachable under every algorithm.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]int {
	total := g.h * g.w
	seen := make([]bool, total)
	var comps [][]int
	buf := make([]Arc, 0, 2*len(g.out))

	for v0 := 0; v0 < total; v0++ {
		if seen[v0] || !g.IsActive(v0) {
			continue
		}
		// BFS to collect component
		queue := []int{v0}
		seen[v0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			buf = g.AppendOutArcs(buf[:0], u)
			if g.kind == KindAcyclic {
				buf = g.AppendInArcs(buf, u)
			}
			for _, a := range buf {
				if !seen[a.Neighbor] {
					seen[a.Neighbor] = true
					queue = append(queue, a.Neighbor)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// ComponentOf returns a per-vertex component label as produced by
// Components, with -1 for cells outside every component.
func (g *Grid) ComponentOf() []int {
	labels := make([]int, g.h*g.w)
	for v := range labels {
		labels[v] = -1
	}
	for c, comp := range g.Components() {
		for _, v := range comp {
			labels[v] = c
		}
	}
	return labels
}
