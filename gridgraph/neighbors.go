package gridgraph

// linked reports whether a step between the in-bounds cells u and n is
// allowed by the active mask.
func (g *Grid) linked(u, n int) bool {
	return g.active == nil || (g.active[u] && g.active[n])
}

// AppendOutArcs appends every out-arc of v to dst and returns the extended
// slice. Arcs come out in ascending neighbor index; each carries the weight
// of its destination. An out-of-range v appends nothing.
//
// Passing a reused buffer (dst[:0]) keeps enumeration allocation-free.
// Complexity: O(d), d ≤ 8.
func (g *Grid) AppendOutArcs(dst []Arc, v int) []Arc {
	if !g.validVertex(v) {
		return dst
	}
	i, j := v/g.w, v%g.w
	for _, d := range g.out {
		ni, nj := i+d[0], j+d[1]
		if !g.InBounds(ni, nj) {
			continue
		}
		n := ni*g.w + nj
		if !g.linked(v, n) {
			continue
		}
		dst = append(dst, Arc{Neighbor: n, Weight: g.weights[n]})
	}
	return dst
}

// AppendInArcs appends every in-arc of v to dst. Arc.Neighbor is the
// predecessor u and Arc.Weight is the weight of the edge u→v, that is the
// weight of v itself. Order is ascending predecessor index.
// Complexity: O(d), d ≤ 8.
func (g *Grid) AppendInArcs(dst []Arc, v int) []Arc {
	if !g.validVertex(v) {
		return dst
	}
	i, j := v/g.w, v%g.w
	wv := g.weights[v]
	for _, d := range g.in {
		pi, pj := i+d[0], j+d[1]
		if !g.InBounds(pi, pj) {
			continue
		}
		u := pi*g.w + pj
		if !g.linked(u, v) {
			continue
		}
		dst = append(dst, Arc{Neighbor: u, Weight: wv})
	}
	return dst
}

// OutNeighbors returns the out-neighbors of v in ascending index order.
func (g *Grid) OutNeighbors(v int) []int {
	return arcTargets(g.AppendOutArcs(make([]Arc, 0, len(g.out)), v))
}

// InNeighbors returns the in-neighbors of v in ascending index order.
func (g *Grid) InNeighbors(v int) []int {
	return arcTargets(g.AppendInArcs(make([]Arc, 0, len(g.in)), v))
}

func arcTargets(arcs []Arc) []int {
	out := make([]int, len(arcs))
	for k, a := range arcs {
		out[k] = a.Neighbor
	}
	return out
}

// outDegree counts out-arcs of v without allocating.
func (g *Grid) outDegree(v int) int {
	i, j := v/g.w, v%g.w
	deg := 0
	for _, d := range g.out {
		ni, nj := i+d[0], j+d[1]
		if g.InBounds(ni, nj) && g.linked(v, ni*g.w+nj) {
			deg++
		}
	}
	return deg
}

// HasEdge reports whether the directed edge s→d exists.
// Out-of-range endpoints yield false.
// Complexity: O(d).
func (g *Grid) HasEdge(s, d int) bool {
	if !g.validVertex(s) || !g.validVertex(d) || s == d {
		return false
	}
	si, sj := s/g.w, s%g.w
	di, dj := d/g.w-si, d%g.w-sj
	for _, o := range g.out {
		if o[0] == di && o[1] == dj {
			return g.linked(s, d)
		}
	}
	return false
}
