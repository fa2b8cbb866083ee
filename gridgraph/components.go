package gridgraph

// ConnectedComponents partitions the grid into weakly connected regions of
// wired edges (edge direction is ignored). Components are returned in order
// of their lowest NodeID; each component lists its members in BFS order.
//
// Under Diagonal adjacency a grid splits into the two parity classes of x+y,
// so cells of different parity never share a component.
//
// Time:   O(W·H·d), where d is the number of offsets.
// Memory: O(W·H) for visited flags, reverse edges and output.
func (g *Graph) ConnectedComponents() [][]NodeID {
	total := len(g.nodes)
	// reverse edges make directed wiring behave as undirected here
	reverse := make([][]NodeID, total)
	for i := range g.nodes {
		for _, n := range g.nodes[i].neighbors {
			reverse[n] = append(reverse[n], NodeID(i))
		}
	}

	seen := make([]bool, total)
	var comps [][]NodeID
	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		queue := []NodeID{NodeID(i0)}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, edges := range [2][]NodeID{g.nodes[u].neighbors, reverse[u]} {
				for _, v := range edges {
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Connected reports whether a and b lie in the same weakly connected component.
func (g *Graph) Connected(a, b NodeID) bool {
	if !g.valid(a) || !g.valid(b) {
		return false
	}
	for _, comp := range g.ConnectedComponents() {
		var hasA, hasB bool
		for _, id := range comp {
			hasA = hasA || id == a
			hasB = hasB || id == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}
	return false
}
