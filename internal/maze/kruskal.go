package maze

// BuildSpanningTree runs Kruskal's algorithm over the edges named by sorted,
// which must already be in ascending weight order. An edge whose endpoints
// lie in different sets is unblocked and the sets are merged; any other edge
// stays blocked. It returns the number of edges unblocked.
//
// On return every cell's Set holds the CellID of its set representative.
// The caller must pass an edge list that spans the grid; otherwise the pass
// still terminates but leaves more than one set.
func BuildSpanningTree(g *Grid, sorted []EdgeID) (int, error) {
	n := len(g.Cells)
	if n == 0 {
		return 0, nil
	}
	for _, id := range sorted {
		if id < 0 || int(id) >= len(g.Edges) {
			return 0, ErrInvalidEdge
		}
		e := g.Edges[id]
		if !g.Contains(e.Start) || !g.Contains(e.End) {
			return 0, ErrInvalidEdge
		}
	}

	sets := NewDisjointSet(n)
	opened := 0
	for _, id := range sorted {
		if opened == n-1 {
			break
		}
		e := &g.Edges[id]
		if sets.Union(int(e.Start), int(e.End)) {
			e.Blocked = false
			opened++
		}
	}

	for i := range g.Cells {
		g.Cells[i].Set = sets.Find(i)
	}
	return opened, nil
}

// Generate turns g into a perfect maze in place and returns it.
// Any previous generation or solution on g is discarded first.
func Generate(g *Grid) (*Grid, error) {
	g.Reset()
	order := g.EdgeOrder()
	if err := g.SortEdgeIDs(order, 0, len(order)-1); err != nil {
		return g, err
	}
	if _, err := BuildSpanningTree(g, order); err != nil {
		return g, err
	}
	return g, nil
}
