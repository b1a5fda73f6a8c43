package gridmap

// buildChain lays a simple path out as a single row. Consecutive entries of
// the walk are exactly the required borders, and a lone row has no vertical
// neighbors, so the layout is exact whenever the whole path fits.
//
// Paths longer than MaxSide do not fit in one row, and any serpentine wrap
// would press non-consecutive path entries against each other vertically.
// The row is therefore truncated at MaxSide and the validator reports the
// missing countries; see DESIGN.md.
func buildChain(g *Graph) Grid {
	start := 0
	for u := 1; u <= g.N(); u++ {
		if g.Degree(u) == 1 {
			start = u
			break
		}
	}

	visited := make([]bool, g.N()+1)
	row := make([]int, 0, g.N())
	for curr := start; curr != 0; {
		row = append(row, curr)
		visited[curr] = true
		next := 0
		for _, v := range g.Neighbors(curr) {
			if !visited[v] {
				next = v
				break
			}
		}
		curr = next
	}

	if len(row) > MaxSide {
		row = row[:MaxSide]
	}
	return Grid{row}
}
