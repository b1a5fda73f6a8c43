package gridmap

// postProcess trims the working grid to its occupied bounding box and fills
// whatever unassigned cells remain inside it. Constructors over-allocate a
// square before knowing the true footprint; the trim keeps K proportional to
// what was actually used.
//
// Filling copies labels from neighboring cells rather than flooding a fixed
// hub label: growing a label into an adjacent cell adds no border of its
// own, so a copy is safe whenever every other occupied neighbor of the cell
// is the same label or a required neighbor of it. The reference fill (hub
// label everywhere) is only correct when the hub borders everything, which
// general graphs do not guarantee.
//
// The safe pass runs to a fixed point, falling back from neighbor labels to
// any label all walls of the cell tolerate. Cells that remain - an empty
// pocket walled in by countries with no common required neighbor - are
// filled by copying any neighbor regardless, and the validator reports the
// damage.
func postProcess(g *Graph, grid Grid) Grid {
	grid = trim(grid)
	if grid.Rows() == 0 {
		return Grid{{1}}
	}

	for fillPass(g, grid, true) {
	}
	for fillPass(g, grid, false) {
	}
	return grid
}

// trim returns the sub-grid spanning all occupied cells.
func trim(grid Grid) Grid {
	minR, maxR, minC, maxC := grid.Rows(), -1, grid.Cols(), -1
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if grid[r][c] != 0 {
				minR = min(minR, r)
				maxR = max(maxR, r)
				minC = min(minC, c)
				maxC = max(maxC, c)
			}
		}
	}
	if maxR < 0 {
		return nil
	}

	out := make(Grid, maxR-minR+1)
	for r := range out {
		out[r] = grid[minR+r][minC : maxC+1 : maxC+1]
	}
	return out
}

// fillPass assigns every empty cell that has a usable neighbor label and
// reports whether anything changed. With safe set, a label is copied into a
// cell only when all other occupied neighbors of that cell tolerate it.
func fillPass(g *Graph, grid Grid, safe bool) bool {
	changed := false
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if grid[r][c] != 0 {
				continue
			}
			if v := fillLabel(g, grid, r, c, safe); v != 0 {
				grid[r][c] = v
				changed = true
			}
		}
	}
	return changed
}

// fillLabel picks a label for the empty cell (r, c), or 0 if none
// qualifies. Neighbor labels are preferred; in safe mode any label that
// every occupied neighbor tolerates will do, since labels may occupy
// disjoint cells and a tolerated label only realizes borders the graph
// already requires.
func fillLabel(g *Graph, grid Grid, r, c int, safe bool) int {
	occupied := false
	for _, d := range cardinal {
		nr, nc := r+d[0], c+d[1]
		if !grid.InBounds(nr, nc) || grid[nr][nc] == 0 {
			continue
		}
		occupied = true
		v := grid[nr][nc]
		if !safe || fillTolerated(g, grid, r, c, v) {
			return v
		}
	}
	if safe && occupied {
		for v := 1; v <= g.N(); v++ {
			if fillTolerated(g, grid, r, c, v) {
				return v
			}
		}
	}
	return 0
}

// fillTolerated reports whether copying v into (r, c) leaves the induced
// relation unchanged: every occupied neighbor must be v itself or a
// required neighbor of v.
func fillTolerated(g *Graph, grid Grid, r, c, v int) bool {
	for _, d := range cardinal {
		nr, nc := r+d[0], c+d[1]
		if !grid.InBounds(nr, nc) {
			continue
		}
		w := grid[nr][nc]
		if w != 0 && w != v && !g.Requires(v, w) {
			return false
		}
	}
	return true
}
