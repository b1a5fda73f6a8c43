package gridmap

import "math"

// buildComplete lays out a fully-mutually-bordering country set.
//
// Complete graphs are the one family where false adjacency is impossible:
// every pair of distinct labels is a required border, so any grid that
// contains all N labels and realizes every pair is exact. That reduces the
// problem to realizing all N(N-1)/2 pairs, which label repetition makes
// trivial: each pair is written as a horizontal two-cell domino and the
// dominoes are tiled row-major.
//
// The tile width is kept even so no domino straddles a row boundary, and the
// tail of the last row is padded with label 1 (any label would do). Total
// cells are N(N-1) <= 240*239 < 240*240, so every complete graph up to
// N = 240 fits inside the size bound. Beyond that both sides clamp at
// MaxSide and domino emission stops when the grid is full; the validator
// reports the pairs that did not fit.
//
// N <= 4 uses the compact hand-fit layouts instead.
func buildComplete(g *Graph) Grid {
	switch g.N() {
	case 1:
		return Grid{{1}}
	case 2:
		return Grid{{1, 2}}
	case 3:
		return Grid{{1, 2}, {3, 2}}
	case 4:
		return Grid{
			{1, 2},
			{3, 4},
			{2, 1},
		}
	}

	n := g.N()
	cells := n * (n - 1) // two cells per pair

	cols := int(math.Ceil(math.Sqrt(float64(cells))))
	if cols%2 != 0 {
		cols++
	}
	if cols > MaxSide {
		cols = MaxSide // MaxSide is even
	}
	rows := (cells + cols - 1) / cols
	if rows > MaxSide {
		rows = MaxSide
	}

	grid := NewGrid(rows, cols)
	r, c := 0, 0
tile:
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			if r >= rows {
				break tile
			}
			grid[r][c] = u
			grid[r][c+1] = v
			c += 2
			if c >= cols {
				r, c = r+1, 0
			}
		}
	}
	for ; r < rows; r, c = r+1, 0 {
		for ; c < cols; c++ {
			grid[r][c] = 1
		}
	}
	return grid
}
