package gridmap

// buildStar lays out a universal center with its leaves on the four axes.
//
// The whole square is filled with the center label, so every leaf cell is
// surrounded by center on each side the leaf itself does not occupy; the
// center-leaf border is realized at radius 1 already and same-label contact
// never counts as a border. Leaves are placed only at odd radii (1, 3, 5, …)
// along the N/S/W/E axes: two leaves on the same axis are then separated by
// at least one center cell, and leaves on different axes never share a
// coordinate within distance 1. No leaf pair can touch.
//
// Four leaves fit per ring, so ring r (outermost radius 2r-1) gives a square
// of side 4r-1. Capacity within MaxSide is 60 rings = 240 leaves; any
// further leaves are unplaceable in this family and left out for the
// validator to report.
func buildStar(g *Graph) Grid {
	center := universalCenter(g)
	leaves := make([]int, 0, g.N()-1)
	for u := 1; u <= g.N(); u++ {
		if u != center {
			leaves = append(leaves, u)
		}
	}

	rings := (len(leaves) + 3) / 4
	if rings > (MaxSide+1)/4 {
		rings = (MaxSide + 1) / 4
	}
	side := 4*rings - 1
	if side < 3 {
		side = 3
	}

	grid := NewGrid(side, side)
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = center
		}
	}

	mid := side / 2
	idx := 0
	for ring := 1; ring <= rings && idx < len(leaves); ring++ {
		radius := 2*ring - 1
		for _, d := range cardinal {
			if idx >= len(leaves) {
				break
			}
			grid[mid+radius*d[0]][mid+radius*d[1]] = leaves[idx]
			idx++
		}
	}
	return grid
}
