package gridmap

import (
	"strconv"
	"strings"
)

// MaxSide is the hard bound on the larger grid dimension. Grids whose larger
// dimension exceeds MaxSide are rejected by the validator; constructors cap
// their allocations at this value.
const MaxSide = 240

// Grid is a rectangular array of country labels. Cell values are labels in
// [1, N]; the value 0 marks a cell that has not been assigned yet and must
// not survive post-processing.
//
// A label may occupy any number of cells and its cells need not be
// contiguous - this is what makes stars and complete graphs embeddable.
type Grid [][]int

// NewGrid allocates a rows x cols grid with every cell unassigned (0).
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]int, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// K returns the larger of the two dimensions. The validator rejects grids
// with K greater than MaxSide.
func (g Grid) K() int {
	return max(g.Rows(), g.Cols())
}

// InBounds reports whether (r, c) is a valid cell coordinate.
func (g Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows() && c >= 0 && c < g.Cols()
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}

// String renders the grid one row per line with space-separated labels.
// This matches the plain-text interchange format used by the CLI.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// cardinal holds the four probe offsets in fixed N/S/W/E order. Placement
// and induced-adjacency scans share this order so runs are reproducible.
var cardinal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
