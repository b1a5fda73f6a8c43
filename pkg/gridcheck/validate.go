package gridcheck

import (
	"fmt"
	"slices"

	"github.com/gridatlas/gridatlas/pkg/gridmap"
)

// Report is the outcome of one validation run. Diagnostics enumerate every
// violated check rather than stopping at the first, so a caller sees all
// missing borders and false adjacencies at once.
type Report struct {
	Pass        bool
	Diagnostics []string
}

// add appends a formatted diagnostic and marks the report failed.
func (r *Report) add(format string, args ...any) {
	r.Pass = false
	r.Diagnostics = append(r.Diagnostics, fmt.Sprintf(format, args...))
}

// Validate builds the required-border graph from the edge arrays and checks
// grid against it. Malformed edge input fails the report with the graph
// error as its only diagnostic.
func Validate(n, m int, a, b []int, grid gridmap.Grid) Report {
	g, err := gridmap.NewGraph(n, m, a, b)
	if err != nil {
		return Report{Diagnostics: []string{fmt.Sprintf("invalid input: %v", err)}}
	}
	return ValidateGraph(g, grid)
}

// ValidateGraph checks grid against an already-built graph.
//
// The checks, in order: the grid must be non-empty and rectangular; its
// larger dimension must not exceed gridmap.MaxSide; every cell must hold a
// label in [1, N] and every label must appear somewhere; and the induced
// touching relation must equal the required border set in both directions.
// A structurally broken grid (empty, jagged, or holding out-of-range
// values) fails before the adjacency scan, since the scan could not be
// interpreted.
func ValidateGraph(g *gridmap.Graph, grid gridmap.Grid) Report {
	report := Report{Pass: true}

	rows := grid.Rows()
	if rows == 0 {
		report.add("grid is empty")
		return report
	}
	cols := grid.Cols()
	for r, row := range grid {
		if len(row) != cols {
			report.add("grid is jagged: row %d has %d columns, row 0 has %d", r, len(row), cols)
		}
	}
	if !report.Pass {
		return report
	}

	if k := grid.K(); k > gridmap.MaxSide {
		report.add("size exceeded: K=%d > %d", k, gridmap.MaxSide)
	}

	present := make([]bool, g.N()+1)
	valuesOK := true
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := grid[r][c]
			if v < 1 || v > g.N() {
				report.add("invalid label %d at (%d, %d)", v, r, c)
				valuesOK = false
				continue
			}
			present[v] = true
		}
	}
	for v := 1; v <= g.N(); v++ {
		if !present[v] {
			report.add("country %d does not appear in the grid", v)
		}
	}
	if !valuesOK {
		return report
	}

	induced := InducedAdjacency(grid)
	inducedSet := make(map[[2]int]struct{}, len(induced))
	for _, e := range induced {
		inducedSet[e] = struct{}{}
	}
	for _, e := range g.Edges() {
		if _, ok := inducedSet[e]; !ok {
			report.add("unrealized border: countries %d and %d never touch", e[0], e[1])
		}
	}
	for _, e := range induced {
		if !g.Requires(e[0], e[1]) {
			report.add("false adjacency: countries %d and %d touch but must not border", e[0], e[1])
		}
	}

	return report
}

// InducedAdjacency scans every 4-adjacent cell pair of the grid and returns
// the distinct unordered label pairs that touch, each as a sorted (low,
// high) pair, in lexicographic order. Same-label contact is not a border
// and is skipped.
//
// The relation is symmetric by construction - pairs are stored sorted - so
// there is no such thing as a one-directional border in the result.
func InducedAdjacency(grid gridmap.Grid) [][2]int {
	seen := make(map[[2]int]struct{})
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			u := grid[r][c]
			// Right and down cover every adjacent pair exactly once.
			for _, d := range [2][2]int{{0, 1}, {1, 0}} {
				nr, nc := r+d[0], c+d[1]
				if !grid.InBounds(nr, nc) {
					continue
				}
				v := grid[nr][nc]
				if u == v {
					continue
				}
				seen[[2]int{min(u, v), max(u, v)}] = struct{}{}
			}
		}
	}

	out := make([][2]int, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	slices.SortFunc(out, func(x, y [2]int) int {
		if x[0] != y[0] {
			return x[0] - y[0]
		}
		return x[1] - y[1]
	})
	return out
}
