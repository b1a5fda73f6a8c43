package gridmap

import "testing"

// inducedPairs collects the distinct touching label pairs of a grid, each
// stored as a (low, high) key. Unassigned cells are skipped so the helper
// also works on raw constructor output. Shared by the constructor tests to
// assert exactness without going through the public checker.
func inducedPairs(grid Grid) map[[2]int]bool {
	pairs := make(map[[2]int]bool)
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			u := grid[r][c]
			if u == 0 {
				continue
			}
			for _, d := range [2][2]int{{0, 1}, {1, 0}} {
				nr, nc := r+d[0], c+d[1]
				if !grid.InBounds(nr, nc) || grid[nr][nc] == u || grid[nr][nc] == 0 {
					continue
				}
				v := grid[nr][nc]
				pairs[[2]int{min(u, v), max(u, v)}] = true
			}
		}
	}
	return pairs
}

// assertExact fails the test unless the grid's induced relation equals the
// graph's required border set and every country appears.
func assertExact(t *testing.T, g *Graph, grid Grid) {
	t.Helper()

	present := make([]bool, g.N()+1)
	for _, row := range grid {
		for _, v := range row {
			if v < 1 || v > g.N() {
				t.Fatalf("cell holds %d, want label in [1, %d]\n%s", v, g.N(), grid)
			}
			present[v] = true
		}
	}
	for v := 1; v <= g.N(); v++ {
		if !present[v] {
			t.Errorf("country %d missing from grid\n%s", v, grid)
		}
	}

	induced := inducedPairs(grid)
	for _, e := range g.Edges() {
		if !induced[e] {
			t.Errorf("border %d-%d not realized\n%s", e[0], e[1], grid)
		}
	}
	for e := range induced {
		if !g.Requires(e[0], e[1]) {
			t.Errorf("false adjacency %d-%d\n%s", e[0], e[1], grid)
		}
	}
}

// mustGraph builds a graph or fails the test.
func mustGraph(t *testing.T, n, m int, a, b []int) *Graph {
	t.Helper()
	g, err := NewGraph(n, m, a, b)
	if err != nil {
		t.Fatalf("NewGraph() error = %v", err)
	}
	return g
}

func TestGridDimensions(t *testing.T) {
	g := NewGrid(3, 5)
	if g.Rows() != 3 || g.Cols() != 5 {
		t.Errorf("NewGrid(3, 5) = %dx%d", g.Rows(), g.Cols())
	}
	if g.K() != 5 {
		t.Errorf("K() = %d, want 5", g.K())
	}

	var empty Grid
	if empty.Rows() != 0 || empty.Cols() != 0 || empty.K() != 0 {
		t.Errorf("empty grid = %dx%d K=%d, want all zero", empty.Rows(), empty.Cols(), empty.K())
	}
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid(2, 3)
	tests := []struct {
		r, c int
		want bool
	}{
		{0, 0, true},
		{1, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{2, 0, false},
		{0, 3, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.r, tt.c); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.r, tt.c, got, tt.want)
		}
	}
}

func TestGridClone(t *testing.T) {
	g := Grid{{1, 2}, {3, 4}}
	c := g.Clone()
	c[0][0] = 9
	if g[0][0] != 1 {
		t.Error("Clone() shares backing storage with the original")
	}
}

func TestGridString(t *testing.T) {
	g := Grid{{1, 2}, {3, 10}}
	want := "1 2\n3 10\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
