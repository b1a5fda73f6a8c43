package gridmap

import "testing"

// starGraph builds a star with the center label placed mid-sequence so
// tests exercise the center lookup, not just center=1.
func starGraph(t *testing.T, n int) *Graph {
	t.Helper()
	center := (n + 1) / 2
	a := make([]int, 0, n-1)
	b := make([]int, 0, n-1)
	for u := 1; u <= n; u++ {
		if u != center {
			a = append(a, center)
			b = append(b, u)
		}
	}
	return mustGraph(t, n, n-1, a, b)
}

func TestBuildStarSmall(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		g := starGraph(t, n)
		grid := buildStar(g)
		if grid.Rows() != 3 || grid.Cols() != 3 {
			t.Fatalf("n=%d: star grid is %dx%d, want 3x3", n, grid.Rows(), grid.Cols())
		}
		assertExact(t, g, grid)
	}
}

func TestBuildStarMultipleRings(t *testing.T) {
	// 4 leaves fit per ring; these sizes force 2 and 3 rings.
	for _, n := range []int{6, 9, 10, 13} {
		g := starGraph(t, n)
		grid := buildStar(g)
		assertExact(t, g, grid)

		rings := (n - 1 + 3) / 4
		wantSide := 4*rings - 1
		if grid.Rows() != wantSide || grid.Cols() != wantSide {
			t.Errorf("n=%d: star grid is %dx%d, want %dx%d",
				n, grid.Rows(), grid.Cols(), wantSide, wantSide)
		}
	}
}

func TestBuildStarLargest(t *testing.T) {
	// 60 rings of 4 leaves is the family's capacity within the size bound.
	g := starGraph(t, 241)
	grid := buildStar(g)
	if grid.K() > MaxSide {
		t.Fatalf("K = %d exceeds %d", grid.K(), MaxSide)
	}
	assertExact(t, g, grid)
}

func TestBuildStarLeavesNeverTouch(t *testing.T) {
	g := starGraph(t, 13)
	grid := buildStar(g)
	center := universalCenter(g)

	for e := range inducedPairs(grid) {
		if e[0] != center && e[1] != center {
			t.Errorf("leaves %d and %d touch", e[0], e[1])
		}
	}
}
