package gridmap

import "testing"

func TestBuildChain(t *testing.T) {
	// Path 2-4-1-5-3 given out of order.
	g := mustGraph(t, 5, 4, []int{4, 1, 1, 5}, []int{2, 4, 5, 3})

	grid := buildChain(g)
	if grid.Rows() != 1 {
		t.Fatalf("chain grid has %d rows, want 1", grid.Rows())
	}
	if grid.Cols() != 5 {
		t.Fatalf("chain grid has %d columns, want 5", grid.Cols())
	}
	assertExact(t, g, grid)
}

func TestBuildChainWalkOrder(t *testing.T) {
	// Path 1-2-3-4: the walk must follow path order, not label order.
	g := mustGraph(t, 4, 3, []int{2, 1, 3}, []int{3, 2, 4})

	grid := buildChain(g)
	row := grid[0]
	// The walk starts at the lowest-numbered endpoint.
	want := []int{1, 2, 3, 4}
	for i, v := range want {
		if row[i] != v {
			t.Fatalf("row = %v, want %v", row, want)
		}
	}
}

func TestBuildChainTruncatesAtMaxSide(t *testing.T) {
	n := MaxSide + 10
	a := make([]int, n-1)
	b := make([]int, n-1)
	for i := range a {
		a[i] = i + 1
		b[i] = i + 2
	}
	g := mustGraph(t, n, n-1, a, b)

	grid := buildChain(g)
	if grid.Cols() != MaxSide {
		t.Fatalf("truncated chain has %d columns, want %d", grid.Cols(), MaxSide)
	}
	if grid.K() > MaxSide {
		t.Fatalf("K = %d exceeds %d", grid.K(), MaxSide)
	}
}
