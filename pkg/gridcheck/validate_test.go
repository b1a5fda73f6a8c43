package gridcheck

import (
	"slices"
	"strings"
	"testing"

	"github.com/gridatlas/gridatlas/pkg/gridmap"
)

// k4 is the exact hand layout for four mutually bordering countries.
var k4 = gridmap.Grid{
	{1, 2},
	{3, 4},
	{2, 1},
}

func k4Edges() (a, b []int) {
	return []int{1, 1, 1, 2, 2, 3}, []int{2, 3, 4, 3, 4, 4}
}

func TestValidatePass(t *testing.T) {
	a, b := k4Edges()
	report := Validate(4, 6, a, b, k4)
	if !report.Pass {
		t.Fatalf("Pass = false, diagnostics: %v", report.Diagnostics)
	}
	if len(report.Diagnostics) != 0 {
		t.Errorf("passing report carries diagnostics: %v", report.Diagnostics)
	}
}

func TestValidateFailures(t *testing.T) {
	a, b := k4Edges()

	tests := []struct {
		name string
		n, m int
		a, b []int
		grid gridmap.Grid
		want string // substring of some diagnostic
	}{
		{
			name: "empty grid",
			n:    4, m: 6, a: a, b: b,
			grid: gridmap.Grid{},
			want: "grid is empty",
		},
		{
			name: "jagged grid",
			n:    4, m: 6, a: a, b: b,
			grid: gridmap.Grid{{1, 2}, {3}},
			want: "jagged",
		},
		{
			name: "label out of range",
			n:    4, m: 6, a: a, b: b,
			grid: gridmap.Grid{{1, 2}, {3, 9}},
			want: "invalid label 9",
		},
		{
			name: "missing country",
			n:    4, m: 6, a: a, b: b,
			grid: gridmap.Grid{{1, 2}, {3, 1}, {2, 1}},
			want: "country 4 does not appear",
		},
		{
			name: "unrealized border",
			n:    4, m: 6, a: a, b: b,
			// The spread-out layout touches only through country 1.
			grid: gridmap.Grid{
				{1, 2, 1},
				{3, 1, 4},
				{1, 2, 1},
			},
			want: "unrealized border",
		},
		{
			name: "false adjacency",
			n:    3, m: 2,
			a: []int{1, 2}, b: []int{2, 3},
			grid: gridmap.Grid{{1, 2, 3, 1}},
			want: "false adjacency: countries 1 and 3",
		},
		{
			name: "malformed input",
			n:    2, m: 1,
			a: []int{1}, b: []int{5},
			grid: gridmap.Grid{{1, 2}},
			want: "invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Validate(tt.n, tt.m, tt.a, tt.b, tt.grid)
			if report.Pass {
				t.Fatal("Pass = true, want failure")
			}
			found := false
			for _, d := range report.Diagnostics {
				if strings.Contains(d, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("no diagnostic contains %q, got %v", tt.want, report.Diagnostics)
			}
		})
	}
}

func TestValidateSizeBound(t *testing.T) {
	a, b := []int(nil), []int(nil)
	grid := make(gridmap.Grid, gridmap.MaxSide+1)
	for r := range grid {
		grid[r] = []int{1}
	}

	report := Validate(1, 0, a, b, grid)
	if report.Pass {
		t.Fatal("Pass = true for an oversize grid")
	}
	found := false
	for _, d := range report.Diagnostics {
		if strings.Contains(d, "size exceeded") {
			found = true
		}
	}
	if !found {
		t.Errorf("no size diagnostic, got %v", report.Diagnostics)
	}
}

func TestValidateEnumeratesAllViolations(t *testing.T) {
	// One grid, two problems: country 4 missing and border 2-3 unrealized.
	a, b := k4Edges()
	grid := gridmap.Grid{{1, 2}, {1, 3}}

	report := Validate(4, 6, a, b, grid)
	if report.Pass {
		t.Fatal("Pass = true, want failure")
	}
	if len(report.Diagnostics) < 2 {
		t.Errorf("Diagnostics = %v, want at least two entries", report.Diagnostics)
	}
}

func TestInducedAdjacency(t *testing.T) {
	grid := gridmap.Grid{
		{1, 1, 2},
		{3, 1, 2},
	}
	want := [][2]int{{1, 2}, {1, 3}}
	if got := InducedAdjacency(grid); !slices.Equal(got, want) {
		t.Errorf("InducedAdjacency() = %v, want %v", got, want)
	}
}

func TestInducedAdjacencySorted(t *testing.T) {
	// Pairs come out sorted regardless of which label is seen first.
	grid := gridmap.Grid{{5, 2}, {4, 3}}
	got := InducedAdjacency(grid)
	for _, e := range got {
		if e[0] >= e[1] {
			t.Errorf("pair %v is not (low, high)", e)
		}
	}
	for i := 1; i < len(got); i++ {
		prev, curr := got[i-1], got[i]
		if prev[0] > curr[0] || (prev[0] == curr[0] && prev[1] >= curr[1]) {
			t.Errorf("pairs %v and %v out of order", prev, curr)
		}
	}
}
