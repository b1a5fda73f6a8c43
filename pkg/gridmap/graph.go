package gridmap

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidCountryCount is returned by [NewGraph] when the number of
	// countries is less than one.
	ErrInvalidCountryCount = errors.New("country count must be at least 1")

	// ErrEdgeArity is returned by [NewGraph] when the two edge arrays do not
	// both have length M.
	ErrEdgeArity = errors.New("edge arrays must both have length M")

	// ErrLabelOutOfRange is returned by [NewGraph] when an edge endpoint lies
	// outside [1, N].
	ErrLabelOutOfRange = errors.New("edge label outside [1, N]")

	// ErrSelfLoop is returned by [NewGraph] when an edge connects a country
	// to itself. Self-bordering is meaningless on the grid (same-label cell
	// pairs never count as a border) and is rejected rather than dropped.
	ErrSelfLoop = errors.New("self-loop edge")
)

// Graph holds the required-border relation between countries as symmetric
// adjacency sets. Countries are identified by integer labels in [1, N].
//
// A Graph is built once by NewGraph and is read-only afterwards; all methods
// are safe for concurrent readers.
type Graph struct {
	n     int
	adj   []map[int]struct{} // 1-based; adj[0] unused
	edges int                // distinct undirected edges
}

// NewGraph builds the adjacency sets for n countries from the edge arrays
// a and b, where a[i]-b[i] is the i-th required border and both arrays have
// length m. Duplicate edges are absorbed; the relation is kept symmetric.
//
// Returns ErrInvalidCountryCount, ErrEdgeArity, ErrLabelOutOfRange, or
// ErrSelfLoop (wrapped with positional detail) for malformed input. No
// construction work happens on malformed input.
func NewGraph(n, m int, a, b []int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCountryCount, n)
	}
	if len(a) != m || len(b) != m {
		return nil, fmt.Errorf("%w: len(a)=%d len(b)=%d m=%d", ErrEdgeArity, len(a), len(b), m)
	}

	g := &Graph{n: n, adj: make([]map[int]struct{}, n+1)}
	for i := 1; i <= n; i++ {
		g.adj[i] = make(map[int]struct{})
	}

	for i := 0; i < m; i++ {
		u, v := a[i], b[i]
		if u < 1 || u > n || v < 1 || v > n {
			return nil, fmt.Errorf("%w: edge %d is (%d, %d) with n=%d", ErrLabelOutOfRange, i, u, v, n)
		}
		if u == v {
			return nil, fmt.Errorf("%w: edge %d is (%d, %d)", ErrSelfLoop, i, u, v)
		}
		if _, dup := g.adj[u][v]; !dup {
			g.edges++
		}
		g.adj[u][v] = struct{}{}
		g.adj[v][u] = struct{}{}
	}
	return g, nil
}

// N returns the number of countries.
func (g *Graph) N() int { return g.n }

// EdgeCount returns the number of distinct undirected required borders.
// Duplicate input edges count once.
func (g *Graph) EdgeCount() int { return g.edges }

// Degree returns the number of required neighbors of country u,
// or 0 if u is out of range.
func (g *Graph) Degree(u int) int {
	if u < 1 || u > g.n {
		return 0
	}
	return len(g.adj[u])
}

// Requires reports whether countries u and v must share a border.
func (g *Graph) Requires(u, v int) bool {
	if u < 1 || u > g.n {
		return false
	}
	_, ok := g.adj[u][v]
	return ok
}

// Neighbors returns the required neighbors of country u in ascending order.
// Returns nil if u is out of range or has no required borders.
//
// The order is deterministic so that placement and tests are reproducible.
func (g *Graph) Neighbors(u int) []int {
	if u < 1 || u > g.n || len(g.adj[u]) == 0 {
		return nil
	}
	out := make([]int, 0, len(g.adj[u]))
	for v := range g.adj[u] {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Edges returns every distinct required border as a sorted (u < v) pair,
// ordered lexicographically.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edges)
	for u := 1; u <= g.n; u++ {
		for v := range g.adj[u] {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	slices.SortFunc(out, func(x, y [2]int) int {
		if x[0] != y[0] {
			return x[0] - y[0]
		}
		return x[1] - y[1]
	})
	return out
}
