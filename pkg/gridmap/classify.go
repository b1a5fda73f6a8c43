package gridmap

// Case identifies the structural family a graph falls into. Three families
// admit exact closed-form layouts; everything else goes through the
// best-effort general placer.
type Case int

const (
	// CaseStar is a tree with one universal center: M = N-1 and some
	// country borders all others.
	CaseStar Case = iota
	// CaseChain is a simple path: M = N-1, exactly two countries of
	// degree 1, and no country of degree above 2.
	CaseChain
	// CaseComplete has every pair of countries bordering: M = N(N-1)/2.
	CaseComplete
	// CaseGeneral is everything else - branching trees, cycles, irregular
	// and disconnected graphs.
	CaseGeneral
)

// String returns the case name for logs and diagnostics.
func (c Case) String() string {
	switch c {
	case CaseStar:
		return "star"
	case CaseChain:
		return "chain"
	case CaseComplete:
		return "complete"
	default:
		return "general"
	}
}

// Classify inspects the degree sequence once and picks the construction
// family. The order of the checks matters: small graphs satisfy several
// numeric conditions at once (a 2-country graph is simultaneously a chain,
// a star, and complete), and the earlier family generalizes better.
//
// Star is checked before chain because a 3-country star is also a 2-edge
// path. Duplicate edges are absorbed by the Graph, so classification works
// on distinct edge counts.
func Classify(g *Graph) Case {
	n, m := g.N(), g.EdgeCount()

	maxDeg, deg1 := 0, 0
	for u := 1; u <= n; u++ {
		d := g.Degree(u)
		maxDeg = max(maxDeg, d)
		if d == 1 {
			deg1++
		}
	}

	switch {
	case m == n-1 && maxDeg == n-1 && n >= 2:
		return CaseStar
	case m == n-1 && deg1 == 2 && maxDeg == 2:
		return CaseChain
	case m == n*(n-1)/2:
		return CaseComplete
	default:
		return CaseGeneral
	}
}

// universalCenter returns the lowest-numbered country bordering all others,
// or 0 if none exists.
func universalCenter(g *Graph) int {
	for u := 1; u <= g.N(); u++ {
		if g.Degree(u) == g.N()-1 {
			return u
		}
	}
	return 0
}
