package gridmap

import "math"

// DefaultPositionCap is the number of grid cells tracked per country during
// general placement. Tracking more cells gives high-degree countries more
// surface to attach neighbors to, at the cost of a wider search. Tests can
// shrink this through PlacerOptions to exercise the failure paths.
const DefaultPositionCap = 3

// PlacerOptions tunes the general placer. The zero value selects the
// defaults (DefaultPositionCap, side computed from N and M).
type PlacerOptions struct {
	// PositionCap bounds the tracked cells per country. Values below 1
	// select DefaultPositionCap.
	PositionCap int

	// Side overrides the square working-grid side. Values below 1 select
	// min(max(2, N+ceil(sqrt(2M))), MaxSide).
	Side int
}

type cell struct{ r, c int }

// placer carries the mutable state of one general-placement run. All state
// is local to the run; nothing persists between Embed calls.
type placer struct {
	g         *Graph
	grid      Grid
	positions [][]cell // label -> tracked cells, capped at posCap
	placed    []bool
	queue     []int
	posCap    int
}

// placeGeneral embeds an arbitrary graph by breadth-first placement.
//
// Components are discovered by scanning all labels and seeding a fresh BFS
// for each unplaced one; seeds are offset across the grid so components do
// not collide. A candidate cell is accepted for a country only when every
// already-placed 4-neighbor of that cell is a required neighbor, so no
// placement ever creates a border the graph forbids. There is no
// backtracking: a country that cannot be attached this round is retried as
// its other neighbors get placed, and whatever is still unplaced after the
// queues drain is force-placed best-effort for the validator to judge.
func placeGeneral(g *Graph, opts PlacerOptions) Grid {
	posCap := opts.PositionCap
	if posCap < 1 {
		posCap = DefaultPositionCap
	}
	side := opts.Side
	if side < 1 {
		side = g.N() + int(math.Ceil(math.Sqrt(2*float64(g.EdgeCount()))))
		side = min(max(2, side), MaxSide)
	}

	p := &placer{
		g:         g,
		grid:      NewGrid(side, side),
		positions: make([][]cell, g.N()+1),
		placed:    make([]bool, g.N()+1),
		posCap:    posCap,
	}

	for seedLabel := 1; seedLabel <= g.N(); seedLabel++ {
		if p.placed[seedLabel] {
			continue
		}
		p.seed(seedLabel)
		p.bfs()
	}
	p.sweepUnplaced()
	p.repairMissing()
	return p.grid
}

// seed places the first country of a component. The preferred cell spreads
// seeds away from each other; if it is taken or unsafe, the scan continues
// row-major from there, preferring a cell with no forbidden contact.
func (p *placer) seed(u int) {
	side := p.grid.Rows()
	r := min(side-1, side/2+(u-1)/10)
	c := min(side-1, side/2+(u-1)%10)

	start, total := r*side+c, side*side
	fallback := -1
	for i := 0; i < total; i++ {
		idx := (start + i) % total
		rr, cc := idx/side, idx%side
		if p.grid[rr][cc] != 0 {
			continue
		}
		if p.safeAt(rr, cc, u) {
			p.put(u, rr, cc)
			p.queue = append(p.queue, u)
			return
		}
		if fallback < 0 {
			fallback = idx
		}
	}
	if fallback >= 0 {
		p.put(u, fallback/side, fallback%side)
		p.queue = append(p.queue, u)
	}
	// Grid completely full: the component stays unplaced and the
	// validator reports the missing countries.
}

// bfs drains the queue, attaching each popped country's unplaced required
// neighbors around it.
func (p *placer) bfs() {
	for len(p.queue) > 0 {
		u := p.queue[0]
		p.queue = p.queue[1:]
		for _, v := range p.g.Neighbors(u) {
			if p.placed[v] {
				continue
			}
			if p.attach(v, u) {
				p.queue = append(p.queue, v)
			}
		}
	}
}

// attach tries to place v next to one of its already-placed required
// neighbors, starting with the country u that triggered the attempt.
//
// The ladder has three rungs: attach beside u, attach beside any other
// placed neighbor of v, and finally grow a placed neighbor by one cell and
// attach beside the new cell. Growing is what the position cap bounds - a
// country already holding posCap cells is not grown further.
func (p *placer) attach(v, u int) bool {
	if p.attachBeside(v, u) {
		return true
	}
	for _, w := range p.g.Neighbors(v) {
		if w != u && p.placed[w] && p.attachBeside(v, w) {
			return true
		}
	}
	for _, w := range p.g.Neighbors(v) {
		if p.placed[w] && p.attachGrown(v, w) {
			return true
		}
	}
	return false
}

// attachBeside probes the four cardinal offsets of each tracked cell of
// anchor and claims the first empty cell where v causes no forbidden
// contact.
func (p *placer) attachBeside(v, anchor int) bool {
	for _, pos := range p.positions[anchor] {
		for _, d := range cardinal {
			r, c := pos.r+d[0], pos.c+d[1]
			if !p.grid.InBounds(r, c) || p.grid[r][c] != 0 {
				continue
			}
			if p.safeAt(r, c, v) {
				p.put(v, r, c)
				return true
			}
		}
	}
	return false
}

// attachGrown extends anchor by one duplicate cell and places v beside the
// extension. Same-label contact is free, so the extension only needs to be
// safe for the anchor itself; if no spot for v opens up next to it, the
// extension is rolled back.
func (p *placer) attachGrown(v, anchor int) bool {
	if len(p.positions[anchor]) >= p.posCap {
		return false
	}
	for _, pos := range p.positions[anchor] {
		for _, d := range cardinal {
			gr, gc := pos.r+d[0], pos.c+d[1]
			if !p.grid.InBounds(gr, gc) || p.grid[gr][gc] != 0 || !p.safeAt(gr, gc, anchor) {
				continue
			}
			p.put(anchor, gr, gc)
			for _, d2 := range cardinal {
				r, c := gr+d2[0], gc+d2[1]
				if p.grid.InBounds(r, c) && p.grid[r][c] == 0 && p.safeAt(r, c, v) {
					p.put(v, r, c)
					return true
				}
			}
			// No opening for v: undo the extension.
			p.grid[gr][gc] = 0
			p.positions[anchor] = p.positions[anchor][:len(p.positions[anchor])-1]
		}
	}
	return false
}

// sweepUnplaced force-places whatever BFS could not attach: first beside a
// placed required neighbor, then in any safe empty cell, and as a last
// resort in the first empty cell with no safety guarantee at all. The
// validator is the authority on whatever this produces.
func (p *placer) sweepUnplaced() {
	for v := 1; v <= p.g.N(); v++ {
		if p.placed[v] {
			continue
		}
		if p.attach(v, 0) {
			continue
		}
		if p.claimEmpty(v, true) || p.claimEmpty(v, false) {
			continue
		}
	}
}

// claimEmpty scans row-major for an empty cell, optionally requiring the
// false-adjacency check to pass.
func (p *placer) claimEmpty(v int, safe bool) bool {
	for r := 0; r < p.grid.Rows(); r++ {
		for c := 0; c < p.grid.Cols(); c++ {
			if p.grid[r][c] != 0 {
				continue
			}
			if safe && !p.safeAt(r, c, v) {
				continue
			}
			p.put(v, r, c)
			return true
		}
	}
	return false
}

// repairMissing realizes required borders that placement left unrealized by
// growing one endpoint with a duplicate cell beside the other. Labels may
// occupy disjoint cells, so a border u-v that BFS geometry missed can still
// be realized later by claiming any safe empty cell next to v for u.
// Growth respects the position cap; borders that stay unrealized are left
// for the validator to report.
func (p *placer) repairMissing() {
	realized := make(map[[2]int]struct{})
	for r := 0; r < p.grid.Rows(); r++ {
		for c := 0; c < p.grid.Cols(); c++ {
			u := p.grid[r][c]
			if u == 0 {
				continue
			}
			for _, d := range [2][2]int{{0, 1}, {1, 0}} {
				nr, nc := r+d[0], c+d[1]
				if !p.grid.InBounds(nr, nc) {
					continue
				}
				if v := p.grid[nr][nc]; v != 0 && v != u {
					realized[[2]int{min(u, v), max(u, v)}] = struct{}{}
				}
			}
		}
	}

	for _, e := range p.g.Edges() {
		if _, ok := realized[e]; ok {
			continue
		}
		if p.grow(e[0], e[1]) || p.grow(e[1], e[0]) {
			realized[e] = struct{}{}
		}
	}
}

// grow claims a safe empty cell for u beside one of v's tracked cells,
// unless u already holds its full position quota.
func (p *placer) grow(u, v int) bool {
	if len(p.positions[u]) >= p.posCap {
		return false
	}
	for _, pos := range p.positions[v] {
		for _, d := range cardinal {
			r, c := pos.r+d[0], pos.c+d[1]
			if p.grid.InBounds(r, c) && p.grid[r][c] == 0 && p.safeAt(r, c, u) {
				p.put(u, r, c)
				return true
			}
		}
	}
	return false
}

// safeAt reports whether placing v at (r, c) creates no forbidden border:
// every placed 4-neighbor of the cell must be v itself or a required
// neighbor of v.
func (p *placer) safeAt(r, c, v int) bool {
	for _, d := range cardinal {
		nr, nc := r+d[0], c+d[1]
		if !p.grid.InBounds(nr, nc) {
			continue
		}
		w := p.grid[nr][nc]
		if w != 0 && w != v && !p.g.Requires(v, w) {
			return false
		}
	}
	return true
}

// put claims (r, c) for v and records the cell in the position index,
// dropping positions beyond the cap. Cells beyond the cap still occupy the
// grid; they just stop serving as anchors.
func (p *placer) put(v, r, c int) {
	p.grid[r][c] = v
	p.placed[v] = true
	if len(p.positions[v]) < p.posCap {
		p.positions[v] = append(p.positions[v], cell{r, c})
	}
}
