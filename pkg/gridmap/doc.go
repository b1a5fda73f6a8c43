// Package gridmap embeds an undirected country-adjacency graph into a
// rectangular grid of country labels.
//
// Two distinct labels "touch" when any pair of their cells is 4-directionally
// adjacent. An embedding is correct when the touching relation induced by the
// grid equals the required edge set exactly: every required border is realized
// and no unrequired border appears. Labels may occupy many disjoint cells;
// a label is not a contiguous region.
//
// # Pipeline
//
// Embedding proceeds in fixed stages:
//
//  1. Build the Graph (symmetric adjacency sets) from the edge arrays.
//  2. Classify the graph as a star, chain, complete graph, or general case.
//  3. Run the matching constructor.
//  4. Post-process: trim to the occupied bounding box and fill empty cells.
//
// The constructors for stars, chains, and complete graphs produce exact
// layouts. The general constructor is a best-effort heuristic: it places
// labels by breadth-first search with a local false-adjacency check and does
// not backtrack, so pathological inputs can yield grids that fail
// verification. Embed never checks its own output - use package gridcheck,
// which recomputes the induced relation independently.
//
// # Usage
//
//	g, err := gridmap.NewGraph(5, 4, []int{1, 1, 1, 1}, []int{2, 3, 4, 5})
//	if err != nil {
//		log.Fatal(err)
//	}
//	grid := gridmap.EmbedGraph(g)
//	report := gridcheck.ValidateGraph(g, grid)
package gridmap
