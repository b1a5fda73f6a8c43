// Package gridcheck verifies country-grid embeddings independently of the
// embedder.
//
// The checker recomputes the touching relation induced by a grid from
// scratch and compares it for exact set equality with the required border
// set, alongside the structural constraints: a rectangular non-empty grid,
// the size bound K <= gridmap.MaxSide, and every country in [1, N] present.
// It shares no state with package gridmap's constructors and never mutates
// its inputs, so the same inputs always yield the same verdict.
//
// Validate is authoritative: the embedder is best-effort and callers must
// run the checker before trusting a grid for anything beyond approximation.
package gridcheck
