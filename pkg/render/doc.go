// Package render groups the visual outputs produced from border graphs
// and embedded grids.
//
// Two renderers live in subpackages:
//
//   - [nodelink] draws the required-border graph as a classic node-link
//     diagram through Graphviz. Countries appear as circles joined by
//     undirected edges.
//   - [gridsvg] draws an embedded grid as an SVG mosaic, one colored
//     rectangle per cell, optionally overlaid with the country numbers.
//
// Both renderers are pure functions over their inputs and are wired into
// the pipeline's artifact formats.
//
// [nodelink]: github.com/gridatlas/gridatlas/pkg/render/nodelink
// [gridsvg]: github.com/gridatlas/gridatlas/pkg/render/gridsvg
package render
