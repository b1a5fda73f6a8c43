// Package nodelink renders the required-border graph as a node-link
// diagram via Graphviz.
//
// The diagram shows the input relation, not a produced grid - it is the
// quickest way to eyeball what an embedding has to achieve. Use package
// gridsvg to render the grid itself.
package nodelink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/gridatlas/gridatlas/pkg/gridmap"
)

// ToDOT returns a Graphviz DOT representation of the required borders.
//
// The output is an undirected graph with one node per country (labeled by
// its number) and one edge per required border. Isolated countries still
// get a node so the diagram matches the problem exactly.
//
// Example:
//
//	g, _ := gridmap.NewGraph(3, 2, []int{1, 2}, []int{2, 3})
//	dot := nodelink.ToDOT(g)
//	// Render with the 'dot'/'neato' tools or with RenderSVG.
func ToDOT(g *gridmap.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("graph borders {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=circle, style=filled, fillcolor=white];\n\n")

	for u := 1; u <= g.N(); u++ {
		fmt.Fprintf(&buf, "  c%d [label=\"%d\"];\n", u, u)
	}
	buf.WriteByte('\n')
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  c%d -- c%d;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the required-border graph as an SVG image.
//
// RenderSVG generates a DOT representation via ToDOT, then uses Graphviz to
// render it. It requires the Graphviz library (github.com/goccy/go-graphviz)
// to initialize; errors are wrapped with %w and suitable for errors.Is.
func RenderSVG(ctx context.Context, g *gridmap.Graph) ([]byte, error) {
	return render(ctx, g, graphviz.SVG)
}

// RenderPNG renders the required-border graph as a PNG image.
func RenderPNG(ctx context.Context, g *gridmap.Graph) ([]byte, error) {
	return render(ctx, g, graphviz.PNG)
}

func render(ctx context.Context, g *gridmap.Graph, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(ToDOT(g)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
