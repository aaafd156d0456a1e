package export

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts g to Graphviz DOT. Undirected networks become "graph",
// directed ones "digraph". Nodes and edges are emitted in ascending key order
// so the output is stable. The result can be rendered with RenderSVG.
func ToDOT[K cmp.Ordered](g Source[K]) string {
	kind, arrow := "graph", "--"
	if g.IsDirected() {
		kind, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  node [shape=circle, fontsize=10];\n")
	buf.WriteString("\n")

	for _, id := range slices.Sorted(slices.Values(g.Nodes())) {
		fmt.Fprintf(&buf, "  %q;\n", fmt.Sprint(id))
	}

	edges := g.Edges()
	slices.SortFunc(edges, comparePairs[K])
	if len(edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q %s %q;\n", fmt.Sprint(e.First), arrow, fmt.Sprint(e.Second))
	}

	buf.WriteString("}\n")

	return buf.String()
}

// RenderSVG renders a DOT document to SVG using the embedded Graphviz build.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("export: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("export: render: %w", err)
	}

	return buf.Bytes(), nil
}
