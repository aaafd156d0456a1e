package export_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cimnet/core"
	"github.com/katalvlaran/cimnet/export"
)

func TestToDOT(t *testing.T) {
	g := core.NewNetwork()
	g.Link(1, 0)
	g.EnsureNode(2)

	require.Equal(t, ""+
		"graph G {\n"+
		"  node [shape=circle, fontsize=10];\n"+
		"\n"+
		"  \"0\";\n"+
		"  \"1\";\n"+
		"  \"2\";\n"+
		"\n"+
		"  \"0\" -- \"1\";\n"+
		"}\n", export.ToDOT[core.ID](g))
}

func TestToDOT_Directed(t *testing.T) {
	d := core.NewDirectedNetwork()
	d.Link(1, 0)

	dot := export.ToDOT[core.ID](d)
	require.Contains(t, dot, "digraph G {")
	require.Contains(t, dot, "\"1\" -> \"0\";")
}

func TestRenderSVG(t *testing.T) {
	g := core.NewNetwork()
	g.Link(0, 1)

	svg, err := export.RenderSVG(context.Background(), export.ToDOT[core.ID](g))
	require.NoError(t, err)
	require.Contains(t, string(svg), "<svg")
}
