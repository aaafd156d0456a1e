package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cimnet/core"
)

func TestToDirectedCopiesPayloads(t *testing.T) {
	u := newTriangle(t)
	u.AddNode(NodeA, "a")
	d := core.ToDirected(u)

	require.Equal(t, 3, d.NumberOfNodes())
	require.Equal(t, 6, d.NumberOfEdges())
	for _, e := range u.Edges() {
		require.True(t, d.HasSuccessor(e.First, e.Second))
		require.True(t, d.HasSuccessor(e.Second, e.First))
	}

	fwd, err := d.Edge(NodeA, NodeB)
	require.NoError(t, err)
	back, err := d.Edge(NodeB, NodeA)
	require.NoError(t, err)
	require.NotSame(t, fwd, back)
	*fwd = 50
	require.Equal(t, Weight1, *back)

	src, err := u.Edge(NodeA, NodeB)
	require.NoError(t, err)
	require.Equal(t, Weight1, *src)

	p, err := d.Node(NodeA)
	require.NoError(t, err)
	require.Equal(t, "a", *p)
}

func TestToDirectedSelfLoop(t *testing.T) {
	u := core.NewNetwork()
	u.Link(3, 3)
	u.Link(3, 4)
	d := core.ToDirected(u)
	require.Equal(t, 3, d.NumberOfEdges())
	require.True(t, d.HasSuccessor(3, 3))
}

func TestToUndirectedTieBreak(t *testing.T) {
	d := core.NewDirected[string, core.None, float64]()
	d.AddEdge(NodeB, NodeA, Weight5)
	d.AddEdge(NodeA, NodeB, Weight1)
	d.AddEdge(NodeC, NodeA, Weight2)

	u := core.ToUndirected(d)
	require.Equal(t, 2, u.NumberOfEdges())
	requireMirrored(t, u)

	w, err := u.Edge(NodeB, NodeA)
	require.NoError(t, err)
	require.Equal(t, Weight1, *w, "arc from the smaller key wins")

	w, err = u.Edge(NodeA, NodeC)
	require.NoError(t, err)
	require.Equal(t, Weight2, *w, "lone reverse arc is kept")
}

func TestRoundTripPreservesAdjacency(t *testing.T) {
	u := newTriangle(t)
	back := core.ToUndirected(core.ToDirected(u))
	require.ElementsMatch(t, u.Edges(), back.Edges())
	for _, e := range u.Edges() {
		a, err := u.Edge(e.First, e.Second)
		require.NoError(t, err)
		b, err := back.Edge(e.First, e.Second)
		require.NoError(t, err)
		require.Equal(t, *a, *b)
	}
}
