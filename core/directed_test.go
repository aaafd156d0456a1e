package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cimnet/core"
	"github.com/katalvlaran/cimnet/random"
)

// newPath builds the directed path A→B→C plus the back arc C→A.
func newPath(t *testing.T) *core.Directed[string, core.None, float64] {
	t.Helper()
	g := core.NewDirected[string, core.None, float64]()
	g.AddEdge(NodeA, NodeB, Weight1)
	g.AddEdge(NodeB, NodeC, Weight2)
	g.AddEdge(NodeC, NodeA, Weight5)

	return g
}

func TestDirectedLockstep(t *testing.T) {
	g := newPath(t)
	require.True(t, g.IsDirected())
	require.True(t, g.HasSuccessor(NodeA, NodeB))
	require.True(t, g.HasPredecessor(NodeB, NodeA))
	require.False(t, g.HasSuccessor(NodeB, NodeA))
	require.False(t, g.HasEdge(NodeB, NodeA))
	require.True(t, g.IsNeighbor(NodeB, NodeA))

	require.Equal(t, 1, g.OutDegree(NodeA))
	require.Equal(t, 1, g.InDegree(NodeA))
	require.Equal(t, 2, g.Degree(NodeA))
	require.Equal(t, 3, g.NumberOfEdges())
	require.Equal(t, "DirectedNetwork(nodes=3, edges=3)", g.String())
}

func TestDirectedNeighborsUnion(t *testing.T) {
	g := newPath(t)
	g.Link(NodeB, NodeA)
	require.Equal(t, []string{NodeB, NodeC}, sorted(g.Neighbors(NodeA)))
	require.Equal(t, []string{NodeB}, g.Successors(NodeA))
	require.Equal(t, []string{NodeB, NodeC}, sorted(g.Predecessors(NodeA)))
	require.Equal(t, []string{NodeB}, slices.Collect(g.SuccessorView(NodeA)))
	require.Equal(t, []string{NodeB, NodeC}, slices.Sorted(g.PredecessorView(NodeA)))
}

func TestDirectedRemoveEdge(t *testing.T) {
	g := newPath(t)
	err := g.RemoveEdge(NodeB, NodeA)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	require.EqualError(t, err, "core: no edge from B to A")

	require.NoError(t, g.RemoveEdge(NodeA, NodeB))
	require.False(t, g.HasPredecessor(NodeB, NodeA))
	require.Equal(t, 2, g.NumberOfEdges())

	require.ErrorIs(t, g.RemoveEdge(NodeA, NodeD), core.ErrNodeNotFound)
}

func TestDirectedRemoveNode(t *testing.T) {
	g := newPath(t)
	require.NoError(t, g.RemoveNode(NodeA))
	require.Equal(t, 2, g.NumberOfNodes())
	require.Equal(t, 1, g.NumberOfEdges())
	require.Empty(t, g.Predecessors(NodeB))
	require.Empty(t, g.Successors(NodeC))
	require.ErrorIs(t, g.RemoveNode(NodeA), core.ErrNodeNotFound)
}

func TestDirectedEdgePayload(t *testing.T) {
	g := newPath(t)
	w, err := g.Edge(NodeA, NodeB)
	require.NoError(t, err)
	require.Equal(t, Weight1, *w)
	*w = 9
	w2, err := g.Edge(NodeA, NodeB)
	require.NoError(t, err)
	require.Equal(t, 9.0, *w2)

	_, err = g.Edge(NodeB, NodeA)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.Edge(NodeD, NodeA)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestDirectedRandomPicks(t *testing.T) {
	g := newPath(t)
	r := random.NewSeeded(11)

	s, err := g.RandomSuccessor(NodeA, r)
	require.NoError(t, err)
	require.Equal(t, NodeB, s)

	p, err := g.RandomPredecessor(NodeA, r)
	require.NoError(t, err)
	require.Equal(t, NodeC, p)

	g.EnsureNode(NodeD)
	_, err = g.RandomSuccessor(NodeD, r)
	require.ErrorIs(t, err, core.ErrNoNeighbors)
	require.EqualError(t, err, "core: node D has no successors")
	_, err = g.RandomPredecessor(NodeD, r)
	require.EqualError(t, err, "core: node D has no predecessors")
}

func TestDirectedEdgesOrdered(t *testing.T) {
	g := newPath(t)
	require.ElementsMatch(t, []core.Pair[string]{
		{First: NodeA, Second: NodeB},
		{First: NodeB, Second: NodeC},
		{First: NodeC, Second: NodeA},
	}, g.Edges())
	require.Equal(t, []string{NodeA, NodeB, NodeC}, g.SortedNodes())
}

func TestDirectedCloneIndependent(t *testing.T) {
	g := newPath(t)
	c := g.Clone()
	require.ElementsMatch(t, g.Edges(), c.Edges())

	w, err := c.Edge(NodeA, NodeB)
	require.NoError(t, err)
	*w = 77
	orig, err := g.Edge(NodeA, NodeB)
	require.NoError(t, err)
	require.Equal(t, Weight1, *orig)

	c.Clear()
	require.Equal(t, 0, c.NumberOfNodes())
	require.Equal(t, 3, g.NumberOfNodes())
}
