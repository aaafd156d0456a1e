// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for cimnet/core.

package core_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cimnet/core"
)

// Common node keys used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
)

// Payloads used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight5 = 5.0
)

// weighted is the payload-carrying instantiation most tests use.
type weighted = core.Undirected[string, string, float64]

// newTriangle builds the undirected triangle A-B, B-C, C-A with weights 1, 2, 5.
func newTriangle(t *testing.T) *weighted {
	t.Helper()
	g := core.NewUndirected[string, string, float64]()
	g.AddEdge(NodeA, NodeB, Weight1)
	g.AddEdge(NodeB, NodeC, Weight2)
	g.AddEdge(NodeC, NodeA, Weight5)
	require.Equal(t, 3, g.NumberOfNodes())
	require.Equal(t, 3, g.NumberOfEdges())

	return g
}

// sorted returns a sorted copy of keys.
func sorted[K cmp.Ordered](keys []K) []K {
	out := slices.Clone(keys)
	slices.Sort(out)

	return out
}

// requireMirrored asserts the undirected mirror invariant for every edge.
func requireMirrored[K cmp.Ordered, N, E any](t *testing.T, g *core.Undirected[K, N, E]) {
	t.Helper()
	for _, e := range g.Edges() {
		require.True(t, g.HasEdge(e.First, e.Second))
		require.True(t, g.HasEdge(e.Second, e.First))
		p1, err := g.Edge(e.First, e.Second)
		require.NoError(t, err)
		p2, err := g.Edge(e.Second, e.First)
		require.NoError(t, err)
		require.Same(t, p1, p2, "mirrored slots must share one payload")
	}
}
