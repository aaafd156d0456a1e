// SPDX-License-Identifier: MIT
// Package: cimnet/core
//
// types.go - key and payload defaults, canonical pairs, capability interfaces.

package core

import "cmp"

// ID is the default node key type.
type ID = uint

// None is the empty payload used when nodes or edges carry no data.
type None struct{}

// Pair is an edge endpoint pair. Undirected edge sets are canonicalized so
// that First <= Second; directed edge sets keep First as the source.
type Pair[K cmp.Ordered] struct {
	First, Second K
}

// canonical orders a and b so that the smaller key comes first.
func canonical[K cmp.Ordered](a, b K) Pair[K] {
	if b < a {
		return Pair[K]{First: b, Second: a}
	}

	return Pair[K]{First: a, Second: b}
}

// Graph is the read-only capability shared by Undirected and Directed.
// Exporters and simulations consume networks through it.
type Graph[K cmp.Ordered] interface {
	// HasNode reports whether id is present.
	HasNode(id K) bool
	// HasEdge reports whether the edge id1-id2 (undirected) or arc id1→id2 (directed) exists.
	HasEdge(id1, id2 K) bool
	// IsNeighbor reports adjacency in either direction.
	IsNeighbor(id1, id2 K) bool
	// Degree returns the number of incident edges; 0 for a missing node.
	Degree(id K) int
	// Nodes returns a snapshot of node keys in map order.
	Nodes() []K
	// Neighbors returns a snapshot of adjacent keys in map order.
	Neighbors(id K) []K
	// NumberOfNodes returns |V|.
	NumberOfNodes() int
	// NumberOfEdges returns |E|.
	NumberOfEdges() int
	// IsDirected distinguishes the two engine variants.
	IsDirected() bool
}

// Topology extends Graph with payload-free mutation. Topology generators are
// written against it and build through the public operations only.
type Topology[K cmp.Ordered] interface {
	Graph[K]
	// EnsureNode inserts id with a zero payload if absent.
	EnsureNode(id K)
	// Link inserts the edge id1-id2 (or arc id1→id2) with a zero payload.
	Link(id1, id2 K)
}

// Network is the default undirected instantiation.
type Network = Undirected[ID, None, None]

// DirectedNetwork is the default directed instantiation.
type DirectedNetwork = Directed[ID, None, None]

// NewNetwork returns an empty default undirected network.
func NewNetwork() *Network { return NewUndirected[ID, None, None]() }

// NewDirectedNetwork returns an empty default directed network.
func NewDirectedNetwork() *DirectedNetwork { return NewDirected[ID, None, None]() }

// Compile-time interface checks.
var (
	_ Topology[ID] = (*Network)(nil)
	_ Topology[ID] = (*DirectedNetwork)(nil)
)
