// SPDX-License-Identifier: MIT
// Package: cimnet/core
//
// convert.go - equivalence-preserving conversions between the two engines
// and deep copies.

package core

import "cmp"

// Clone returns an independent copy of g. Payloads are copied by value; any
// pointers inside N or E are shared.
// Complexity: O(V + E).
func (g *Undirected[K, N, E]) Clone() *Undirected[K, N, E] {
	out := NewUndirected[K, N, E]()
	for id, p := range g.nodes {
		out.AddNode(id, *p)
	}
	for _, e := range g.Edges() {
		out.AddEdge(e.First, e.Second, *g.edges.get(g.adj[e.First][e.Second]))
	}

	return out
}

// Clone returns an independent copy of g.
func (g *Directed[K, N, E]) Clone() *Directed[K, N, E] {
	out := NewDirected[K, N, E]()
	for id, p := range g.nodes {
		out.AddNode(id, *p)
	}
	for from, tos := range g.succ {
		for to, h := range tos {
			out.AddEdge(from, to, *g.edges.get(h))
		}
	}

	return out
}

// ToDirected turns each undirected edge a-b into the arcs a→b and b→a, each
// owning its own copy of the payload. A self-loop becomes one arc.
// Node payloads are copied by value.
// Complexity: O(V + E).
func ToDirected[K cmp.Ordered, N any, E any](u *Undirected[K, N, E]) *Directed[K, N, E] {
	d := NewDirected[K, N, E]()
	for id, p := range u.nodes {
		d.AddNode(id, *p)
	}
	for a, nbrs := range u.adj {
		for b, h := range nbrs {
			d.AddEdge(a, b, *u.edges.get(h))
		}
	}

	return d
}

// ToUndirected collapses arcs into undirected edges. When both a→b and b→a
// exist, the payload of the arc leaving the smaller key is kept.
// Complexity: O(V + E).
func ToUndirected[K cmp.Ordered, N any, E any](d *Directed[K, N, E]) *Undirected[K, N, E] {
	u := NewUndirected[K, N, E]()
	for id, p := range d.nodes {
		u.AddNode(id, *p)
	}
	for a, tos := range d.succ {
		for b, h := range tos {
			if a > b && d.HasSuccessor(b, a) {
				continue
			}
			u.AddEdge(a, b, *d.edges.get(h))
		}
	}

	return u
}
