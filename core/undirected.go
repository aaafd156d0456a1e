// SPDX-License-Identifier: MIT
// Package: cimnet/core
//
// undirected.go - the undirected network engine.
//
// Invariants (hold after every public method):
//   - id ∈ nodes  ⇔  id ∈ adj.
//   - adj[a][b] = h  ⇔  adj[b][a] = h, both naming one arena payload.
//   - No slot references a key absent from nodes.
//   - edges.live() == NumberOfEdges().

package core

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/katalvlaran/cimnet/random"
)

// Undirected is an undirected network with node payload N and edge payload E.
// The zero value is not usable; construct with NewUndirected.
type Undirected[K cmp.Ordered, N any, E any] struct {
	nodes map[K]*N
	adj   map[K]map[K]handle
	edges edgeArena[E]
}

// NewUndirected returns an empty undirected network.
// Complexity: O(1).
func NewUndirected[K cmp.Ordered, N any, E any]() *Undirected[K, N, E] {
	return &Undirected[K, N, E]{
		nodes: make(map[K]*N),
		adj:   make(map[K]map[K]handle),
	}
}

// IsDirected reports false.
func (g *Undirected[K, N, E]) IsDirected() bool { return false }

// AddNode inserts id with payload data, overwriting the payload of an
// existing node in place. Existing edges are kept.
// Complexity: O(1).
func (g *Undirected[K, N, E]) AddNode(id K, data N) {
	if p, ok := g.nodes[id]; ok {
		*p = data
		return
	}
	p := new(N)
	*p = data
	g.nodes[id] = p
	g.adj[id] = make(map[K]handle)
}

// EnsureNode inserts id with a zero payload if it is absent; no-op otherwise.
// Complexity: O(1).
func (g *Undirected[K, N, E]) EnsureNode(id K) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = new(N)
	g.adj[id] = make(map[K]handle)
}

// AddEdge inserts the edge id1-id2 carrying data, adding missing endpoints
// with zero payloads. Re-adding an existing edge releases the prior payload
// before the new one is installed in both slots.
// Complexity: O(1) amortized.
func (g *Undirected[K, N, E]) AddEdge(id1, id2 K, data E) {
	g.EnsureNode(id1)
	g.EnsureNode(id2)

	if old, ok := g.adj[id1][id2]; ok {
		g.edges.release(old)
	}
	h := g.edges.alloc(data)
	g.adj[id1][id2] = h
	g.adj[id2][id1] = h // same slot for a self-loop
}

// Link inserts the edge id1-id2 with a zero payload.
func (g *Undirected[K, N, E]) Link(id1, id2 K) {
	var zero E
	g.AddEdge(id1, id2, zero)
}

// RemoveEdge deletes the edge id1-id2 and releases its payload once.
//
// Errors:
//   - NodeNotFoundError if either endpoint is missing.
//   - EdgeNotFoundError if the endpoints exist but are not adjacent.
//
// Complexity: O(1).
func (g *Undirected[K, N, E]) RemoveEdge(id1, id2 K) error {
	if err := g.requireNodes(id1, id2); err != nil {
		return err
	}
	h, ok := g.adj[id1][id2]
	if !ok {
		return edgeNotFound(id1, id2, false)
	}
	g.edges.release(h)
	delete(g.adj[id1], id2)
	delete(g.adj[id2], id1)

	return nil
}

// RemoveNode deletes id after removing every incident edge.
// Returns NodeNotFoundError for a missing node.
// Complexity: O(deg(id)).
func (g *Undirected[K, N, E]) RemoveNode(id K) error {
	nbrs, ok := g.adj[id]
	if !ok {
		return nodeNotFound(id)
	}
	for _, nb := range slices.Collect(maps.Keys(nbrs)) {
		if err := g.RemoveEdge(id, nb); err != nil {
			return err
		}
	}
	delete(g.adj, id)
	delete(g.nodes, id)

	return nil
}

// HasNode reports whether id is present.
func (g *Undirected[K, N, E]) HasNode(id K) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether id1 and id2 are adjacent. Missing nodes yield false.
func (g *Undirected[K, N, E]) HasEdge(id1, id2 K) bool {
	_, ok := g.adj[id1][id2]
	return ok
}

// IsNeighbor is HasEdge.
func (g *Undirected[K, N, E]) IsNeighbor(id1, id2 K) bool { return g.HasEdge(id1, id2) }

// Node returns a mutable reference to the payload of id.
// The pointer stays valid until the node is removed.
func (g *Undirected[K, N, E]) Node(id K) (*N, error) {
	p, ok := g.nodes[id]
	if !ok {
		return nil, nodeNotFound(id)
	}

	return p, nil
}

// Edge returns a mutable reference to the payload of id1-id2. Edge(a,b) and
// Edge(b,a) return the same pointer.
//
// Errors:
//   - NodeNotFoundError naming the first missing endpoint.
//   - EdgeNotFoundError if the endpoints are not adjacent.
func (g *Undirected[K, N, E]) Edge(id1, id2 K) (*E, error) {
	if err := g.requireNodes(id1, id2); err != nil {
		return nil, err
	}
	h, ok := g.adj[id1][id2]
	if !ok {
		return nil, edgeNotFound(id1, id2, false)
	}

	return g.edges.get(h), nil
}

// Degree returns the number of adjacency slots of id; a self-loop counts once.
// A missing node has degree 0; use HasNode to tell the cases apart.
func (g *Undirected[K, N, E]) Degree(id K) int { return len(g.adj[id]) }

// Neighbors returns a snapshot of the keys adjacent to id, in map order.
func (g *Undirected[K, N, E]) Neighbors(id K) []K {
	return slices.Collect(maps.Keys(g.adj[id]))
}

// NeighborView exposes the neighbors of id without copying. The view is
// invalidated by any structural mutation of id; mutating while ranging is undefined.
func (g *Undirected[K, N, E]) NeighborView(id K) iter.Seq[K] {
	return maps.Keys(g.adj[id])
}

// RandomNeighbor draws an index in [0, Degree(id)) from r and returns the
// neighbor at that position in map iteration order.
//
// Errors:
//   - NodeNotFoundError for a missing node.
//   - NoNeighborsError for a node of degree 0.
//
// Complexity: O(deg(id)).
func (g *Undirected[K, N, E]) RandomNeighbor(id K, r *random.MT) (K, error) {
	return pickRandom(g.adj, id, r, KindNeighbors)
}

// Nodes returns a snapshot of all node keys in map order.
func (g *Undirected[K, N, E]) Nodes() []K {
	return slices.Collect(maps.Keys(g.nodes))
}

// SortedNodes returns all node keys in ascending order.
// Complexity: O(V log V).
func (g *Undirected[K, N, E]) SortedNodes() []K {
	return slices.Sorted(maps.Keys(g.nodes))
}

// Edges returns each edge once as a canonical pair (First <= Second).
// Complexity: O(V + E).
func (g *Undirected[K, N, E]) Edges() []Pair[K] {
	out := make([]Pair[K], 0, g.edges.live())
	for u, nbrs := range g.adj {
		for v := range nbrs {
			if u <= v {
				out = append(out, canonical(u, v))
			}
		}
	}

	return out
}

// NumberOfNodes returns |V|.
func (g *Undirected[K, N, E]) NumberOfNodes() int { return len(g.nodes) }

// NumberOfEdges returns |E|, counting each edge (and self-loop) once.
func (g *Undirected[K, N, E]) NumberOfEdges() int { return g.edges.live() }

// Clear removes every node and edge.
func (g *Undirected[K, N, E]) Clear() {
	g.nodes = make(map[K]*N)
	g.adj = make(map[K]map[K]handle)
	g.edges.reset()
}

// String summarizes the network size.
func (g *Undirected[K, N, E]) String() string {
	return fmt.Sprintf("Network(nodes=%d, edges=%d)", g.NumberOfNodes(), g.NumberOfEdges())
}

// requireNodes returns NodeNotFoundError naming the first absent key.
func (g *Undirected[K, N, E]) requireNodes(ids ...K) error {
	for _, id := range ids {
		if _, ok := g.nodes[id]; !ok {
			return nodeNotFound(id)
		}
	}

	return nil
}

// pickRandom implements the random neighbor/successor/predecessor draw over
// one adjacency index.
func pickRandom[K cmp.Ordered](index map[K]map[K]handle, id K, r *random.MT, kind string) (K, error) {
	var zero K
	slot, ok := index[id]
	if !ok {
		return zero, nodeNotFound(id)
	}
	if len(slot) == 0 {
		return zero, noNeighbors(id, kind)
	}
	if r == nil {
		r = random.Default()
	}

	i := r.Intn(len(slot))
	for k := range slot {
		if i == 0 {
			return k, nil
		}
		i--
	}

	return zero, noNeighbors(id, kind)
}
