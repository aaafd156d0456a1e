// SPDX-License-Identifier: MIT
// Package: cimnet/core
//
// directed.go - the directed network engine.
//
// Invariants (hold after every public method):
//   - id ∈ nodes  ⇔  id ∈ succ  ⇔  id ∈ pred.
//   - succ[a][b] = h  ⇔  pred[b][a] = h.
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

// Directed is a directed network with node payload N and arc payload E.
// The zero value is not usable; construct with NewDirected.
type Directed[K cmp.Ordered, N any, E any] struct {
	nodes map[K]*N
	succ  map[K]map[K]handle
	pred  map[K]map[K]handle
	edges edgeArena[E]
}

// NewDirected returns an empty directed network.
func NewDirected[K cmp.Ordered, N any, E any]() *Directed[K, N, E] {
	return &Directed[K, N, E]{
		nodes: make(map[K]*N),
		succ:  make(map[K]map[K]handle),
		pred:  make(map[K]map[K]handle),
	}
}

// IsDirected reports true.
func (g *Directed[K, N, E]) IsDirected() bool { return true }

// AddNode inserts id with payload data, overwriting an existing payload in place.
func (g *Directed[K, N, E]) AddNode(id K, data N) {
	if p, ok := g.nodes[id]; ok {
		*p = data
		return
	}
	p := new(N)
	*p = data
	g.nodes[id] = p
	g.succ[id] = make(map[K]handle)
	g.pred[id] = make(map[K]handle)
}

// EnsureNode inserts id with a zero payload if it is absent.
func (g *Directed[K, N, E]) EnsureNode(id K) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = new(N)
	g.succ[id] = make(map[K]handle)
	g.pred[id] = make(map[K]handle)
}

// AddEdge inserts the arc from→to carrying data, adding missing endpoints.
// An existing arc has its payload replaced; the reverse arc is untouched.
// Complexity: O(1) amortized.
func (g *Directed[K, N, E]) AddEdge(from, to K, data E) {
	g.EnsureNode(from)
	g.EnsureNode(to)

	if old, ok := g.succ[from][to]; ok {
		g.edges.release(old)
	}
	h := g.edges.alloc(data)
	g.succ[from][to] = h
	g.pred[to][from] = h
}

// Link inserts the arc from→to with a zero payload.
func (g *Directed[K, N, E]) Link(from, to K) {
	var zero E
	g.AddEdge(from, to, zero)
}

// RemoveEdge deletes the arc from→to.
//
// Errors:
//   - NodeNotFoundError if either endpoint is missing.
//   - EdgeNotFoundError if the arc does not exist.
func (g *Directed[K, N, E]) RemoveEdge(from, to K) error {
	if err := g.requireNodes(from, to); err != nil {
		return err
	}
	h, ok := g.succ[from][to]
	if !ok {
		return edgeNotFound(from, to, true)
	}
	g.edges.release(h)
	delete(g.succ[from], to)
	delete(g.pred[to], from)

	return nil
}

// RemoveNode deletes id with all outgoing and then all incoming arcs.
// Complexity: O(in(id) + out(id)).
func (g *Directed[K, N, E]) RemoveNode(id K) error {
	if !g.HasNode(id) {
		return nodeNotFound(id)
	}
	for _, to := range slices.Collect(maps.Keys(g.succ[id])) {
		if err := g.RemoveEdge(id, to); err != nil {
			return err
		}
	}
	for _, from := range slices.Collect(maps.Keys(g.pred[id])) {
		if err := g.RemoveEdge(from, id); err != nil {
			return err
		}
	}
	delete(g.succ, id)
	delete(g.pred, id)
	delete(g.nodes, id)

	return nil
}

// HasNode reports whether id is present.
func (g *Directed[K, N, E]) HasNode(id K) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether the arc from→to exists.
func (g *Directed[K, N, E]) HasEdge(from, to K) bool { return g.HasSuccessor(from, to) }

// HasSuccessor reports whether to is a successor of from.
func (g *Directed[K, N, E]) HasSuccessor(from, to K) bool {
	_, ok := g.succ[from][to]
	return ok
}

// HasPredecessor reports whether from is a predecessor of to.
func (g *Directed[K, N, E]) HasPredecessor(to, from K) bool {
	_, ok := g.pred[to][from]
	return ok
}

// IsNeighbor reports an arc in either direction between id1 and id2.
func (g *Directed[K, N, E]) IsNeighbor(id1, id2 K) bool {
	return g.HasSuccessor(id1, id2) || g.HasPredecessor(id1, id2)
}

// Node returns a mutable reference to the payload of id.
func (g *Directed[K, N, E]) Node(id K) (*N, error) {
	p, ok := g.nodes[id]
	if !ok {
		return nil, nodeNotFound(id)
	}

	return p, nil
}

// Edge returns a mutable reference to the payload of the arc from→to.
func (g *Directed[K, N, E]) Edge(from, to K) (*E, error) {
	if err := g.requireNodes(from, to); err != nil {
		return nil, err
	}
	h, ok := g.succ[from][to]
	if !ok {
		return nil, edgeNotFound(from, to, true)
	}

	return g.edges.get(h), nil
}

// InDegree returns the number of predecessors of id; 0 for a missing node.
func (g *Directed[K, N, E]) InDegree(id K) int { return len(g.pred[id]) }

// OutDegree returns the number of successors of id; 0 for a missing node.
func (g *Directed[K, N, E]) OutDegree(id K) int { return len(g.succ[id]) }

// Degree returns InDegree + OutDegree.
func (g *Directed[K, N, E]) Degree(id K) int { return g.InDegree(id) + g.OutDegree(id) }

// Successors returns a snapshot of the successors of id.
func (g *Directed[K, N, E]) Successors(id K) []K {
	return slices.Collect(maps.Keys(g.succ[id]))
}

// Predecessors returns a snapshot of the predecessors of id.
func (g *Directed[K, N, E]) Predecessors(id K) []K {
	return slices.Collect(maps.Keys(g.pred[id]))
}

// SuccessorView exposes the successors of id without copying.
func (g *Directed[K, N, E]) SuccessorView(id K) iter.Seq[K] { return maps.Keys(g.succ[id]) }

// PredecessorView exposes the predecessors of id without copying.
func (g *Directed[K, N, E]) PredecessorView(id K) iter.Seq[K] { return maps.Keys(g.pred[id]) }

// Neighbors returns the union of successors and predecessors, each key once.
func (g *Directed[K, N, E]) Neighbors(id K) []K {
	out := g.Successors(id)
	for k := range g.pred[id] {
		if _, dup := g.succ[id][k]; !dup {
			out = append(out, k)
		}
	}

	return out
}

// RandomSuccessor draws a successor of id using r.
// Errors: NodeNotFoundError; NoNeighborsError with Kind "successors".
func (g *Directed[K, N, E]) RandomSuccessor(id K, r *random.MT) (K, error) {
	return pickRandom(g.succ, id, r, KindSuccessors)
}

// RandomPredecessor draws a predecessor of id using r.
// Errors: NodeNotFoundError; NoNeighborsError with Kind "predecessors".
func (g *Directed[K, N, E]) RandomPredecessor(id K, r *random.MT) (K, error) {
	return pickRandom(g.pred, id, r, KindPredecessors)
}

// Nodes returns a snapshot of all node keys in map order.
func (g *Directed[K, N, E]) Nodes() []K { return slices.Collect(maps.Keys(g.nodes)) }

// SortedNodes returns all node keys in ascending order.
func (g *Directed[K, N, E]) SortedNodes() []K { return slices.Sorted(maps.Keys(g.nodes)) }

// Edges returns every arc as an ordered (source, target) pair.
func (g *Directed[K, N, E]) Edges() []Pair[K] {
	out := make([]Pair[K], 0, g.edges.live())
	for u, tos := range g.succ {
		for v := range tos {
			out = append(out, Pair[K]{First: u, Second: v})
		}
	}

	return out
}

// NumberOfNodes returns |V|.
func (g *Directed[K, N, E]) NumberOfNodes() int { return len(g.nodes) }

// NumberOfEdges returns the number of arcs.
func (g *Directed[K, N, E]) NumberOfEdges() int { return g.edges.live() }

// Clear removes every node and arc.
func (g *Directed[K, N, E]) Clear() {
	g.nodes = make(map[K]*N)
	g.succ = make(map[K]map[K]handle)
	g.pred = make(map[K]map[K]handle)
	g.edges.reset()
}

// String summarizes the network size.
func (g *Directed[K, N, E]) String() string {
	return fmt.Sprintf("DirectedNetwork(nodes=%d, edges=%d)", g.NumberOfNodes(), g.NumberOfEdges())
}

func (g *Directed[K, N, E]) requireNodes(ids ...K) error {
	for _, id := range ids {
		if _, ok := g.nodes[id]; !ok {
			return nodeNotFound(id)
		}
	}

	return nil
}
