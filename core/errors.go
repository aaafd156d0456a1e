// SPDX-License-Identifier: MIT
// Package: cimnet/core
//
// errors.go - closed error taxonomy of the network engine.
//
// Error policy:
//   - Four sentinels; callers branch with errors.Is.
//   - Typed errors carry the offending keys and unwrap to their sentinel.
//   - Errors are raised synchronously and never retried internally.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for network operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node key absent from the instance.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNoNeighbors indicates a random neighbor/successor/predecessor was
	// requested on a node with none.
	ErrNoNeighbors = errors.New("core: node has no neighbors")

	// ErrInvalidConfiguration indicates a topology generator received an
	// out-of-range parameter.
	ErrInvalidConfiguration = errors.New("core: invalid configuration")
)

// NodeNotFoundError reports a missing node key.
type NodeNotFoundError[K any] struct {
	ID K
}

func (e *NodeNotFoundError[K]) Error() string {
	return fmt.Sprintf("core: node %v not found", e.ID)
}

// Unwrap returns ErrNodeNotFound.
func (e *NodeNotFoundError[K]) Unwrap() error { return ErrNodeNotFound }

// EdgeNotFoundError reports a missing edge. Directed selects the message
// phrasing: "from … to" for arcs, "between … and" for undirected edges.
type EdgeNotFoundError[K any] struct {
	From, To K
	Directed bool
}

func (e *EdgeNotFoundError[K]) Error() string {
	if e.Directed {
		return fmt.Sprintf("core: no edge from %v to %v", e.From, e.To)
	}

	return fmt.Sprintf("core: no edge between %v and %v", e.From, e.To)
}

// Unwrap returns ErrEdgeNotFound.
func (e *EdgeNotFoundError[K]) Unwrap() error { return ErrEdgeNotFound }

// Neighbor kinds used by NoNeighborsError.
const (
	KindNeighbors    = "neighbors"
	KindSuccessors   = "successors"
	KindPredecessors = "predecessors"
)

// NoNeighborsError reports a random pick on a node with an empty slot.
type NoNeighborsError[K any] struct {
	ID   K
	Kind string
}

func (e *NoNeighborsError[K]) Error() string {
	return fmt.Sprintf("core: node %v has no %s", e.ID, e.Kind)
}

// Unwrap returns ErrNoNeighbors.
func (e *NoNeighborsError[K]) Unwrap() error { return ErrNoNeighbors }

func nodeNotFound[K any](id K) error { return &NodeNotFoundError[K]{ID: id} }

func edgeNotFound[K any](from, to K, directed bool) error {
	return &EdgeNotFoundError[K]{From: from, To: to, Directed: directed}
}

func noNeighbors[K any](id K, kind string) error {
	return &NoNeighborsError[K]{ID: id, Kind: kind}
}
