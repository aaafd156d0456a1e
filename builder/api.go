// SPDX-License-Identifier: MIT
// Package: cimnet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Apply(t, bopts, cons...). Resolves cfg once, runs cons in order.
//   - BuildNetwork is Apply over a fresh *core.Network.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same inputs/seed and constructor order ⇒ identical topologies.
//   - Safety: never panic; return wrapped sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cimnet/core"
)

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before the first mutation and fail with
//     core.ErrInvalidConfiguration (no panics).
//   - Build through the Topology operations only (EnsureNode, Link).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(t core.Topology[core.ID], cfg builderConfig) error

// Apply resolves the builder configuration from bopts and applies every
// constructor to t in order. Constructors share one RNG stream, so composing
// ER(10, 0.5) twice draws different edges for the second call.
//
// Errors:
//   - ErrConstructFailed for a nil topology or nil constructor.
//   - Constructor errors wrapped as "Apply: %w"; errors.Is still matches
//     core.ErrInvalidConfiguration. No partial cleanup of earlier constructors.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func Apply(t core.Topology[core.ID], bopts []BuilderOption, cons ...Constructor) error {
	if t == nil {
		return fmt.Errorf("%s: nil topology: %w", MethodApply, ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", MethodApply, i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodApply, err)
		}
		cfg.logger.Debug("constructor applied",
			"index", i,
			"nodes", t.NumberOfNodes(),
			"edges", t.NumberOfEdges(),
		)
	}

	return nil
}

// BuildNetwork creates a new *core.Network and applies cons to it.
// On error the partially built network is discarded.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	n := core.NewNetwork()
	if err := Apply(n, bopts, cons...); err != nil {
		return nil, err
	}

	return n, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Node keys are dense indices 0..N-1 in the layout documented per generator.
// Lattices are toroidal; a wraparound that lands on the node itself is skipped.

// FullConnected builds the complete graph K_n (n ≥ 0).
// Complexity: O(n²).
//func FullConnected(n int) Constructor

// WellMixed is FullConnected under its population-model name.
//func WellMixed(n int) Constructor

// Regular builds a ring lattice: node i linked to i+1..i+k (mod n); 0 ≤ k ≤ n-1.
// Complexity: O(n·k).
//func Regular(n, k int) Constructor

// ER builds an Erdős–Rényi G(n,p) graph, one Float64 draw per unordered pair.
// Complexity: O(n²).
//func ER(n int, p float64) Constructor

// Grid builds a toroidal w×h lattice, index y*w+x, with 4 or 8 neighbors.
// Complexity: O(w·h).
//func Grid(w, h, degree int) Constructor

// CustomizableGrid links every cell to each (dx,dy) offset of mask.
// Complexity: O(w·h·|mask|).
//func CustomizableGrid(w, h int, mask []Offset) Constructor

// CustomizableGridRadius is CustomizableGrid(w, h, maskFn(radius)).
//func CustomizableGridRadius(w, h int, radius float64, maskFn MaskFunc) Constructor

// Cubic builds a toroidal l×w×h lattice, index (z*w+y)*l+x.
// Complexity: O(l·w·h).
//func Cubic(l, w, h int) Constructor

// Honeycomb builds the toroidal hexagonal lattice, two nodes per cell.
//func Honeycomb(w, h int) Constructor

// Kagome builds the toroidal trihexagonal lattice, three nodes per cell.
//func Kagome(w, h int) Constructor

// ScaleFree grows a Barabási–Albert network with m attachments per newcomer.
// Complexity: O(n²·m) worst case.
//func ScaleFree(n, m int) Constructor
