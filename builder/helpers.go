// SPDX-License-Identifier: MIT
// Package: cimnet/builder
//
// helpers.go - shared index arithmetic for lattice generators.

package builder

import "github.com/katalvlaran/cimnet/core"

// ensureNodes inserts keys 0..n-1 so that isolated nodes are present.
// Complexity: O(n).
func ensureNodes(t core.Topology[core.ID], n int) {
	for i := 0; i < n; i++ {
		t.EnsureNode(core.ID(i))
	}
}

// linkDistinct links u and v unless they coincide.
func linkDistinct(t core.Topology[core.ID], u, v int) {
	if u == v {
		return
	}
	t.Link(core.ID(u), core.ID(v))
}

// wrap reduces a into [0, n) for any sign of a; n > 0.
func wrap(a, n int) int {
	return ((a % n) + n) % n
}
