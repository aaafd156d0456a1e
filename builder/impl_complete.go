// SPDX-License-Identifier: MIT
// Package: cimnet/builder
//
// impl_complete.go - FullConnected(n) and its WellMixed alias.
//
// Contract:
//   • n ≥ 0 (else core.ErrInvalidConfiguration).
//   • Nodes 0..n-1; each unordered pair {i,j}, i<j, linked exactly once.
//
// Complexity:
//   • Time: O(n²) edge emission. Space: O(1) extra.

package builder

import "github.com/katalvlaran/cimnet/core"

// FullConnected returns a Constructor that builds the complete graph K_n.
func FullConnected(n int) Constructor {
	return func(t core.Topology[core.ID], cfg builderConfig) error {
		if err := validateMin(MethodFullConnected, "n", n, MinNodes); err != nil {
			return err
		}

		ensureNodes(t, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				t.Link(core.ID(i), core.ID(j))
			}
		}

		return nil
	}
}

// WellMixed returns FullConnected(n): every individual meets every other.
func WellMixed(n int) Constructor { return FullConnected(n) }
