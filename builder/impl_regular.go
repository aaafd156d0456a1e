// SPDX-License-Identifier: MIT
// Package: cimnet/builder
//
// impl_regular.go - Regular(n, k) ring lattice.
//
// Contract:
//   • n ≥ 0, 0 ≤ k ≤ n-1 (n = 0 accepts only k = 0).
//   • Node i is linked clockwise to i+1..i+k (mod n).
//   • For k ≤ (n-1)/2 every node has degree exactly 2k; larger k revisits
//     pairs, which replaces the existing edge instead of duplicating it.

package builder

import "github.com/katalvlaran/cimnet/core"

// Regular returns a Constructor for the k-nearest-neighbor ring on n nodes.
func Regular(n, k int) Constructor {
	return func(t core.Topology[core.ID], cfg builderConfig) error {
		if err := validateMin(MethodRegular, "n", n, MinNodes); err != nil {
			return err
		}
		if err := validateRange(MethodRegular, "k", k, 0, max(n-1, 0)); err != nil {
			return err
		}

		ensureNodes(t, n)
		for i := 0; i < n; i++ {
			for j := 1; j <= k; j++ {
				t.Link(core.ID(i), core.ID((i+j)%n))
			}
		}

		return nil
	}
}
