// SPDX-License-Identifier: MIT
// Package: cimnet/builder
//
// impl_er.go - ER(n, p) Erdős–Rényi random graph.
//
// Contract:
//   • n ≥ 0, p ∈ [0,1] (NaN rejected).
//   • Pairs are visited in (i,j), i<j order; one cfg.rng.Float64() draw per
//     pair; the edge exists iff draw < p. p=0 yields no edges, p=1 yields K_n.
//
// Determinism: fixed seed ⇒ identical edge set.

package builder

import "github.com/katalvlaran/cimnet/core"

// ER returns a Constructor for G(n,p).
func ER(n int, p float64) Constructor {
	return func(t core.Topology[core.ID], cfg builderConfig) error {
		if err := validateMin(MethodER, "n", n, MinNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodER, p); err != nil {
			return err
		}

		ensureNodes(t, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					t.Link(core.ID(i), core.ID(j))
				}
			}
		}

		return nil
	}
}
