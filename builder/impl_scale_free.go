// SPDX-License-Identifier: MIT
// Package: cimnet/builder
//
// impl_scale_free.go - ScaleFree(n, m) Barabási–Albert growth.
//
// Contract:
//   • n ≥ 0, 0 ≤ m ≤ n.
//   • Nodes 0..m-1 start isolated. Each newcomer cur = m..n-1 makes m
//     attachment attempts against the nodes 0..cur-1.
//
// Attachment attempt (sequential accept/reject scan):
//
//	t := budget                       // remaining total degree of 0..cur-1
//	for j := 0; j < cur; j++ {
//	    if linked(cur, j) { continue }
//	    t -= deg(j)
//	    accept j with probability deg(j) / (t + deg(j))
//	}
//
// On acceptance the edge cur–j is added, budget drops by deg(j) as seen by
// the scan, and the attempt ends. When t + deg(j) is zero (no degree mass
// left, e.g. the first newcomer facing isolated seeds) the candidate is
// accepted outright. This 0/0 rule is a decision of this package: a literal
// float comparison against 0/0 is NaN-false and would leave the seeds
// unattached. An attempt whose scan accepts nobody adds no edge; the
// newcomer then ends up with fewer than m links. This under-samples compared
// to exact degree-proportional selection and is kept as is.
//
// Complexity: O(n·m·n) worst case; one Float64 draw per scanned candidate.

package builder

import "github.com/katalvlaran/cimnet/core"

// ScaleFree returns a Constructor for an n-node preferential-attachment network.
func ScaleFree(n, m int) Constructor {
	return func(t core.Topology[core.ID], cfg builderConfig) error {
		if err := validateMin(MethodScaleFree, "n", n, MinNodes); err != nil {
			return err
		}
		if err := validateRange(MethodScaleFree, "m", m, 0, n); err != nil {
			return err
		}

		ensureNodes(t, m)
		skipped := 0
		for cur := m; cur < n; cur++ {
			newcomer := core.ID(cur)
			t.EnsureNode(newcomer)

			budget := 0
			for j := 0; j < cur; j++ {
				budget += t.Degree(core.ID(j))
			}

			for range m {
				if !attach(t, cfg, newcomer, cur, &budget) {
					skipped++
				}
			}
		}
		if skipped > 0 {
			cfg.logger.Debug("scale-free attempts without target", "n", n, "m", m, "skipped", skipped)
		}

		return nil
	}
}

// attach runs one accept/reject scan for newcomer over keys 0..cur-1.
// It reports whether an edge was added.
func attach(t core.Topology[core.ID], cfg builderConfig, newcomer core.ID, cur int, budget *int) bool {
	rest := *budget
	for j := 0; j < cur; j++ {
		cand := core.ID(j)
		if t.HasEdge(newcomer, cand) {
			continue
		}
		deg := t.Degree(cand)
		rest -= deg

		weight := rest + deg
		if weight <= 0 || cfg.rng.Float64()*float64(weight) < float64(deg) {
			t.Link(newcomer, cand)
			*budget -= deg

			return true
		}
	}

	return false
}
