// SPDX-License-Identifier: MIT
// Package: cimnet/builder
//
// impl_honeycomb.go - Honeycomb(w, h) toroidal hexagonal lattice.
//
// Layout: cell c = y*w + x holds sublattice nodes A = 2c and B = 2c+1.
// Edges per cell: A–B, B–A(x+1, y), B–A(x, y+1), all with wraparound.
// Every node has degree 3 when w, h ≥ 2.

package builder

import "github.com/katalvlaran/cimnet/core"

// Honeycomb returns a Constructor for the w×h honeycomb torus (2·w·h nodes).
func Honeycomb(w, h int) Constructor {
	return func(t core.Topology[core.ID], cfg builderConfig) error {
		if err := validateDims(MethodHoneycomb, w, h); err != nil {
			return err
		}

		cell := func(x, y int) int { return wrap(y, h)*w + wrap(x, w) }
		ensureNodes(t, 2*w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := cell(x, y)
				a, b := 2*c, 2*c+1
				linkDistinct(t, a, b)
				linkDistinct(t, b, 2*cell(x+1, y))
				linkDistinct(t, b, 2*cell(x, y+1))
			}
		}

		return nil
	}
}
