// SPDX-License-Identifier: MIT
// Package: cimnet/builder
//
// impl_kagome.go - Kagome(w, h) toroidal trihexagonal lattice.
//
// Layout: cell c = y*w + x holds nodes A = 3c, B = 3c+1, C = 3c+2.
// Up-triangle: A–B, B–C, C–A. Down-triangle links to neighboring cells:
// B–A(x+1, y), C–A(x, y+1), B–C(x+1, y-1), all with wraparound.
// Every node has degree 4 when w, h ≥ 2.

package builder

import "github.com/katalvlaran/cimnet/core"

// Kagome returns a Constructor for the w×h kagome torus (3·w·h nodes).
func Kagome(w, h int) Constructor {
	return func(t core.Topology[core.ID], cfg builderConfig) error {
		if err := validateDims(MethodKagome, w, h); err != nil {
			return err
		}

		cell := func(x, y int) int { return wrap(y, h)*w + wrap(x, w) }
		ensureNodes(t, 3*w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := cell(x, y)
				a, b, cc := 3*c, 3*c+1, 3*c+2
				linkDistinct(t, a, b)
				linkDistinct(t, b, cc)
				linkDistinct(t, cc, a)
				linkDistinct(t, b, 3*cell(x+1, y))
				linkDistinct(t, cc, 3*cell(x, y+1))
				linkDistinct(t, b, 3*cell(x+1, y-1)+2)
			}
		}

		return nil
	}
}
