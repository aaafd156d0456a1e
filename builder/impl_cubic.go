// SPDX-License-Identifier: MIT
// Package: cimnet/builder
//
// impl_cubic.go - Cubic(l, w, h) toroidal 3-D lattice.
//
// Layout: cell (x,y,z) has index (z*w + y)*l + x. Each cell is linked to its
// +x, +y and +z neighbor with wraparound, so every node has degree 6 when
// all dimensions are ≥ 3.

package builder

import "github.com/katalvlaran/cimnet/core"

// Cubic returns a Constructor for the l×w×h simple cubic torus.
func Cubic(l, w, h int) Constructor {
	return func(t core.Topology[core.ID], cfg builderConfig) error {
		if err := validateDims(MethodCubic, l, w, h); err != nil {
			return err
		}

		idx := func(x, y, z int) int { return (z*w+y)*l + x }
		ensureNodes(t, l*w*h)
		for z := 0; z < h; z++ {
			for y := 0; y < w; y++ {
				for x := 0; x < l; x++ {
					u := idx(x, y, z)
					linkDistinct(t, u, idx((x+1)%l, y, z))
					linkDistinct(t, u, idx(x, (y+1)%w, z))
					linkDistinct(t, u, idx(x, y, (z+1)%h))
				}
			}
		}

		return nil
	}
}
