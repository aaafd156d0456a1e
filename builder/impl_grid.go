// SPDX-License-Identifier: MIT
// Package: cimnet/builder
//
// impl_grid.go - toroidal 2-D lattices: Grid, CustomizableGrid,
// CustomizableGridRadius.
//
// Layout: cell (x,y), 0 ≤ x < w, 0 ≤ y < h, has index y*w + x.
// For each cell and each mask offset (dx,dy) the cell is linked to
// ((x+dx) mod w, (y+dy) mod h). Offsets wrapping onto the cell itself are
// skipped. A one-directional mask such as {(1,0)} produces a cycle per row on
// an undirected topology and one arc per cell on a directed one.
//
// Complexity: O(w·h·|mask|) time, O(1) extra space.

package builder

import (
	"math"

	"github.com/katalvlaran/cimnet/core"
)

// Grid returns a Constructor for the w×h torus with degree 4 (VonNeumannMask)
// or 8 (MooreMask) neighbors.
func Grid(w, h, degree int) Constructor {
	return func(t core.Topology[core.ID], cfg builderConfig) error {
		if err := validateDims(MethodGrid, w, h); err != nil {
			return err
		}

		var mask []Offset
		switch degree {
		case VonNeumann:
			mask = VonNeumannMask
		case Moore:
			mask = MooreMask
		default:
			return configErrorf(MethodGrid, "degree=%d not in {%d,%d}", degree, VonNeumann, Moore)
		}
		buildMaskGrid(t, w, h, mask)

		return nil
	}
}

// CustomizableGrid returns a Constructor linking each cell to every offset in mask.
// An empty mask yields w·h isolated nodes.
func CustomizableGrid(w, h int, mask []Offset) Constructor {
	return func(t core.Topology[core.ID], cfg builderConfig) error {
		if err := validateDims(MethodCustomizableGrid, w, h); err != nil {
			return err
		}
		buildMaskGrid(t, w, h, mask)

		return nil
	}
}

// CustomizableGridRadius returns CustomizableGrid(w, h, maskFn(radius)).
// A nil maskFn or a radius that is negative, infinite or NaN fails with
// core.ErrInvalidConfiguration.
func CustomizableGridRadius(w, h int, radius float64, maskFn MaskFunc) Constructor {
	return func(t core.Topology[core.ID], cfg builderConfig) error {
		if maskFn == nil {
			return configErrorf(MethodCustomizableGrid, "nil mask function")
		}
		if !(radius >= 0) || math.IsInf(radius, 1) {
			return configErrorf(MethodCustomizableGrid, "radius=%v must be finite and ≥ 0", radius)
		}

		return CustomizableGrid(w, h, maskFn(radius))(t, cfg)
	}
}

func buildMaskGrid(t core.Topology[core.ID], w, h int, mask []Offset) {
	ensureNodes(t, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := y*w + x
			for _, o := range mask {
				v := wrap(y+o.DY, h)*w + wrap(x+o.DX, w)
				linkDistinct(t, u, v)
			}
		}
	}
}
