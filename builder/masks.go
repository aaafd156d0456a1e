// SPDX-License-Identifier: MIT
// Package: cimnet/builder
//
// masks.go - neighborhood offset masks for CustomizableGrid.
//
// A mask is a list of (DX, DY) offsets. The radius builders enumerate the
// first quadrant (DX ≥ 0, DY ≥ 0) and reflect each offset across both axes,
// dropping the origin and duplicates. Output order is deterministic:
// ascending DX, then DY, then reflections (+,+), (-,+), (+,-), (-,-).

package builder

import "math"

// Offset is one relative lattice displacement.
type Offset struct {
	DX, DY int
}

// MaskFunc maps a radius to an offset mask.
type MaskFunc func(radius float64) []Offset

// VonNeumannMask is the axis-neighbor mask used by Grid(w, h, 4).
var VonNeumannMask = []Offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// MooreMask is the axis-plus-diagonal mask used by Grid(w, h, 8).
var MooreMask = []Offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// ManhattanMask returns every offset with |DX|+|DY| ≤ radius, origin excluded.
// A negative or NaN radius yields an empty mask.
func ManhattanMask(radius float64) []Offset {
	return quadrantMask(radius, func(dx, dy int) bool {
		return float64(dx+dy) <= radius
	})
}

// EuclideanMask returns every offset with DX²+DY² ≤ radius², origin excluded.
func EuclideanMask(radius float64) []Offset {
	return quadrantMask(radius, func(dx, dy int) bool {
		return float64(dx*dx+dy*dy) <= radius*radius
	})
}

// quadrantMask reflects the first-quadrant offsets accepted by keep.
func quadrantMask(radius float64, keep func(dx, dy int) bool) []Offset {
	if !(radius >= 0) {
		return nil
	}
	r := int(math.Floor(radius))

	var out []Offset
	seen := make(map[Offset]struct{})
	for dx := 0; dx <= r; dx++ {
		for dy := 0; dy <= r; dy++ {
			if (dx == 0 && dy == 0) || !keep(dx, dy) {
				continue
			}
			for _, o := range []Offset{{dx, dy}, {-dx, dy}, {dx, -dy}, {-dx, -dy}} {
				if _, dup := seen[o]; dup {
					continue
				}
				seen[o] = struct{}{}
				out = append(out, o)
			}
		}
	}

	return out
}
