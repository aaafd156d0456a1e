package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cimnet/builder"
)

func TestManhattanMask(t *testing.T) {
	require.Equal(t, []builder.Offset{{DX: 0, DY: 1}, {DX: 0, DY: -1}, {DX: 1, DY: 0}, {DX: -1, DY: 0}}, builder.ManhattanMask(1))
	require.Len(t, builder.ManhattanMask(2), 12)
	require.Len(t, builder.ManhattanMask(2.9), 12)
	require.Empty(t, builder.ManhattanMask(0))
	require.Empty(t, builder.ManhattanMask(-1))
	require.Empty(t, builder.ManhattanMask(math.NaN()))
}

func TestEuclideanMask(t *testing.T) {
	require.Len(t, builder.EuclideanMask(1), 4)
	require.Len(t, builder.EuclideanMask(math.Sqrt2), 8)
	require.Len(t, builder.EuclideanMask(2), 12)
	for _, o := range builder.EuclideanMask(3) {
		require.LessOrEqual(t, o.DX*o.DX+o.DY*o.DY, 9)
		require.False(t, o.DX == 0 && o.DY == 0)
	}
}

func TestMaskNoDuplicates(t *testing.T) {
	for _, fn := range []builder.MaskFunc{builder.ManhattanMask, builder.EuclideanMask} {
		seen := map[builder.Offset]bool{}
		for _, o := range fn(4) {
			require.False(t, seen[o], "duplicate %v", o)
			seen[o] = true
		}
	}
}
