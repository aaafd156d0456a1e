package builder_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cimnet/builder"
	"github.com/katalvlaran/cimnet/core"
)

func TestBuilders_Validation(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
	}{
		{"FullConnected(-1)", builder.FullConnected(-1)},
		{"Regular k too large", builder.Regular(6, 6)},
		{"Regular k negative", builder.Regular(6, -1)},
		{"Regular n=0 k=1", builder.Regular(0, 1)},
		{"ER p<0", builder.ER(5, -0.1)},
		{"ER p>1", builder.ER(5, 1.1)},
		{"ER NaN", builder.ER(5, math.NaN())},
		{"ER n<0", builder.ER(-2, 0.5)},
		{"Grid degree 6", builder.Grid(3, 3, 6)},
		{"Grid zero width", builder.Grid(0, 3, 4)},
		{"CustomizableGrid negative", builder.CustomizableGrid(3, -1, builder.VonNeumannMask)},
		{"CustomizableGridRadius nil fn", builder.CustomizableGridRadius(3, 3, 1, nil)},
		{"CustomizableGridRadius negative", builder.CustomizableGridRadius(3, 3, -1, builder.ManhattanMask)},
		{"CustomizableGridRadius NaN", builder.CustomizableGridRadius(3, 3, math.NaN(), builder.EuclideanMask)},
		{"CustomizableGridRadius -Inf", builder.CustomizableGridRadius(3, 3, math.Inf(-1), builder.ManhattanMask)},
		{"CustomizableGridRadius +Inf", builder.CustomizableGridRadius(3, 3, math.Inf(1), builder.ManhattanMask)},
		{"Cubic zero", builder.Cubic(3, 0, 3)},
		{"Honeycomb zero", builder.Honeycomb(0, 0)},
		{"Kagome zero", builder.Kagome(2, 0)},
		{"ScaleFree m>n", builder.ScaleFree(3, 4)},
		{"ScaleFree m<0", builder.ScaleFree(3, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewNetwork()
			g.Link(100, 101)

			err := builder.Apply(g, nil, tc.ctor)
			require.Error(t, err)
			require.ErrorIs(t, err, core.ErrInvalidConfiguration)

			// Validation precedes mutation.
			require.Equal(t, 2, g.NumberOfNodes())
			require.Equal(t, 1, g.NumberOfEdges())
		})
	}
}

func TestBuilders_ErrorMessage(t *testing.T) {
	_, err := builder.BuildNetwork(nil, builder.Regular(6, 7))
	require.EqualError(t, err, "Apply: Regular: k=7 not in [0,5]: core: invalid configuration")
}

func TestApply_Guards(t *testing.T) {
	err := builder.Apply(nil, nil, builder.FullConnected(2))
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	err = builder.Apply(core.NewNetwork(), nil, builder.FullConnected(2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.False(t, errors.Is(err, core.ErrInvalidConfiguration))
}

func TestBuildNetwork_DiscardsOnError(t *testing.T) {
	g, err := builder.BuildNetwork(nil, builder.FullConnected(3), builder.ER(3, 2))
	require.Nil(t, g)
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)
}
