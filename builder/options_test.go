package builder_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cimnet/builder"
)

func TestOptions_PanicOnNil(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithLogger(nil) })
}

func TestOptions_LastWins(t *testing.T) {
	a, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(1), builder.WithSeed(7)}, builder.ER(30, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(7)}, builder.ER(30, 0.3))
	require.NoError(t, err)
	require.ElementsMatch(t, a.Edges(), b.Edges())
}

func TestOptions_DefaultStream(t *testing.T) {
	a, err := builder.BuildNetwork(nil, builder.ER(30, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildNetwork(nil, builder.ER(30, 0.3))
	require.NoError(t, err)
	require.ElementsMatch(t, a.Edges(), b.Edges(), "unseeded runs share the default sequence")
}

func TestOptions_Logger(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithLogger(l)}, builder.Regular(4, 1))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "constructor applied")
	require.Contains(t, buf.String(), "edges=4")
}
