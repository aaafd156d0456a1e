// Package builder provides deterministic topology generators for cimnet
// networks in the functional-options style.
//
// A generator is a Constructor closure applied to any core.Topology[core.ID]
// (undirected or directed). Apply runs several constructors against one
// topology with a single resolved configuration; BuildNetwork does the same
// on a fresh *core.Network:
//
//	net, err := builder.BuildNetwork(
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.ScaleFree(1000, 3),
//	)
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSeed / WithRand: the random.MT stream stochastic generators draw from.
//     – WithLogger:     charmbracelet/log sink for per-constructor debug lines.
//   - Deterministic generators:
//     – FullConnected / WellMixed, Regular ring lattices.
//     – Grid, CustomizableGrid(+Radius), Cubic, Honeycomb, Kagome tori.
//   - Stochastic generators:
//     – ER (Erdős–Rényi G(n,p)), ScaleFree (Barabási–Albert).
//   - Offset masks:
//     – VonNeumannMask, MooreMask, ManhattanMask(r), EuclideanMask(r).
//
// Guarantees:
//
//   - Parameters are validated before the first mutation; failures wrap
//     core.ErrInvalidConfiguration with the generator name.
//   - Node keys are dense indices 0..N-1 laid out as documented per generator.
//   - Same seed and constructor order ⇒ identical topology.
//   - Fast-fail on nil option arguments via panics in option constructors.
package builder
