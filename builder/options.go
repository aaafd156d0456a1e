// SPDX-License-Identifier: MIT
// Package: cimnet/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/cimnet/random"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before topology construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit engine for stochastic generators. The engine
// is advanced in place, so its state after Apply reflects every draw.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *random.MT) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh engine seeded with seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed uint32) BuilderOption {
	return func(c *builderConfig) {
		c.rng = random.NewSeeded(seed)
	}
}

// WithLogger routes per-constructor debug lines to l.
// Panics on nil.
func WithLogger(l *log.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}

	return func(c *builderConfig) {
		c.logger = l
	}
}
