// SPDX-License-Identifier: MIT
// Package: cimnet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng     = random.New()   (unseeded; self-seeds with random.DefaultSeed)
//   • logger  = discard        (libraries stay silent unless given a logger)

package builder

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/cimnet/random"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors; the rng pointer is shared so that
// constructors composed in one Apply call draw from one stream.
type builderConfig struct {
	// RNG for stochastic generators (ER, ScaleFree).
	rng *random.MT
	// Debug sink; one line per applied constructor.
	logger *log.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve unset fields after options so WithSeed/WithRand always win.
	if cfg.rng == nil {
		cfg.rng = random.New()
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	return cfg
}
