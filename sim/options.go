package sim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/cimnet/random"
)

// Option configures a simulation.
type Option func(*options)

type options struct {
	rng    *random.MT
	logger *log.Logger
}

func newOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = random.New()
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	return o
}

// WithRand sets the engine driving random choices. Panics on nil.
func WithRand(r *random.MT) Option {
	if r == nil {
		panic("sim: WithRand(nil)")
	}

	return func(o *options) { o.rng = r }
}

// WithSeed seeds a fresh engine.
func WithSeed(seed uint32) Option {
	return func(o *options) { o.rng = random.NewSeeded(seed) }
}

// WithLogger routes simulation events to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("sim: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}
