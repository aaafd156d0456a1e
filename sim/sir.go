// SPDX-License-Identifier: MIT
// Package: cimnet/sim
//
// sir.go - asynchronous SIR epidemic.
//
// Update rule for one randomly drawn node x (N draws per step, with replacement):
//   - Susceptible: becomes Infected with probability beta if any neighbor is Infected.
//   - Infected:    becomes Recovered with probability gamma.
//   - Recovered:   absorbing.

package sim

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/cimnet/core"
	"github.com/katalvlaran/cimnet/random"
)

// Compartment is the epidemic state of one node.
type Compartment uint8

// Compartments.
const (
	Susceptible Compartment = iota
	Infected
	Recovered
)

func (c Compartment) String() string {
	switch c {
	case Susceptible:
		return "susceptible"
	case Infected:
		return "infected"
	case Recovered:
		return "recovered"
	default:
		return fmt.Sprintf("Compartment(%d)", uint8(c))
	}
}

// SIRNode is the node payload of an SIR network.
type SIRNode struct {
	Status Compartment
}

// SIRNetwork is the engine instantiation SIR runs on. It satisfies
// core.Topology[core.ID], so builder generators can populate it directly.
type SIRNetwork = core.Undirected[core.ID, SIRNode, core.None]

// NewSIRNetwork returns an empty SIRNetwork.
func NewSIRNetwork() *SIRNetwork { return core.NewUndirected[core.ID, SIRNode, core.None]() }

// Stat is a compartment snapshot after Step steps.
type Stat struct {
	Step    int
	S, I, R float64
}

func (s Stat) String() string {
	return fmt.Sprintf("[%4d] S:%6.2f I:%6.2f R:%6.2f", s.Step, s.S, s.I, s.R)
}

// SIR is a running epidemic. Not safe for concurrent use.
type SIR struct {
	net         *SIRNetwork
	beta, gamma float64
	step        int
	nodes       []core.ID
	rng         *random.MT
	logger      *log.Logger

	fractions *prometheus.GaugeVec
	steps     prometheus.Counter
}

// NewSIR seeds the epidemic on net: nodes are shuffled and the first
// floor(initRate·N) become Infected, the rest Susceptible.
//
// Errors: core.ErrInvalidConfiguration for a nil network or a beta, gamma or
// initRate outside [0,1].
func NewSIR(net *SIRNetwork, beta, gamma, initRate float64, opts ...Option) (*SIR, error) {
	if net == nil {
		return nil, fmt.Errorf("sim: NewSIR: nil network: %w", core.ErrInvalidConfiguration)
	}
	for _, p := range []struct {
		name string
		v    float64
	}{{"beta", beta}, {"gamma", gamma}, {"initRate", initRate}} {
		if !(p.v >= 0 && p.v <= 1) {
			return nil, fmt.Errorf("sim: NewSIR: %s=%v not in [0,1]: %w", p.name, p.v, core.ErrInvalidConfiguration)
		}
	}

	o := newOptions(opts...)
	s := &SIR{
		net:    net,
		beta:   beta,
		gamma:  gamma,
		nodes:  net.SortedNodes(),
		rng:    o.rng,
		logger: o.logger,
	}

	order := append([]core.ID(nil), s.nodes...)
	s.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	initial := int(initRate * float64(len(order)))
	for i, id := range order {
		p, _ := net.Node(id)
		if i < initial {
			p.Status = Infected
		} else {
			p.Status = Susceptible
		}
	}
	s.logger.Debug("sir seeded", "nodes", len(order), "infected", initial, "beta", beta, "gamma", gamma)

	return s, nil
}

// Step advances the epidemic by one sweep of N random updates.
// Complexity: O(N·avgdeg).
func (s *SIR) Step() {
	s.step++
	n := len(s.nodes)
	for range n {
		x := s.nodes[s.rng.Intn(n)]
		p, err := s.net.Node(x)
		if err != nil {
			continue
		}
		switch p.Status {
		case Susceptible:
			if s.hasInfectedNeighbor(x) && s.rng.Float64() < s.beta {
				p.Status = Infected
			}
		case Infected:
			if s.rng.Float64() < s.gamma {
				p.Status = Recovered
			}
		}
	}
	s.publish()
}

// Run performs steps sweeps, calling each (if non-nil) with the Stat after
// every sweep. It stops early with ctx.Err() when ctx is done.
func (s *SIR) Run(ctx context.Context, steps int, each func(Stat)) error {
	for range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Step()
		if each != nil {
			each(s.Stat())
		}
	}

	return nil
}

func (s *SIR) hasInfectedNeighbor(x core.ID) bool {
	for nb := range s.net.NeighborView(x) {
		if p, err := s.net.Node(nb); err == nil && p.Status == Infected {
			return true
		}
	}

	return false
}

// Counts returns the number of nodes per compartment.
func (s *SIR) Counts() map[Compartment]int {
	out := map[Compartment]int{Susceptible: 0, Infected: 0, Recovered: 0}
	for _, id := range s.nodes {
		if p, err := s.net.Node(id); err == nil {
			out[p.Status]++
		}
	}

	return out
}

// Stat returns compartment fractions. An empty network reports zeros.
func (s *SIR) Stat() Stat {
	st := Stat{Step: s.step}
	n := float64(len(s.nodes))
	if n == 0 {
		return st
	}
	c := s.Counts()
	st.S = float64(c[Susceptible]) / n
	st.I = float64(c[Infected]) / n
	st.R = float64(c[Recovered]) / n

	return st
}

// Observe registers the gauge vector cimnet_sir_fraction{compartment} and the
// counter cimnet_sir_steps_total on reg and keeps them current after each Step.
func (s *SIR) Observe(reg prometheus.Registerer) error {
	fractions := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cimnet_sir_fraction",
			Help: "Fraction of nodes per SIR compartment",
		},
		[]string{"compartment"},
	)
	steps := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cimnet_sir_steps_total",
		Help: "Number of SIR sweeps performed",
	})
	if err := reg.Register(fractions); err != nil {
		return fmt.Errorf("sim: Observe: %w", err)
	}
	if err := reg.Register(steps); err != nil {
		reg.Unregister(fractions)
		return fmt.Errorf("sim: Observe: %w", err)
	}

	s.fractions, s.steps = fractions, steps
	s.setGauges()

	return nil
}

func (s *SIR) publish() {
	if s.fractions == nil {
		return
	}
	s.steps.Inc()
	s.setGauges()
}

func (s *SIR) setGauges() {
	st := s.Stat()
	s.fractions.WithLabelValues(Susceptible.String()).Set(st.S)
	s.fractions.WithLabelValues(Infected.String()).Set(st.I)
	s.fractions.WithLabelValues(Recovered.String()).Set(st.R)
}
