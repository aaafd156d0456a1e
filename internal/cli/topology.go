package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/cimnet/builder"
	"github.com/katalvlaran/cimnet/core"
)

const (
	maskManhattan = "manhattan"
	maskEuclidean = "euclidean"
)

// topologies maps a generator name to its constructor factory.
var topologies = map[string]func(t TopologyConfig) (builder.Constructor, error){
	"full":      func(t TopologyConfig) (builder.Constructor, error) { return builder.FullConnected(t.N), nil },
	"wellmixed": func(t TopologyConfig) (builder.Constructor, error) { return builder.WellMixed(t.N), nil },
	"regular":   func(t TopologyConfig) (builder.Constructor, error) { return builder.Regular(t.N, t.K), nil },
	"er":        func(t TopologyConfig) (builder.Constructor, error) { return builder.ER(t.N, t.P), nil },
	"grid": func(t TopologyConfig) (builder.Constructor, error) {
		return builder.Grid(t.Width, t.Height, t.Degree), nil
	},
	"custom": func(t TopologyConfig) (builder.Constructor, error) {
		var fn builder.MaskFunc
		switch strings.ToLower(t.Mask) {
		case maskManhattan:
			fn = builder.ManhattanMask
		case maskEuclidean:
			fn = builder.EuclideanMask
		default:
			return nil, fmt.Errorf("unknown mask %q (want %s or %s)", t.Mask, maskManhattan, maskEuclidean)
		}
		return builder.CustomizableGridRadius(t.Width, t.Height, t.Radius, fn), nil
	},
	"cubic":     func(t TopologyConfig) (builder.Constructor, error) { return builder.Cubic(t.Length, t.Width, t.Height), nil },
	"honeycomb": func(t TopologyConfig) (builder.Constructor, error) { return builder.Honeycomb(t.Width, t.Height), nil },
	"kagome":    func(t TopologyConfig) (builder.Constructor, error) { return builder.Kagome(t.Width, t.Height), nil },
	"scalefree": func(t TopologyConfig) (builder.Constructor, error) { return builder.ScaleFree(t.N, t.M), nil },
}

// topologyNames lists the accepted generator names in sorted order.
func topologyNames() []string {
	names := make([]string, 0, len(topologies))
	for name := range topologies {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// constructorFor resolves cfg.Kind to a builder constructor.
func constructorFor(cfg TopologyConfig) (builder.Constructor, error) {
	factory, ok := topologies[strings.ToLower(cfg.Kind)]
	if !ok {
		return nil, fmt.Errorf("unknown topology %q (want one of %s)", cfg.Kind, strings.Join(topologyNames(), ", "))
	}

	return factory(cfg)
}

// buildInto applies the configured generator to t.
func buildInto(t core.Topology[core.ID], cfg TopologyConfig, bopts ...builder.BuilderOption) error {
	ctor, err := constructorFor(cfg)
	if err != nil {
		return err
	}
	bopts = append([]builder.BuilderOption{builder.WithSeed(cfg.Seed)}, bopts...)
	if err := builder.Apply(t, bopts, ctor); err != nil {
		return fmt.Errorf("build %s: %w", cfg.Kind, err)
	}

	return nil
}
