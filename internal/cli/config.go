package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cimnet/random"
)

// TopologyConfig selects a generator and its parameters. Fields a generator
// does not use are ignored.
type TopologyConfig struct {
	Kind   string  `toml:"kind" yaml:"kind"`
	N      int     `toml:"n" yaml:"n"`
	K      int     `toml:"k" yaml:"k"`
	M      int     `toml:"m" yaml:"m"`
	P      float64 `toml:"p" yaml:"p"`
	Width  int     `toml:"width" yaml:"width"`
	Height int     `toml:"height" yaml:"height"`
	Length int     `toml:"length" yaml:"length"`
	Degree int     `toml:"degree" yaml:"degree"`
	Mask   string  `toml:"mask" yaml:"mask"`
	Radius float64 `toml:"radius" yaml:"radius"`
	Seed   uint32  `toml:"seed" yaml:"seed"`
}

// SIRConfig holds epidemic parameters.
type SIRConfig struct {
	Beta        float64 `toml:"beta" yaml:"beta"`
	Gamma       float64 `toml:"gamma" yaml:"gamma"`
	Init        float64 `toml:"init" yaml:"init"`
	Steps       int     `toml:"steps" yaml:"steps"`
	MetricsAddr string  `toml:"metrics_addr" yaml:"metrics_addr"`
}

// RunConfig is the on-disk run configuration.
type RunConfig struct {
	Topology TopologyConfig `toml:"topology" yaml:"topology"`
	SIR      SIRConfig      `toml:"sir" yaml:"sir"`
}

// defaultConfig mirrors the flag defaults.
func defaultConfig() RunConfig {
	return RunConfig{
		Topology: TopologyConfig{
			N: 100, K: 2, M: 2, P: 0.1,
			Width: 10, Height: 10, Length: 10, Degree: 4,
			Mask: maskManhattan, Radius: 1,
			Seed: random.DefaultSeed,
		},
		SIR: SIRConfig{Beta: 0.1, Gamma: 0.08, Init: 0.01, Steps: 100},
	}
}

// loadConfig reads path as TOML (.toml) or YAML (.yaml, .yml) on top of the defaults.
func loadConfig(path string) (RunConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unsupported extension %q (want .toml, .yaml or .yml)", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// configFlags binds every RunConfig field to a flag on cmd and resolves the
// final config: file values first, then flags the user set explicitly.
type configFlags struct {
	path  string
	flags RunConfig
}

func addTopologyFlags(cmd *cobra.Command, cf *configFlags) {
	d := defaultConfig().Topology
	t := &cf.flags.Topology
	f := cmd.Flags()
	f.StringVar(&cf.path, "config", "", "run configuration file (.toml, .yaml)")
	f.IntVar(&t.N, "n", d.N, "number of nodes")
	f.IntVar(&t.K, "k", d.K, "ring neighbors per side (regular)")
	f.IntVar(&t.M, "m", d.M, "attachments per newcomer (scalefree)")
	f.Float64Var(&t.P, "p", d.P, "edge probability (er)")
	f.IntVar(&t.Width, "width", d.Width, "lattice width")
	f.IntVar(&t.Height, "height", d.Height, "lattice height")
	f.IntVar(&t.Length, "length", d.Length, "lattice length (cubic)")
	f.IntVar(&t.Degree, "degree", d.Degree, "grid neighborhood: 4 or 8")
	f.StringVar(&t.Mask, "mask", d.Mask, "offset mask for custom grids: manhattan or euclidean")
	f.Float64Var(&t.Radius, "radius", d.Radius, "mask radius (custom)")
	f.Uint32Var(&t.Seed, "seed", d.Seed, "random seed")
}

func addSIRFlags(cmd *cobra.Command, cf *configFlags) {
	d := defaultConfig().SIR
	s := &cf.flags.SIR
	f := cmd.Flags()
	f.Float64Var(&s.Beta, "beta", d.Beta, "infection probability")
	f.Float64Var(&s.Gamma, "gamma", d.Gamma, "recovery probability")
	f.Float64Var(&s.Init, "init", d.Init, "initially infected fraction")
	f.IntVar(&s.Steps, "steps", d.Steps, "number of sweeps")
	f.StringVar(&s.MetricsAddr, "metrics-addr", d.MetricsAddr, "serve Prometheus metrics on this address, e.g. :9090")
}

// resolve merges the config file (if any) with explicitly set flags and the
// positional topology kind. fallbackKind applies when neither names one.
func (cf *configFlags) resolve(cmd *cobra.Command, args []string, fallbackKind string) (RunConfig, error) {
	cfg := defaultConfig()
	if cf.path != "" {
		var err error
		if cfg, err = loadConfig(cf.path); err != nil {
			return cfg, err
		}
	}

	t, ft := &cfg.Topology, cf.flags.Topology
	s, fs := &cfg.SIR, cf.flags.SIR
	overrides := map[string]func(){
		"n":            func() { t.N = ft.N },
		"k":            func() { t.K = ft.K },
		"m":            func() { t.M = ft.M },
		"p":            func() { t.P = ft.P },
		"width":        func() { t.Width = ft.Width },
		"height":       func() { t.Height = ft.Height },
		"length":       func() { t.Length = ft.Length },
		"degree":       func() { t.Degree = ft.Degree },
		"mask":         func() { t.Mask = ft.Mask },
		"radius":       func() { t.Radius = ft.Radius },
		"seed":         func() { t.Seed = ft.Seed },
		"beta":         func() { s.Beta = fs.Beta },
		"gamma":        func() { s.Gamma = fs.Gamma },
		"init":         func() { s.Init = fs.Init },
		"steps":        func() { s.Steps = fs.Steps },
		"metrics-addr": func() { s.MetricsAddr = fs.MetricsAddr },
	}
	for name, apply := range overrides {
		if cmd.Flags().Lookup(name) != nil && cmd.Flags().Changed(name) {
			apply()
		}
	}

	if len(args) > 0 {
		t.Kind = args[0]
	}
	if t.Kind == "" {
		t.Kind = fallbackKind
	}
	if t.Kind == "" {
		return cfg, fmt.Errorf("no topology given (argument or [topology] kind in config)")
	}

	return cfg, nil
}
