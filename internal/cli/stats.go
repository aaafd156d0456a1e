package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/cimnet/builder"
	"github.com/katalvlaran/cimnet/core"
)

// degreeStats summarizes the degree sequence of a network.
type degreeStats struct {
	Nodes, Edges int
	Mean, StdDev float64
	Min, Max     int
}

func computeStats(g core.Graph[core.ID]) degreeStats {
	s := degreeStats{Nodes: g.NumberOfNodes(), Edges: g.NumberOfEdges()}
	if s.Nodes == 0 {
		return s
	}

	degs := make([]float64, 0, s.Nodes)
	ints := make([]int, 0, s.Nodes)
	for _, id := range g.Nodes() {
		d := g.Degree(id)
		degs = append(degs, float64(d))
		ints = append(ints, d)
	}
	s.Mean, s.StdDev = stat.MeanStdDev(degs, nil)
	if s.Nodes == 1 {
		s.StdDev = 0
	}
	s.Min, s.Max = slices.Min(ints), slices.Max(ints)

	return s
}

func newStatsCmd() *cobra.Command {
	var cf configFlags

	cmd := &cobra.Command{
		Use:   "stats <topology>",
		Short: "Print node, edge and degree statistics of a generated network",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cf.resolve(cmd, args, "")
			if err != nil {
				return err
			}

			net := core.NewNetwork()
			if err := buildInto(net, cfg.Topology, builder.WithLogger(loggerFromContext(cmd.Context()))); err != nil {
				return err
			}
			s := computeStats(net)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "topology: %s\n", cfg.Topology.Kind)
			fmt.Fprintf(out, "nodes:    %d\n", s.Nodes)
			fmt.Fprintf(out, "edges:    %d\n", s.Edges)
			fmt.Fprintf(out, "degree:   mean=%.4f stddev=%.4f min=%d max=%d\n", s.Mean, s.StdDev, s.Min, s.Max)

			return nil
		},
	}
	addTopologyFlags(cmd, &cf)

	return cmd
}
