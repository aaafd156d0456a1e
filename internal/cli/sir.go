package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cimnet/builder"
	"github.com/katalvlaran/cimnet/sim"
)

// defaultSIRTopology is used when neither argument nor config names one.
const defaultSIRTopology = "wellmixed"

func newSIRCmd() *cobra.Command {
	var cf configFlags

	cmd := &cobra.Command{
		Use:   "sir [topology]",
		Short: "Run an SIR epidemic on a generated network",
		Long: `Run an asynchronous Susceptible-Infected-Recovered epidemic and print the
compartment fractions after every sweep. With --metrics-addr the fractions are
also served as Prometheus gauges; the server keeps running after the last sweep
until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cf.resolve(cmd, args, defaultSIRTopology)
			if err != nil {
				return err
			}
			return runSIR(cmd, cfg)
		},
	}
	addTopologyFlags(cmd, &cf)
	addSIRFlags(cmd, &cf)

	return cmd
}

func runSIR(cmd *cobra.Command, cfg RunConfig) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	net := sim.NewSIRNetwork()
	if err := buildInto(net, cfg.Topology, builder.WithLogger(logger)); err != nil {
		return err
	}
	logger.Info("network ready", "topology", cfg.Topology.Kind, "nodes", net.NumberOfNodes(), "edges", net.NumberOfEdges())

	s, err := sim.NewSIR(net, cfg.SIR.Beta, cfg.SIR.Gamma, cfg.SIR.Init,
		sim.WithSeed(cfg.Topology.Seed), sim.WithLogger(logger))
	if err != nil {
		return err
	}

	var srv *http.Server
	if cfg.SIR.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		if err := s.Observe(reg); err != nil {
			return err
		}
		srv = serveMetrics(cfg.SIR.MetricsAddr, reg, logger)
		logger.Info("serving metrics", "addr", cfg.SIR.MetricsAddr)
	}

	out := cmd.OutOrStdout()
	prog := newProgress(logger)
	err = s.Run(ctx, cfg.SIR.Steps, func(st sim.Stat) { fmt.Fprintln(out, st) })
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Ran %d sweeps", cfg.SIR.Steps))

	if srv == nil {
		return nil
	}
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// serveMetrics exposes reg on addr under /metrics in the background.
func serveMetrics(addr string, reg *prometheus.Registry, logger *log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "err", err)
		}
	}()

	return srv
}
