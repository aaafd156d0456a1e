package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cimnet/builder"
	"github.com/katalvlaran/cimnet/core"
	"github.com/katalvlaran/cimnet/export"
)

// Output formats accepted by generate.
const (
	formatEdges   = "edges"
	formatAdjList = "adjlist"
	formatMatrix  = "matrix"
	formatDOT     = "dot"
	formatSVG     = "svg"
)

type generateOpts struct {
	config    configFlags
	format    string
	output    string
	delimiter string
	noHeaders bool
}

func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate <topology>",
		Short: "Build a network and write it out",
		Long: "Build a network with one of the generators (" + strings.Join(topologyNames(), ", ") + ")\n" +
			"and write it as an edge list, adjacency list, adjacency matrix, DOT or SVG.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config.resolve(cmd, args, "")
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg.Topology, opts)
		},
	}

	addTopologyFlags(cmd, &opts.config)
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatEdges, "output format: edges, adjlist, matrix, dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.delimiter, "delimiter", export.DefaultDelimiter, "field delimiter for text formats")
	cmd.Flags().BoolVar(&opts.noHeaders, "no-headers", false, "omit matrix header row and column")

	return cmd
}

func runGenerate(cmd *cobra.Command, cfg TopologyConfig, opts generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	net := core.NewNetwork()
	if err := buildInto(net, cfg, builder.WithLogger(logger)); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built %s network: %s", cfg.Kind, net))

	if opts.delimiter == "" {
		return fmt.Errorf("delimiter must not be empty")
	}
	xopts := []export.Option{export.WithSortedNodes(), export.WithDelimiter(opts.delimiter)}
	if opts.noHeaders {
		xopts = append(xopts, export.WithoutHeaders())
	}

	var buf bytes.Buffer
	switch opts.format {
	case formatEdges:
		if err := export.WriteEdgeList[core.ID](&buf, net, xopts...); err != nil {
			return err
		}
	case formatAdjList:
		if err := export.WriteAdjacencyList[core.ID](&buf, net, xopts...); err != nil {
			return err
		}
	case formatMatrix:
		if err := export.WriteAdjacencyMatrix[core.ID](&buf, net, nil, xopts...); err != nil {
			return err
		}
	case formatDOT:
		buf.WriteString(export.ToDOT[core.ID](net))
	case formatSVG:
		svg, err := export.RenderSVG(ctx, export.ToDOT[core.ID](net))
		if err != nil {
			return err
		}
		buf.Write(svg)
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	return writeOutput(cmd.OutOrStdout(), opts.output, buf.Bytes())
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
