package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version displayed by --version.
func SetVersion(v string) { version = v }

// Execute runs the cimnet CLI with args taken from os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Output goes to the command's
// configured writers, so tests can capture it with SetOut/SetErr.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "cimnet",
		Short:        "cimnet generates and simulates complex networks",
		Long:         `cimnet builds lattice, random and scale-free networks, exports them as text or Graphviz, and runs small simulations on top of them.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level).With("run", uuid.NewString()[:8])
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("cimnet %s\n", version))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newSIRCmd())
	root.AddCommand(newTrafficCmd())

	return root
}
