package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the graphbatch CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (union,
// partition, linegraph), configures logging based on the --verbose flag,
// and executes the command tree. The logger is attached to the context
// and accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "graphbatch",
		Short:        "graphbatch batches and partitions graphs",
		Long:         `graphbatch combines many small graphs into one batched graph with disjoint vertex and edge id spaces, and splits batched graphs back into their parts.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("graphbatch %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newUnionCmd())
	root.AddCommand(newPartitionCmd())
	root.AddCommand(newLineGraphCmd())

	return root.ExecuteContext(ctx)
}
