package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/graphbatch/graphbatch/pkg/graphop"
	"github.com/graphbatch/graphbatch/pkg/observability"
)

// newLineGraphCmd creates the linegraph command.
func newLineGraphCmd() *cobra.Command {
	var (
		noBacktracking bool
		output         string
	)

	cmd := &cobra.Command{
		Use:   "linegraph FILE",
		Short: "Build the line graph of a graph",
		Long: `Linegraph reads FILE as a plain-text adjacency list and builds its line
graph: one vertex per edge, with an edge wherever two edges form a
directed length-2 path. With --no-backtracking, a continuation that
immediately returns to the source vertex is skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			g, err := readGraphFile(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("Loaded %s: %d vertices, %d edges", args[0], g.NumVertices(), g.NumEdges())

			prog := newProgress(logger)
			opStart := time.Now()
			observability.Ops().OnOpStart(ctx, "linegraph", 1)
			lg := graphop.LineGraph(g, !noBacktracking)
			observability.Ops().OnOpComplete(ctx, "linegraph", time.Since(opStart), nil)
			prog.done(fmt.Sprintf("Built line graph of %d edges", g.NumEdges()))

			printTitle("Line graph")
			printStat("vertices", lg.NumVertices())
			printStat("edges", lg.NumEdges())

			if output != "" {
				if err := writeGraphFile(output, lg); err != nil {
					return err
				}
				printSuccess("Wrote %s", output)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noBacktracking, "no-backtracking", false, "skip continuations that return to the source vertex")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the line graph adjacency list to this file")
	return cmd
}
