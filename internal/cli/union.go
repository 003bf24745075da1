package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/graphbatch/graphbatch/pkg/graph"
	"github.com/graphbatch/graphbatch/pkg/graphop"
	"github.com/graphbatch/graphbatch/pkg/observability"
)

// newUnionCmd creates the union command.
func newUnionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "union FILE...",
		Short: "Combine graphs into one batched graph",
		Long: `Union reads each FILE as a plain-text adjacency list and combines the
graphs into one batched graph with disjoint vertex and edge id spaces.
Vertex ids of graph k are shifted by the cumulative vertex count of the
graphs before it; edge ids are assigned sequentially in input order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			graphs := make([]*graph.Graph, 0, len(args))
			for _, path := range args {
				g, err := readGraphFile(path)
				if err != nil {
					return err
				}
				logger.Debugf("Loaded %s: %d vertices, %d edges", path, g.NumVertices(), g.NumEdges())
				graphs = append(graphs, g)
			}

			prog := newProgress(logger)
			opStart := time.Now()
			observability.Ops().OnOpStart(ctx, "union", len(graphs))
			batched := graphop.DisjointUnion(graphs)
			observability.Ops().OnOpComplete(ctx, "union", time.Since(opStart), nil)
			prog.done(fmt.Sprintf("Batched %d graphs", len(graphs)))

			printTitle("Disjoint union")
			printStat("graphs", len(graphs))
			printStat("vertices", batched.NumVertices())
			printStat("edges", batched.NumEdges())
			var vertexOffset, edgeOffset int64
			for i, g := range graphs {
				printDetail("graph %d: vertices [%d, %d), edges [%d, %d)",
					i, vertexOffset, vertexOffset+g.NumVertices(), edgeOffset, edgeOffset+g.NumEdges())
				vertexOffset += g.NumVertices()
				edgeOffset += g.NumEdges()
			}

			if output != "" {
				if err := writeGraphFile(output, batched); err != nil {
					return err
				}
				printSuccess("Wrote %s", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the batched adjacency list to this file")
	return cmd
}
