package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/katalvlaran/wordgraph/report"
	"github.com/katalvlaran/wordgraph/walk"
)

// =============================================================================
// PAGERANK COMMAND
// =============================================================================

func newPageRankCmd(a *app) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "pagerank [WORD]",
		Short: "PageRank of one word, or a ranking of the top words",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			table, err := pagerank.ComputeContext(cmd.Context(), g,
				pagerank.WithDamping(a.cfg.Damping),
				pagerank.WithIterations(a.cfg.Iterations),
			)
			if err != nil {
				return err
			}
			a.logger.Debug("pagerank computed",
				"words", table.Len(),
				"sum", table.Sum(),
				"iterations", table.Iterations,
			)

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				word := strings.ToLower(args[0])
				fmt.Fprintln(out, report.PageRank(table.Score(word)))
				if !table.Has(word) {
					note(out, "%s", report.Missing(word))
				}

				return nil
			}

			entries := table.Ranked()
			heading := fmt.Sprintf("PageRank (%d words)", len(entries))
			if top > 0 && top < len(entries) {
				entries = table.Top(top)
				heading = fmt.Sprintf("PageRank (top %d of %d words)", top, table.Len())
			}
			title(out, heading)
			if len(entries) > 0 {
				fmt.Fprintln(out, report.Ranking(entries))
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 10, "number of words to list (0 = all)")

	return cmd
}

// =============================================================================
// WALK COMMAND
// =============================================================================

func newWalkCmd(a *app) *cobra.Command {
	var (
		output string
		noSave bool
	)

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Random walk from a random word until an edge repeats or a dead end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("output") {
				output = a.cfg.WalkOutput
			}
			var sink walk.Sink
			if !noSave {
				sink = walk.FileSink{Path: output}
			}

			_, span := a.span(cmd.Context(), "walk", attribute.Bool("save", sink != nil))
			trace, err := walk.Run(g, a.rng, sink)
			span.SetAttributes(attribute.Int("trace_len", len(strings.Fields(trace))))
			if err != nil {
				span.RecordError(err)
			}
			span.End()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.Walk(trace))
			if err != nil {
				return err
			}
			if trace != "" && sink != nil {
				note(out, "Walk saved to %s", output)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file receiving the walk (default from config)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "print the walk without writing a file")

	return cmd
}
