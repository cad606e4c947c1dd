package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/wordgraph/bfs"
	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/katalvlaran/wordgraph/report"
)

// =============================================================================
// BRIDGE COMMAND
// =============================================================================

func newBridgeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bridge WORD1 WORD2",
		Short: "List the words w with WORD1 -> w -> WORD2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			w1, w2 := strings.ToLower(args[0]), strings.ToLower(args[1])

			_, span := a.span(cmd.Context(), "bridge",
				attribute.String("word1", w1),
				attribute.String("word2", w2),
			)
			res := bridge.Find(g, w1, w2)
			span.SetAttributes(
				attribute.String("status", res.Status.String()),
				attribute.Int("bridge_count", len(res.Bridges)),
			)
			span.End()

			fmt.Fprintln(cmd.OutOrStdout(), report.Bridge(res))

			return nil
		},
	}
}

// =============================================================================
// GENERATE COMMAND
// =============================================================================

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate TEXT...",
		Short: "Insert a random bridge word between every pair of adjacent words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			input := strings.Join(args, " ")

			_, span := a.span(cmd.Context(), "generate", attribute.Int("input_len", len(input)))
			text := bridge.GenerateText(g, input, a.rng)
			span.End()

			fmt.Fprintln(cmd.OutOrStdout(), text)

			return nil
		},
	}
}

// =============================================================================
// PATH COMMAND
// =============================================================================

func newPathCmd(a *app) *cobra.Command {
	var export bool

	cmd := &cobra.Command{
		Use:   "path WORD1 [WORD2]",
		Short: "Shortest path between two words, or from one word to every other",
		Long: `With two words, print the cheapest path WORD1 -> ... -> WORD2, where the
cost of an edge is the number of times the pair occurs in the corpus.
With one word, print the shortest path to every other word.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			src := strings.ToLower(args[0])

			if len(args) == 1 {
				if !g.HasVertex(src) {
					fmt.Fprintln(out, report.Missing(src))
					return nil
				}
				_, span := a.span(cmd.Context(), "paths", attribute.String("source", src))
				routes, err := dijkstra.ShortestPaths(g, src)
				span.End()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, report.Routes(src, routes))

				return nil
			}

			dst := strings.ToLower(args[1])
			_, span := a.span(cmd.Context(), "path",
				attribute.String("source", src),
				attribute.String("target", dst),
			)
			path := dijkstra.ShortestPath(g, src, dst)
			cost, _ := dijkstra.Cost(g, path)
			span.SetAttributes(attribute.Int("path_len", len(path)), attribute.Int64("cost", cost))
			span.End()

			fmt.Fprintln(out, report.Path(src, dst, path, cost))
			if export && len(path) > 0 {
				return a.export(cmd, g, path, a.cfg.DOTOutput, a.cfg.PNGOutput, a.cfg.Render)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&export, "export", false, "write the graph with the path highlighted to the DOT output")

	return cmd
}

// =============================================================================
// REACH COMMAND
// =============================================================================

func newReachCmd(a *app) *cobra.Command {
	var (
		depth     int
		minWeight int64
	)

	cmd := &cobra.Command{
		Use:   "reach WORD",
		Short: "List the words reachable from WORD, grouped by number of hops",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			src := strings.ToLower(args[0])
			if !g.HasVertex(src) {
				fmt.Fprintln(out, report.Missing(src))
				return nil
			}

			ctx, span := a.span(cmd.Context(), "reach",
				attribute.String("source", src),
				attribute.Int("max_depth", depth),
			)
			defer span.End()
			res, err := bfs.BFS(g, src,
				bfs.WithContext(ctx),
				bfs.WithMaxDepth(depth),
				bfs.WithMinWeight(minWeight),
			)
			if err != nil {
				span.RecordError(err)
				return err
			}
			span.SetAttributes(attribute.Int("reached", len(res.Order)-1))

			fmt.Fprintln(out, report.Reach(src, res.Layers()))

			return nil
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "maximum number of hops (0 = unlimited)")
	cmd.Flags().Int64Var(&minWeight, "min-weight", 1, "follow only pairs seen at least this many times")

	return cmd
}
