package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dot"
	"github.com/katalvlaran/wordgraph/report"
)

// =============================================================================
// SHOW COMMAND
// =============================================================================

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the adjacency listing of the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, report.Graph(g))
			note(out, "%s", report.Stats(g.Stats()))

			return nil
		},
	}
}

// =============================================================================
// EXPORT COMMAND
// =============================================================================

func newExportCmd(a *app) *cobra.Command {
	var (
		dotFile string
		pngFile string
		render  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the graph as Graphviz DOT and optionally render it to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("dot") {
				dotFile = a.cfg.DOTOutput
			}
			if !cmd.Flags().Changed("png") {
				pngFile = a.cfg.PNGOutput
			}
			if !cmd.Flags().Changed("render") {
				render = a.cfg.Render
			}

			return a.export(cmd, g, nil, dotFile, pngFile, render)
		},
	}
	cmd.Flags().StringVar(&dotFile, "dot", "", "DOT output file (default from config)")
	cmd.Flags().StringVar(&pngFile, "png", "", "PNG output file (default from config)")
	cmd.Flags().BoolVar(&render, "render", false, "render the DOT file with Graphviz")

	return cmd
}

// export writes g to dotFile, highlighting path if it is non-empty, and
// renders it to pngFile when asked. A missing Graphviz binary is reported
// as a warning, not a failure: the DOT file is still useful on its own.
func (a *app) export(cmd *cobra.Command, g *core.Graph, path []string, dotFile, pngFile string, render bool) error {
	ctx, span := a.span(cmd.Context(), "export",
		attribute.String("dot_file", dotFile),
		attribute.Int("highlight_len", len(path)),
	)
	defer span.End()

	out := cmd.OutOrStdout()
	if err := dot.WriteFile(dotFile, g, dot.WithHighlight(path)); err != nil {
		span.RecordError(err)
		return err
	}
	note(out, "Graph written to %s", dotFile)
	if !render {
		return nil
	}

	if err := a.render(ctx, dotFile, pngFile); err != nil {
		if errors.Is(err, dot.ErrRendererNotFound) {
			a.logger.Warn("skipping render", "error", err)
			warn(out, "Graphviz %q not found; PNG not generated", dot.DefaultCommand)
			return nil
		}
		span.RecordError(err)
		return err
	}
	note(out, "Image rendered to %s", pngFile)

	return nil
}

func (a *app) render(ctx context.Context, dotFile, pngFile string) error {
	ctx, span := a.span(ctx, "render", attribute.String("png_file", pngFile))
	defer span.End()

	return dot.Render(ctx, dotFile, pngFile)
}

// =============================================================================
// CONFIG COMMAND
// =============================================================================

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.Print(cmd.OutOrStdout())
			return nil
		},
	}
}
