package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/internal/config"
	"github.com/katalvlaran/wordgraph/internal/logging"
	"github.com/katalvlaran/wordgraph/internal/tracing"
)

const serviceName = "wordgraph"

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

var errNoCorpus = errors.New("no corpus: pass --corpus or set " + config.Prefix + "CORPUS")

// =============================================================================
// APPLICATION STATE
// =============================================================================

// app carries everything one invocation shares between commands.
// It is populated by the root PersistentPreRunE.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	tracer   trace.Tracer
	rng      *rand.Rand
	shutdown tracing.ShutdownFunc

	graph *core.Graph

	// persistent flag values
	envFile  string
	corpus   []string
	seed     int64
	logLevel string
	logJSON  bool
	traceOn  bool
}

func newApp() *app {
	return &app{
		logger: logging.Discard(),
		tracer: tracing.Tracer(serviceName),
	}
}

// close flushes spans. It is safe to call before setup ran.
func (a *app) close() {
	if a.shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.shutdown(ctx); err != nil {
		a.logger.Warn("tracer shutdown failed", "error", err)
	}
	a.shutdown = nil
}

// setup resolves configuration (defaults < .env < environment < flags) and
// installs logging, tracing and the random source.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFiles(a.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("corpus") {
		cfg.Corpus = strings.Join(a.corpus, ",")
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = logging.ParseLevel(a.logLevel); err != nil {
			return err
		}
	}
	if flags.Changed("log-json") {
		cfg.LogJSON = a.logJSON
	}
	if flags.Changed("trace") {
		cfg.Trace = a.traceOn
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = logging.New(logging.Config{
		Level:   cfg.LogLevel,
		JSON:    cfg.LogJSON,
		Output:  cmd.ErrOrStderr(),
		Service: serviceName,
	})

	a.shutdown, err = tracing.Init(cmd.Context(), tracing.Config{
		Enabled:        cfg.Trace,
		Output:         cmd.ErrOrStderr(),
		ServiceName:    serviceName,
		ServiceVersion: version,
	})
	if err != nil {
		return err
	}
	a.tracer = tracing.Tracer(serviceName)

	seed := cfg.EffectiveSeed()
	a.rng = rand.New(rand.NewSource(seed))
	a.logger.Debug("configured", "seed", seed, "corpus", cfg.Corpus)

	return nil
}

// corpusFiles splits the configured corpus list.
func (a *app) corpusFiles() []string {
	var files []string
	for _, f := range strings.Split(a.cfg.Corpus, ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}

	return files
}

// loadGraph builds the graph once per invocation. Several corpus files are
// chained into one token stream.
func (a *app) loadGraph(ctx context.Context) (*core.Graph, error) {
	if a.graph != nil {
		return a.graph, nil
	}
	files := a.corpusFiles()
	if len(files) == 0 {
		return nil, errNoCorpus
	}

	_, span := a.tracer.Start(ctx, "wordgraph.ingest",
		trace.WithAttributes(attribute.StringSlice("files", files)))
	defer span.End()

	start := time.Now()
	cons := make([]builder.Constructor, len(files))
	for i, f := range files {
		cons[i] = builder.File(f)
	}
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithChained()}, cons...)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	st := g.Stats()
	span.SetAttributes(
		attribute.Int("node_count", st.VertexCount),
		attribute.Int("edge_count", st.EdgeCount),
	)
	a.logger.Info("graph built",
		"files", len(files),
		"words", st.VertexCount,
		"edges", st.EdgeCount,
		"observations", st.TotalWeight,
		"elapsed", time.Since(start),
	)
	a.graph = g

	return g, nil
}

// span starts a child span for one query command.
func (a *app) span(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return a.tracer.Start(ctx, "wordgraph."+name, trace.WithAttributes(attrs...))
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "wordgraph",
		Short: "Query a word-adjacency graph built from a text corpus",
		Long: `wordgraph reads a text corpus, links every word to the word that follows it,
and answers questions about the resulting directed, weighted graph: bridge
words, shortest paths, PageRank and random walks.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "optional .env file to load")
	pf.StringSliceVarP(&a.corpus, "corpus", "f", nil, "corpus file(s); several files are read as one stream")
	pf.Int64Var(&a.seed, "seed", 0, "random seed (0 = derive from the clock)")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON")
	pf.BoolVar(&a.traceOn, "trace", false, "print OpenTelemetry spans to stderr")

	root.AddCommand(
		newShowCmd(a),
		newExportCmd(a),
		newBridgeCmd(a),
		newGenerateCmd(a),
		newPathCmd(a),
		newReachCmd(a),
		newPageRankCmd(a),
		newWalkCmd(a),
		newConfigCmd(a),
	)

	return root
}
