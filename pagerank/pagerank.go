package pagerank

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordgraph/core"
)

var tracer = otel.Tracer("wordgraph/pagerank")

// Compute runs PageRank on g. See ComputeContext.
func Compute(g *core.Graph, opts ...Option) (*Table, error) {
	return ComputeContext(context.Background(), g, opts...)
}

// ComputeContext runs PageRank on g inside a trace span.
//
// Implementation:
//   - Stage 1: Validate g and options.
//   - Stage 2: Snapshot the graph into index-based adjacency (words sorted).
//   - Stage 3: Run exactly Iterations synchronous rounds into a fresh buffer.
//   - Stage 4: Publish the final vector as a Table.
//
// ctx is checked between rounds only so a cancelled caller can stop a long
// run; an uncancelled run always performs every round.
//
// Errors:
//   - ErrNilGraph, ErrBadDamping, ErrBadIterations.
//   - ctx.Err() wrapped, if cancelled mid-run.
//
// Complexity:
//   - Time O(k·(V+E)), Space O(V+E).
func ComputeContext(ctx context.Context, g *core.Graph, opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	_, span := tracer.Start(ctx, "pagerank.Compute",
		trace.WithAttributes(
			attribute.Int("node_count", g.VertexCount()),
			attribute.Int("edge_count", g.EdgeCount()),
			attribute.Float64("damping", o.Damping),
			attribute.Int("iterations", o.Iterations),
		),
	)
	defer span.End()

	words := g.Vertices()
	table := &Table{
		Iterations: o.Iterations,
		Damping:    o.Damping,
		scores:     make(map[string]float64, len(words)),
	}
	if len(words) == 0 {
		span.AddEvent("empty_graph")
		return table, nil
	}

	idx := make(map[string]int, len(words))
	for i, w := range words {
		idx[w] = i
	}
	out := make([][]int, len(words))
	for i, w := range words {
		for _, dst := range g.NeighborIDs(w) {
			out[i] = append(out[i], idx[dst])
		}
	}

	pr, err := iterate(ctx, out, o)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	for i, w := range words {
		table.scores[w] = pr[i]
	}

	return table, nil
}

// iterate performs the power iteration over index adjacency out.
func iterate(ctx context.Context, out [][]int, o Options) ([]float64, error) {
	n := len(out)
	nf := float64(n)
	d := o.Damping

	pr := make([]float64, n)
	next := make([]float64, n)
	for i := range pr {
		pr[i] = 1 / nf
	}

	for it := 0; it < o.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pagerank: iteration %d: %w", it, err)
		}

		var dangling float64
		for i, dsts := range out {
			if len(dsts) == 0 {
				dangling += pr[i]
			}
		}
		base := (1-d)/nf + d*dangling/nf
		for i := range next {
			next[i] = base
		}
		for i, dsts := range out {
			if len(dsts) == 0 {
				continue
			}
			share := d * pr[i] / float64(len(dsts))
			for _, j := range dsts {
				next[j] += share
			}
		}
		pr, next = next, pr
	}

	return pr, nil
}
