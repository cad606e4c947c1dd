// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Corpus constructors (Tokens/Text/Reader/File/Edges) are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same inputs and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// Constructor applies one corpus to g using the resolved builderConfig.
// Constructors MUST:
//   - Validate their input early and return sentinel errors (no panics).
//   - Feed words to g in corpus order so consecutive pairs become edges.
//   - Report the last word they ingested through cfg.chain (see WithChained).
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor (linear in corpus size).
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against builder
//     sentinels (ErrNilSource, ErrConstructFailed) or core/os errors.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// FromFile is the common one-corpus case: tokenize the file at path and fold
// it into a fresh graph.
func FromFile(path string, bopts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(nil, bopts, File(path))
}
