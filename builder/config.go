// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - tokenize = text.Tokenize
//   - chain    = nil (each constructor is an independent token stream)

package builder

import (
	"io"

	"github.com/katalvlaran/wordgraph/text"
)

// TokenizeFunc turns a reader into an ordered word sequence.
type TokenizeFunc func(r io.Reader) ([]string, error)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors; chain is the only shared state.
type builderConfig struct {
	tokenize TokenizeFunc

	// chain, when non-nil, carries the last word of the previous corpus so the
	// next constructor links to it. Shared by pointer across constructors.
	chain *chainState
}

type chainState struct {
	last string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		tokenize: text.Tokenize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// prefix returns the token that must precede the next corpus, if any.
func (c builderConfig) prefix() []string {
	if c.chain == nil || c.chain.last == "" {
		return nil
	}

	return []string{c.chain.last}
}

// remember records the last word of a just-ingested corpus.
func (c builderConfig) remember(tokens []string) {
	if c.chain == nil || len(tokens) == 0 {
		return
	}
	c.chain.last = tokens[len(tokens)-1]
}
