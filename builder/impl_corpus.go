// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// impl_corpus.go - corpus constructors: Tokens, Text, Reader, File.
//
// Contract:
//   - Every constructor reduces its input to a token slice and folds it with
//     core.Graph.AddSequence, so weights count consecutive occurrences.
//   - With WithChained, the previous corpus' last word is prepended.
//
// Complexity:
//   - Time O(n) in input size, Space O(n) for the token slice.

package builder

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/wordgraph/core"
)

// Method tags used in error context.
const (
	methodTokens = "Tokens"
	methodText   = "Text"
	methodReader = "Reader"
	methodFile   = "File"
	methodEdges  = "Edges"
)

// Tokens ingests an already-normalized word sequence.
func Tokens(tokens []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return ingest(g, cfg, methodTokens, tokens)
	}
}

// Text tokenizes s with the configured tokenizer and ingests it.
func Text(s string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return readInto(g, cfg, methodText, stringReader(s))
	}
}

// Reader tokenizes r to EOF and ingests it. The reader is not closed.
func Reader(r io.Reader) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if r == nil {
			return fmt.Errorf("%s: %w", methodReader, ErrNilSource)
		}

		return readInto(g, cfg, methodReader, r)
	}
}

// File opens path, tokenizes its contents and ingests them.
func File(path string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%s: %w", methodFile, err)
		}
		defer f.Close()

		return readInto(g, cfg, methodFile, f)
	}
}

// Edges replays explicit weighted edges, adding each pair Weight times.
// Edges with Weight < 1 are skipped.
func Edges(edges []core.Edge) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, e := range edges {
			for i := int64(0); i < e.Weight; i++ {
				if err := g.AddEdge(e.From, e.To); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodEdges, e.From, e.To, err)
				}
			}
		}

		return nil
	}
}

func readInto(g *core.Graph, cfg builderConfig, method string, r io.Reader) error {
	tokens, err := cfg.tokenize(r)
	if err != nil {
		return fmt.Errorf("%s: tokenize: %w", method, err)
	}

	return ingest(g, cfg, method, tokens)
}

func ingest(g *core.Graph, cfg builderConfig, method string, tokens []string) error {
	seq := tokens
	if p := cfg.prefix(); p != nil && len(tokens) > 0 {
		seq = append(p, tokens...)
	}
	if err := g.AddSequence(seq); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	cfg.remember(tokens)

	return nil
}
