// Package builder assembles a core.Graph from one or more corpora using
// composable Constructor closures and functional options.
//
// Components:
//
//   - BuildGraph(gopts, bopts, cons...): the single orchestrator.
//   - Corpus constructors:
//     – Tokens:  an already-normalized word slice.
//     – Text:    an in-memory string, tokenized.
//     – Reader:  any io.Reader, tokenized to EOF.
//     – File:    a file path, opened and tokenized.
//     – Edges:   explicit (From, To, Weight) triples, replayed Weight times.
//   - Options:
//     – WithTokenizer: replace text.Tokenize.
//     – WithChained:   link corpus i's last word to corpus i+1's first word.
//
// Guarantees:
//
//   - Deterministic: same constructors in the same order ⇒ identical graph.
//   - Constructors never panic; errors carry the constructor name and wrap
//     the cause (errors.Is works against os, core and builder sentinels).
//
// Example:
//
//	g, err := builder.BuildGraph(nil, nil,
//		builder.File("corpus.txt"),
//		builder.Text("one more sentence"),
//	)
package builder
