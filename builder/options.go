// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.

package builder

// BuilderOption customizes corpus ingestion by mutating a builderConfig
// before the first constructor runs.
type BuilderOption func(*builderConfig)

// WithTokenizer replaces the default text.Tokenize.
// Panics on nil to surface programmer error early.
func WithTokenizer(fn TokenizeFunc) BuilderOption {
	if fn == nil {
		panic("builder: WithTokenizer(nil)")
	}

	return func(c *builderConfig) {
		c.tokenize = fn
	}
}

// WithChained joins consecutive corpora into one stream: the last word of
// corpus i and the first word of corpus i+1 form an edge. By default every
// constructor is an independent stream.
func WithChained() BuilderOption {
	return func(c *builderConfig) {
		c.chain = &chainState{}
	}
}
