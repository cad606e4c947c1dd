// Package bridge answers bridge-word queries over a core.Graph and uses them
// to augment text.
//
// A bridge word from word1 to word2 is any word mid such that both edges
// word1→mid and mid→word2 exist. Only direct two-hop connections count.
// mid may equal word1 or word2 when the graph has the matching self-loop.
//
// Find never fails: every outcome is a *Result whose Status tells the caller
// which of the five cases applies, so a sentence can always be formatted
// around it. Result.Err maps the failure statuses onto sentinel errors for
// callers that prefer errors.Is branching.
//
// Determinism:
//
//	Result.Bridges is sorted lexicographically. Inject and GenerateText draw
//	from that sorted slice with an injected Rand, so a seeded source yields
//	identical text on every run.
package bridge
