package pagerank

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for Compute.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("pagerank: graph is nil")

	// ErrBadDamping indicates a damping factor outside [0,1].
	ErrBadDamping = errors.New("pagerank: damping must be in [0,1]")

	// ErrBadIterations indicates a non-positive iteration count.
	ErrBadIterations = errors.New("pagerank: iterations must be positive")
)

// Defaults.
const (
	DefaultDamping    = 0.85
	DefaultIterations = 100
)

// Options configures one PageRank computation.
type Options struct {
	Damping    float64
	Iterations int
}

// Option mutates Options.
type Option func(*Options)

// WithDamping sets the probability of following an edge rather than jumping.
func WithDamping(d float64) Option {
	return func(o *Options) { o.Damping = d }
}

// WithIterations sets the exact number of power iterations.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// DefaultOptions returns d=0.85 and 100 iterations.
func DefaultOptions() Options {
	return Options{Damping: DefaultDamping, Iterations: DefaultIterations}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	if o.Damping < 0 || o.Damping > 1 || o.Damping != o.Damping {
		return fmt.Errorf("%w: got %v", ErrBadDamping, o.Damping)
	}
	if o.Iterations <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadIterations, o.Iterations)
	}

	return nil
}

// Entry is one word with its score.
type Entry struct {
	Word  string
	Score float64
}

// Table holds the scores of one computation.
type Table struct {
	// Iterations and Damping record the parameters the table was computed with.
	Iterations int
	Damping    float64

	scores map[string]float64
}

// Score returns the score of word, or 0.0 if the word was not in the graph.
func (t *Table) Score(word string) float64 {
	if t == nil {
		return 0
	}

	return t.scores[word]
}

// Has reports whether word was scored.
func (t *Table) Has(word string) bool {
	if t == nil {
		return false
	}
	_, ok := t.scores[word]

	return ok
}

// Len returns the number of scored words.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.scores)
}

// Sum returns the total score, ≈1 for a non-empty graph.
func (t *Table) Sum() float64 {
	if t == nil {
		return 0
	}
	words := make([]string, 0, len(t.scores))
	for w := range t.scores {
		words = append(words, w)
	}
	sort.Strings(words)

	var s float64
	for _, w := range words {
		s += t.scores[w]
	}

	return s
}

// Ranked returns all entries by descending score, ties by ascending word.
func (t *Table) Ranked() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.scores))
	for w, s := range t.scores {
		out = append(out, Entry{Word: w, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word < out[j].Word
	})

	return out
}

// Top returns at most n entries of Ranked. n ≤ 0 returns all.
func (t *Table) Top(n int) []Entry {
	r := t.Ranked()
	if n > 0 && n < len(r) {
		r = r[:n]
	}

	return r
}
