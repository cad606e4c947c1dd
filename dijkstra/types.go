// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on the word graph.
//
// Edge weights are observation counts (always ≥ 1), so a path's cost is the
// sum of the multiplicities along it: frequently co-occurring words are
// "farther apart", exactly as the counts dictate.
//
// Options:
//
//	– Source:           ID of the starting word (must be non-empty and present in the graph).
//	– WithTarget:       stop as soon as this word's distance is final.
//	– WithReturnPath:   return the predecessor map for path reconstruction.
//	– WithMaxDistance:  optional cap on distances to explore; words beyond this are skipped.
//	– WithInfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source word does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 (option constructor panics).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (option constructor panics).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Infinity is the distance reported for unreachable words. It is larger than
// any achievable path cost.
const Infinity int64 = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting word (must be non-empty and present in the graph).
// Target           – optional; when set, the search stops once Target is settled.
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore. Must be ≥ 0. Default Infinity.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable. Must be > 0.
//
//	Default Infinity (no obstacles).
type Options struct {
	Source           string
	Target           string
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting word. Must be called.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithTarget enables early termination: as soon as target is popped from the
// frontier its distance is final and the search stops. Distances of words not
// yet settled at that moment are upper bounds, not final values.
func WithTarget(target string) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Words whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source word.
//
// Defaults:
//   - Target:           "" (full single-source run).
//   - ReturnPath:       false.
//   - MaxDistance:      Infinity.
//   - InfEdgeThreshold: Infinity.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}
