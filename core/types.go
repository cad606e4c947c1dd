// Package core defines the word Graph: a directed, weighted, simple graph whose
// vertices are normalized words and whose edge weights count how many times the
// destination word immediately followed the source word in a corpus.
//
// This file declares Edge, Graph, GraphOption, GraphStats, the sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex (word) ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is a read-only value describing one directed connection From→To.
//
// Weight is the number of times the pair was observed; it is always ≥ 1
// for an edge stored in a Graph.
type Edge struct {
	// From is the source word.
	From string

	// To is the destination word.
	To string

	// Weight is the observed multiplicity of From→To.
	Weight int64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog and adjacency map for roughly n words.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		g.vertices = make(map[string]struct{}, n)
		g.adjacency = make(map[string]map[string]int64, n)
	}
}

// Graph is the in-memory word-adjacency graph.
//
// Invariants:
//   - Every word appearing as a source or destination is in vertices.
//   - adjacency[from][to] ≥ 1 for every stored edge; absent pairs have no entry.
//   - adjacency only holds keys for words with at least one outgoing edge.
//   - The graph is append-only: weights only grow, edges are never removed.
//
// mu guards vertices, adjacency and the cached counters. Writes happen during
// ingestion; afterwards the graph is read-mostly and safe for concurrent readers.
type Graph struct {
	mu sync.RWMutex

	vertices  map[string]struct{}         // word → presence
	adjacency map[string]map[string]int64 // from → to → weight

	edgeCount   int   // distinct (from,to) pairs
	totalWeight int64 // sum of all weights
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount   int   // all words (sources ∪ destinations)
	EdgeCount     int   // distinct directed edges
	TotalWeight   int64 // sum of weights = number of observed consecutive pairs
	SourceCount   int   // words with at least one outgoing edge
	DanglingCount int   // words with no outgoing edge
	SelfLoopCount int   // edges with From == To
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
