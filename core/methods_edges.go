// File: methods_edges.go
// Role: Edge ingestion & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount/TotalWeight.
// Determinism:
//   - Edges() returns edges sorted by From asc, then To asc.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import "sort"

// AddEdge records one observation of the pair from→to.
//
// Implementation:
//   - Stage 1: Validate both IDs are non-empty (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, register both words in the vertex catalog.
//   - Stage 3: Increment adjacency[from][to], creating the bucket and the edge (weight 1) if absent.
//
// Behavior highlights:
//   - Repeated pairs increment the weight; parallel edges never exist.
//   - Self-loops (from == to) are stored like any other edge.
//   - Registering an already-known word is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty. The graph is left untouched.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	bucket, ok := g.adjacency[from]
	if !ok {
		bucket = make(map[string]int64)
		g.adjacency[from] = bucket
	}
	if bucket[to] == 0 {
		g.edgeCount++
	}
	bucket[to]++
	g.totalWeight++

	return nil
}

// HasEdge reports whether at least one observation of from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[from][to] > 0
}

// Weight returns the multiplicity of from→to and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]

	return w, ok
}

// Edges returns every edge as a value triple, sorted by From then To.
// The slice is freshly allocated and owned by the caller.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for from, bucket := range g.adjacency {
		for to, w := range bucket {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of distinct directed edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// TotalWeight returns the sum of all edge weights, i.e. the number of
// consecutive word pairs ingested.
// Complexity: O(1).
func (g *Graph) TotalWeight() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.totalWeight
}
