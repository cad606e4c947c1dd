// File: methods_vertices.go
// Role: Vertex queries.
//
// Determinism:
//   - Vertices() and Sources() return IDs sorted lexicographically ascending.
//
// Concurrency:
//   - All methods take the read lock; vertices are only created by AddEdge/AddVertex.

package core

import "sort"

// AddVertex registers a word without any edges (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, insert into the vertex catalog.
//
// Behavior highlights:
//   - Used by AddSequence for single-token corpora; the word becomes a dangling node.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether the word appears anywhere in the graph,
// as a source or as a destination (empty ID ⇒ false).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all words in lexicographic ascending order.
//
// Behavior highlights:
//   - Stable enumeration surface used for determinism in higher-level algorithms.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// Sources returns the words that have at least one outgoing edge, sorted ascending.
//
// Complexity:
//   - Time O(S log S), Space O(S), where S is the number of source words.
func (g *Graph) Sources() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of words in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// OutDegree returns the number of distinct destinations of id.
// Multiplicity does not count: a→b observed five times contributes 1.
// Unknown words have out-degree 0.
//
// Complexity:
//   - Time O(1).
func (g *Graph) OutDegree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// Degree returns the distinct in- and out-degree of id.
//
// Implementation:
//   - Stage 1: Validate id and vertex existence under the read lock.
//   - Stage 2: out is the size of the adjacency bucket.
//   - Stage 3: Scan all buckets for id as a destination to count in.
//
// Behavior highlights:
//   - A self-loop contributes +1 to both in and out.
//
// Errors:
//   - ErrEmptyVertexID: if id is empty.
//   - ErrVertexNotFound: if the word does not exist.
//
// Complexity:
//   - Time O(S) where S is the number of source words (no reverse index is kept).
func (g *Graph) Degree(id string) (in, out int, err error) {
	if id == "" {
		return 0, 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}
	out = len(g.adjacency[id])
	for _, bucket := range g.adjacency {
		if _, ok := bucket[id]; ok {
			in++
		}
	}

	return in, out, nil
}
