// File: methods_adjacent.go
// Role: Neighborhood APIs (EdgesOf, NeighborIDs, Predecessors, AdjacencyList).
// Determinism:
//   - NeighborIDs() and Predecessors() return IDs sorted lex asc.
//   - AdjacencyList() returns per-word destination slices sorted lex asc.
// Concurrency:
//   - Read operations hold the read lock and return caller-owned copies.

package core

import "sort"

// EdgesOf returns a copy of the outgoing edges of id as destination → weight.
//
// Behavior highlights:
//   - Unknown words and dangling words yield an empty, non-nil map (never an error).
//   - The returned map is independent of the graph; mutating it has no effect.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the out-degree.
func (g *Graph) EdgesOf(id string) map[string]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket := g.adjacency[id]
	out := make(map[string]int64, len(bucket))
	for to, w := range bucket {
		out[to] = w
	}

	return out
}

// NeighborIDs returns the distinct destinations of id, sorted lexicographically.
// Unknown or dangling words yield an empty slice.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) []string {
	g.mu.RLock()
	bucket := g.adjacency[id]
	out := make([]string, 0, len(bucket))
	for to := range bucket {
		out = append(out, to)
	}
	g.mu.RUnlock()

	sort.Strings(out)

	return out
}

// Predecessors returns the distinct words with an edge into id, sorted lexicographically.
//
// Complexity:
//   - Time O(S + k log k), where S is the number of source words and k the result size.
func (g *Graph) Predecessors(id string) []string {
	g.mu.RLock()
	var out []string
	for from, bucket := range g.adjacency {
		if _, ok := bucket[id]; ok {
			out = append(out, from)
		}
	}
	g.mu.RUnlock()

	sort.Strings(out)

	return out
}

// AdjacencyList returns a snapshot word → sorted destinations for every word
// in the graph. Dangling words map to an empty slice.
//
// Complexity:
//   - Time O(V + E log d), Space O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	out := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		bucket := g.adjacency[id]
		dests := make([]string, 0, len(bucket))
		for to := range bucket {
			dests = append(dests, to)
		}
		out[id] = dests
	}
	g.mu.RUnlock()

	for _, dests := range out {
		sort.Strings(dests)
	}

	return out
}
