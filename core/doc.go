// Package core provides the thread-safe, in-memory word graph used by every
// query package in wordgraph.
//
// The Graph G = (V,E) is a directed, weighted, simple graph:
//
//   - Vertices are normalized words; a word is a vertex as soon as it appears
//     as a source or a destination of any edge.
//   - An edge from→to carries an integer weight ≥ 1 counting how many times
//     "to" immediately followed "from" in the corpus.
//   - Re-observing a pair increments its weight; there are no parallel edges.
//   - Self-loops ("the the") are ordinary edges.
//   - The graph is append-only: no removal, no weight decrease.
//
// Storage is a nested map adjacency[from][to] = weight plus a vertex catalog,
// guarded by a single sync.RWMutex. Ingestion is the single-writer phase; every
// query afterwards only takes the read lock.
//
// Core Methods:
//
//	// Ingestion
//	AddEdge(from, to string) error        // O(1)
//	AddVertex(id string) error            // O(1)
//	AddSequence(tokens []string) error    // O(n)
//	FromTokens(tokens []string) (*Graph, error)
//
//	// Query
//	HasVertex(id) bool / HasEdge(from, to) bool / Weight(from, to) (int64, bool)
//	EdgesOf(id) map[string]int64          // copy; unknown id → empty map
//	NeighborIDs(id) []string              // sorted distinct destinations
//	Predecessors(id) []string             // sorted distinct sources into id
//	Vertices() []string / Sources() []string
//	Edges() []Edge                        // sorted by (From, To)
//
//	// Counts
//	VertexCount() / EdgeCount() / TotalWeight() / OutDegree(id) / Degree(id)
//	Stats() *GraphStats
//
// Determinism:
//
//	Every method that enumerates words returns them in lexicographic order,
//	so algorithms built on top (bridge words, Dijkstra, random walks) are
//	reproducible for a fixed random seed.
//
// Example:
//
//	g, _ := core.FromTokens([]string{"to", "be", "or", "not", "to", "be"})
//	w, _ := g.Weight("to", "be") // 2
package core
