// Package dijkstra provides Dijkstra's shortest-path algorithm over the word
// graph, where an edge's weight is the number of times its pair was observed.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source word to all
//     reachable words in O((V + E) log V) time.
//   - ShortestPath answers the single-pair query and stops as soon as the
//     destination is settled.
//   - ShortestPaths answers the single-source query: one Route per other word,
//     in lexicographic order, each either a path or an explicit "no path".
//   - Cost recomputes a path's total weight, useful to verify results.
//
// Key features:
//
//   - Functional options: Source, WithTarget, WithReturnPath, WithMaxDistance,
//     WithInfEdgeThreshold.
//   - Deterministic: neighbors are relaxed in sorted order and heap ties are
//     broken by word, so equal-cost alternatives always resolve the same way.
//   - Every word starts at Infinity, including sink words with no out-edges.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    Source was not provided.
//   - ErrNilGraph:       graph pointer is nil.
//   - ErrVertexNotFound: Source is not a word of the graph.
//
// The pair form never returns an error: absent words and unreachable words are
// both "no path" (nil). The single-source form reports an absent source once,
// up front, as ErrVertexNotFound.
//
// Example:
//
//	path := dijkstra.ShortestPath(g, "the", "report")
//	cost, _ := dijkstra.Cost(g, path)
package dijkstra
