// Package wordgraph turns a plain-text corpus into a directed, weighted
// word-adjacency graph and answers questions about it: which words bridge
// two others, the cheapest path between words, how central a word is, and
// where a random stroll through the text leads.
//
// 🚀 What is wordgraph?
//
//	A small, thread-safe library plus a CLI that brings together:
//		• Core graph: every word is a vertex, every "a b" pair an edge a→b whose
//		  weight counts how often b followed a
//		• Bridge words: w such that a→w→b, and text augmentation with them
//		• Shortest paths: Dijkstra over pair counts, single pair or single source
//		• Reachability: BFS layers by hop count
//		• PageRank: fixed 100 rounds, damping 0.85, dangling mass spread evenly
//		• Random walk: stops at the first repeated edge or a dead end
//		• Graphviz DOT export with a highlighted path
//
// ✨ Why wordgraph?
//
//   - Deterministic – every enumeration is sorted, randomness is injected
//   - Explicit results – PageRank is a returned table, not hidden graph state
//   - Pure core – algorithms never touch files; I/O lives at the edges
//
// Packages:
//
//	core/      - Graph, Edge, GraphStats; AddEdge / AddSequence / FromTokens
//	text/      - corpus tokenizer (ASCII letters, lower-cased)
//	builder/   - corpus constructors (Text, Reader, File, Edges) and options
//	bridge/    - Find, Inject, GenerateText
//	dijkstra/  - Dijkstra, ShortestPath, ShortestPaths, Cost
//	bfs/       - breadth-first reachability and hop layers
//	pagerank/  - Compute / ComputeContext → *Table
//	walk/      - Walk (pure) → Trace; Run with a Sink
//	dot/       - Write / WriteFile DOT, Render via the external `dot` binary
//	report/    - the human-readable sentences printed by the CLI
//	cmd/wordgraph - cobra CLI wiring all of the above
//
// Quick example:
//
//	"to be or not to be"
//
//	    to ──2──▶ be ──1──▶ or ──1──▶ not
//	    ▲                              │
//	    └──────────────1───────────────┘
//
//	"be" is the bridge from "to" to "or"; the cheapest path not → be is
//	not → to → be with length 3.
//
//	go install github.com/katalvlaran/wordgraph/cmd/wordgraph@latest
package wordgraph
