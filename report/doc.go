// Package report renders query results as the human-readable sentences the
// command line prints. Every function is pure: values in, string out.
//
// Formats:
//
//	Bridge      The bridge words from "a" to "b" are: "x", "y" and "z".
//	            No "a" and "b" in the graph! / No "a" in the graph!
//	            No bridge words from "a" to "b"!
//	Path        Shortest path: a -> b -> c (length 3) / No path from a to b!
//	Routes      Shortest paths from "a":
//	              to "b": a -> b (length 1)
//	              to "z": no path
//	PageRank    PageRank: 0.1234
//	Graph       Directed Graph:
//	            a -> b(2) c(1)
//	Walk        Random walk: a b c
package report
