// Package bfs provides breadth-first search over a word graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore words in non-decreasing hop count from a start word.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from word → distance (hops) from start
//   - Parent: map from word → its predecessor in the BFS tree
//   - Layers(): words grouped by distance, the "n words away" view
//   - OnVisit hook (may abort with an error).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - MinWeight ignores rare transitions (edges seen fewer than w times).
//
// Why
//
//   - Reachability: which words can ever follow a given word.
//   - Fewest-hop paths, as opposed to the cheapest paths of package dijkstra.
//
// Determinism
//
//	core.Graph.NeighborIDs returns successors sorted lexicographically and
//	BFS enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "the", bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	for d, words := range res.Layers() {
//		fmt.Println(d, words)
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start word does not exist.
//   - ErrOptionViolation      if invalid Option (negative MaxDepth, MinWeight < 1).
//   - ErrNotReached           from PathTo for a word outside the search tree.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
