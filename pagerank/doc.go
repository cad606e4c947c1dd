// Package pagerank scores every word of a core.Graph with the damped
// random-surfer model.
//
// For N words, damping d and iteration count k:
//
//	PR₀(n)   = 1/N
//	PRᵢ₊₁(n) = (1-d)/N + d·( Σ_{m→n} PRᵢ(m)/outdeg(m) + dangling/N )
//
// where outdeg(m) counts distinct destinations (weights are ignored) and
// dangling is the total score held by words with no outgoing edge, spread
// evenly over all N words so no mass leaks out of the graph.
//
// Behavior:
//
//   - Exactly k synchronous iterations run (default 100); there is no early
//     exit on convergence. Each round reads only the previous round's scores.
//   - The result is an explicit *Table owned by the caller. It is a snapshot:
//     mutating the graph afterwards does not change it.
//   - Table.Score of a word that is not in the graph is 0.0.
//   - An empty graph yields an empty table.
//
// Options: WithDamping (default 0.85, in [0,1]), WithIterations (default 100, > 0).
package pagerank
