// Package walk performs randomized traversals of a core.Graph.
//
// A walk starts at a word chosen uniformly among words with at least one
// outgoing edge. At each step it picks uniformly among the current word's
// distinct destinations (weights do not bias the choice) and:
//
//   - stops if the current word has no outgoing edge;
//   - stops without moving if the chosen edge was already taken in this walk;
//   - otherwise takes the edge and appends the destination.
//
// A trace therefore never repeats a directed edge and holds at most E+1 words.
//
// Walk is a pure computation. Persisting the result is a separate concern:
// Run renders the trace and hands it to a Sink, but only when the trace is
// non-empty, so an empty graph leaves no file behind.
package walk
