// File: api.go
// Role: Sequence ingestion (the graph builder fold) and read-only summaries.
// Policy:
//   - AddSequence is the only bulk mutator; it is a fold over AddEdge.
//   - Stats() is an O(V+E) snapshot; rely on it for diagnostics and logs.

package core

// AddSequence folds consecutive token pairs into edges: for tokens
// t0 t1 ... tn it records t0→t1, t1→t2, ..., t(n-1)→tn.
//
// Implementation:
//   - Stage 1: Reject any empty token up front so the graph is never partially updated.
//   - Stage 2: A single token is registered as an isolated (dangling) word.
//   - Stage 3: Otherwise call AddEdge for every adjacent pair in order.
//
// Errors:
//   - ErrEmptyVertexID: if any token is empty.
//
// Complexity:
//   - Time O(n), Space O(distinct words).
func (g *Graph) AddSequence(tokens []string) error {
	for _, tok := range tokens {
		if tok == "" {
			return ErrEmptyVertexID
		}
	}

	switch len(tokens) {
	case 0:
		return nil
	case 1:
		return g.AddVertex(tokens[0])
	}

	for i := 0; i+1 < len(tokens); i++ {
		if err := g.AddEdge(tokens[i], tokens[i+1]); err != nil {
			return err
		}
	}

	return nil
}

// FromTokens builds a new Graph from an ordered token sequence.
//
// Errors:
//   - ErrEmptyVertexID: if any token is empty.
func FromTokens(tokens []string, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	if err := g.AddSequence(tokens); err != nil {
		return nil, err
	}

	return g, nil
}

// Stats produces a read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock once so counts are mutually consistent.
//   - Stage 2: Count sources and self-loops in one pass over adjacency.
//
// Complexity:
//   - Time O(S), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
		TotalWeight: g.totalWeight,
		SourceCount: len(g.adjacency),
	}
	for from, bucket := range g.adjacency {
		if _, ok := bucket[from]; ok {
			stats.SelfLoopCount++
		}
	}
	stats.DanglingCount = stats.VertexCount - stats.SourceCount

	return &stats
}

// IsEmpty reports whether the graph has no words at all.
func (g *Graph) IsEmpty() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices) == 0
}
