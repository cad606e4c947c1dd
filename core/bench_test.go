// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wordgraph/core"
)

// BenchmarkAddEdge_Distinct measures adding fresh pairs.
func BenchmarkAddEdge_Distinct(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("root", fmt.Sprintf("w%d", i))
	}
}

// BenchmarkAddEdge_Repeated measures the weight-increment path.
func BenchmarkAddEdge_Repeated(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("to", "be")
	}
}

// BenchmarkAddSequence measures folding a 10k-token stream over a 100-word vocabulary.
func BenchmarkAddSequence(b *testing.B) {
	tokens := make([]string, 10000)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("w%d", (i*7)%100)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph(core.WithCapacity(100))
		_ = g.AddSequence(tokens)
	}
}

// BenchmarkEdges measures the sorted edge snapshot.
func BenchmarkEdges(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdge(fmt.Sprintf("w%d", i%50), fmt.Sprintf("w%d", (i*13)%50))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}
