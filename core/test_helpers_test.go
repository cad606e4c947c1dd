// Package core_test contains test helpers for wordgraph/core.
//
// Purpose:
//   - Provide small, deterministic word fixtures for core.Graph.
//   - Keep the helpers free of *testing.T usage inside goroutines.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/wordgraph/core"
)

// Common words used across core tests.
const (
	WordEmpty = ""

	WordThe       = "the"
	WordScientist = "scientist"
	WordCarefully = "carefully"
	WordAnalyzed  = "analyzed"
	WordData      = "data"
	WordWrote     = "wrote"
	WordA         = "a"
	WordDetailed  = "detailed"
	WordReport    = "report"

	WordMissing = "missing"
)

// scientistTokens is the token stream of
// "The scientist carefully analyzed the data, wrote a detailed report."
var scientistTokens = []string{
	WordThe, WordScientist, WordCarefully, WordAnalyzed,
	WordThe, WordData, WordWrote, WordA, WordDetailed, WordReport,
}

// mustGraph builds a graph from tokens and fails the test on error.
func mustGraph(t *testing.T, tokens ...string) *core.Graph {
	t.Helper()
	g, err := core.FromTokens(tokens)
	if err != nil {
		t.Fatalf("FromTokens(%v): %v", tokens, err)
	}

	return g
}

// mustAddEdge adds one observation and fails the test on error.
func mustAddEdge(t *testing.T, g *core.Graph, from, to string) {
	t.Helper()
	if err := g.AddEdge(from, to); err != nil {
		t.Fatalf("AddEdge(%q,%q): %v", from, to, err)
	}
}

// mustErrorIs asserts errors.Is(err, want).
func mustErrorIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("error = %v; want %v", err, want)
	}
}

// equalStrings reports whether two slices have identical contents and order.
func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
