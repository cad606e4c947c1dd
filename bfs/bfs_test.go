package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/wordgraph/bfs"
	"github.com/katalvlaran/wordgraph/core"
)

// trek builds: to→explore→strange→new→worlds→to→seek→out→new→life→and→new→civilizations.
func trek(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromTokens([]string{
		"to", "explore", "strange", "new", "worlds", "to", "seek", "out",
		"new", "life", "and", "new", "civilizations",
	})
	if err != nil {
		t.Fatalf("FromTokens: %v", err)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "to"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := trek(t)
	// start vertex not found
	if _, err := bfs.BFS(g, "klingon"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, "to", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	// MinWeight below one is a violation
	if _, err := bfs.BFS(g, "to", bfs.WithMinWeight(0)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("zero weight: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleWord covers a one-word graph.
func TestBFS_SingleWord(t *testing.T) {
	g, _ := core.FromTokens([]string{"alone"})
	res, err := bfs.BFS(g, "alone")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"alone"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["alone"]; d != 0 {
		t.Errorf("Depth[alone] = %d; want 0", d)
	}
}

// TestBFS_OrderAndDepths checks lexicographic layering on the trek graph.
func TestBFS_OrderAndDepths(t *testing.T) {
	res, err := bfs.BFS(trek(t), "worlds")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"worlds", "to", "explore", "seek", "strange", "out", "new", "civilizations", "life", "and"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	depths := map[string]int{"worlds": 0, "to": 1, "seek": 2, "new": 4, "and": 6}
	for w, d := range depths {
		if res.Depth[w] != d {
			t.Errorf("Depth[%s] = %d; want %d", w, res.Depth[w], d)
		}
	}
}

// TestBFS_Layers groups words by hop count.
func TestBFS_Layers(t *testing.T) {
	res, err := bfs.BFS(trek(t), "new")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"new"},
		{"civilizations", "life", "worlds"},
		{"and", "to"},
		{"explore", "seek"},
		{"strange", "out"},
	}
	if got := res.Layers(); !reflect.DeepEqual(got, want) {
		t.Errorf("Layers = %v; want %v", got, want)
	}
}

// TestBFS_MaxDepth ensures words beyond the limit are not visited.
func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(trek(t), "new", bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 4 {
		t.Errorf("Order = %v; want start plus 3 successors", res.Order)
	}
	if _, ok := res.Depth["to"]; ok {
		t.Errorf("to is two hops away and must not be reached")
	}
}

// TestBFS_MinWeight follows only repeated transitions.
func TestBFS_MinWeight(t *testing.T) {
	g, _ := core.FromTokens([]string{"a", "b", "a", "b", "c"})
	res, err := bfs.BFS(g, "a", bfs.WithMinWeight(2))
	if err != nil {
		t.Fatal(err)
	}
	// a→b has weight 2, b→a and b→c weight 1.
	if want := []string{"a", "b"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_PathTo verifies fewest-hop path reconstruction.
func TestBFS_PathTo(t *testing.T) {
	res, err := bfs.BFS(trek(t), "life")
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo("seek")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"life", "and", "new", "worlds", "to", "seek"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(seek) = %v; want %v", path, want)
	}
	if _, err := res.PathTo("klingon"); !errors.Is(err, bfs.ErrNotReached) {
		t.Errorf("PathTo(klingon): want ErrNotReached, got %v", err)
	}
}

// TestBFS_Unreachable ensures words behind a dead end are not reached.
func TestBFS_Unreachable(t *testing.T) {
	res, err := bfs.BFS(trek(t), "civilizations")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"civilizations"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisitError aborts the traversal.
func TestBFS_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	visited := 0
	_, err := bfs.BFS(trek(t), "to", bfs.WithOnVisit(func(word string, depth int) error {
		visited++
		if depth == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if visited != 2 {
		t.Errorf("visited = %d; want 2", visited)
	}
}

// TestBFS_Cancelled returns the context error.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(trek(t), "to", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
