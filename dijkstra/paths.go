// File: paths.go
// Role: Path-level API over Dijkstra: single pair, single source to all, path cost.

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// Route is the single-source result for one destination.
// Path is nil when Target cannot be reached; Cost is then Infinity.
type Route struct {
	Target string
	Path   []string
	Cost   int64
}

// Reachable reports whether a path to Target exists.
func (r Route) Reachable() bool { return len(r.Path) > 0 }

// ShortestPath returns the cheapest path src → … → dst, inclusive.
//
// Behavior highlights:
//   - nil when g is nil, either word is absent, or dst is unreachable. Absence
//     and unreachability are deliberately not distinguished.
//   - []string{src} when src == dst and the word is present (cost 0).
//   - Search stops as soon as dst is settled.
func ShortestPath(g *core.Graph, src, dst string) []string {
	if g == nil || !g.HasVertex(src) || !g.HasVertex(dst) {
		return nil
	}
	if src == dst {
		return []string{src}
	}

	dist, prev, err := Dijkstra(g, Source(src), WithTarget(dst), WithReturnPath())
	if err != nil || dist[dst] == Infinity {
		return nil
	}

	return buildPath(prev, src, dst)
}

// ShortestPaths runs Dijkstra once from src and returns a Route for every
// other word in the graph, in lexicographic order of Target.
//
// Errors:
//   - ErrNilGraph, ErrEmptySource.
//   - ErrVertexNotFound (wrapped with the word) when src is absent; this is
//     reported once, up front, and is distinct from per-route unreachability.
func ShortestPaths(g *core.Graph, src string) ([]Route, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	dist, prev, err := Dijkstra(g, Source(src), WithReturnPath())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, src)
	}

	vertices := g.Vertices()
	routes := make([]Route, 0, len(vertices))
	for _, v := range vertices {
		if v == src {
			continue
		}
		rt := Route{Target: v, Cost: dist[v]}
		if dist[v] != Infinity {
			rt.Path = buildPath(prev, src, v)
		}
		routes = append(routes, rt)
	}

	return routes, nil
}

// Cost sums edge weights along path. It returns false if any consecutive pair
// is not an edge of g. A single-word path costs 0 if the word is present.
func Cost(g *core.Graph, path []string) (int64, bool) {
	if g == nil || len(path) == 0 {
		return 0, false
	}
	if !g.HasVertex(path[0]) {
		return 0, false
	}
	var total int64
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return 0, false
		}
		total += w
	}

	return total, true
}

// buildPath walks prev back from dst to src and reverses the result.
func buildPath(prev map[string]string, src, dst string) []string {
	var rev []string
	for cur := dst; ; cur = prev[cur] {
		rev = append(rev, cur)
		if cur == src {
			break
		}
		if prev[cur] == "" {
			return nil
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
