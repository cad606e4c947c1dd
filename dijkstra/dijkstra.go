// Package dijkstra implements Dijkstra's shortest-path algorithm on the word graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold up to E stale entries (lazy decrease-key).
//
// Notes on implementation choices:
//
//   - Every word (source or destination) starts at Infinity, including words
//     with no outgoing edges, so unreachable sinks are never reported at 0.
//   - Neighbors are relaxed in lexicographic order and heap ties are broken by
//     word, so predecessor choice among equal-cost paths is reproducible.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/wordgraph/core"
)

// Dijkstra computes shortest distances from Options.Source to every word in g.
//
// Returns:
//
//   - dist: map from word to minimum distance (Infinity if unreachable or not
//     settled before an early stop).
//   - prev: predecessor map if ReturnPath is set (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u; "" for the
//     source and for unreachable words.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // read-only within Dijkstra
	options Options           // Source, Target, thresholds
	dist    map[string]int64  // word → current best distance from Source
	prev    map[string]string // word → predecessor on the shortest path
	visited map[string]bool   // settled words
	pq      nodePQ            // lazy min-heap
}

// init sets dist[v] = Infinity for all words, then pushes Source at 0.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = Infinity
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the main loop. It terminates when the heap is empty, when the
// minimum tentative distance exceeds MaxDistance, or right after Target is settled.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if u == r.options.Target {
			return
		}
		r.relax(u, d)
	}
}

// relax tries to improve the distance of every distinct destination of u.
// Updates happen only on strict improvement, so the first predecessor found
// for a given cost is kept.
func (r *runner) relax(u string, du int64) {
	edges := r.g.EdgesOf(u)
	for _, v := range r.g.NeighborIDs(u) {
		w := edges[v]
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := du + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a word and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances fall back to the word itself.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop moved the minimum there).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
