package walk

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/wordgraph/core"
)

// Rand is the source of randomness for Walk. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Trace is the ordered word sequence of one walk.
type Trace struct {
	nodes []string
}

// Nodes returns a copy of the visited words.
func (t Trace) Nodes() []string {
	out := make([]string, len(t.nodes))
	copy(out, t.nodes)

	return out
}

// Len returns the number of words in the trace.
func (t Trace) Len() int { return len(t.nodes) }

// Empty reports whether the walk visited nothing.
func (t Trace) Empty() bool { return len(t.nodes) == 0 }

// String renders every word followed by a single space, so a non-empty trace
// always ends with a trailing separator. An empty trace renders as "".
func (t Trace) String() string {
	var sb strings.Builder
	for _, w := range t.nodes {
		sb.WriteString(w)
		sb.WriteByte(' ')
	}

	return sb.String()
}

// step is a traversed directed edge.
type step struct {
	from, to string
}

// Walk runs one traversal of g using rng for every random choice.
//
// Implementation:
//   - Stage 1: Pick the start from the sorted source words (rng.Intn(len)).
//   - Stage 2: Repeatedly pick from the sorted distinct destinations.
//   - Stage 3: Stop at a dead end or on the first repeated edge.
//
// The traversed-edge set lives only for the duration of the call.
// A nil or empty graph yields an empty Trace and consumes no randomness.
//
// Complexity:
//   - Time O(L·d log d) for a trace of length L, Space O(L).
func Walk(g *core.Graph, rng Rand) Trace {
	if g == nil {
		return Trace{}
	}
	sources := g.Sources()
	if len(sources) == 0 {
		return Trace{}
	}

	cur := sources[rng.Intn(len(sources))]
	nodes := []string{cur}
	taken := mapset.NewThreadUnsafeSet[step]()

	for {
		next := g.NeighborIDs(cur)
		if len(next) == 0 {
			break
		}
		to := next[rng.Intn(len(next))]
		e := step{from: cur, to: to}
		if taken.Contains(e) {
			break
		}
		taken.Add(e)
		nodes = append(nodes, to)
		cur = to
	}

	return Trace{nodes: nodes}
}
