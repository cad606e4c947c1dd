package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/katalvlaran/wordgraph/pagerank"
)

// Bridge renders a bridge.Result.
func Bridge(res *bridge.Result) string {
	switch res.Status {
	case bridge.StatusMissingBoth:
		return fmt.Sprintf("No %q and %q in the graph!", res.Word1, res.Word2)
	case bridge.StatusMissingWord1:
		return Missing(res.Word1)
	case bridge.StatusMissingWord2:
		return Missing(res.Word2)
	case bridge.StatusNoBridge:
		return fmt.Sprintf("No bridge words from %q to %q!", res.Word1, res.Word2)
	}

	return fmt.Sprintf("The bridge words from %q to %q are: %s.", res.Word1, res.Word2, quoteList(res.Bridges))
}

// Missing is the sentence for a single word absent from the graph.
func Missing(word string) string {
	return fmt.Sprintf("No %q in the graph!", word)
}

// quoteList joins quoted words: "a" / "a" and "b" / "a", "b" and "c".
func quoteList(words []string) string {
	q := make([]string, len(words))
	for i, w := range words {
		q[i] = fmt.Sprintf("%q", w)
	}
	if len(q) <= 1 {
		return strings.Join(q, "")
	}

	return strings.Join(q[:len(q)-1], ", ") + " and " + q[len(q)-1]
}

// Path renders one single-pair result. An empty path is "no path".
func Path(src, dst string, path []string, cost int64) string {
	if len(path) == 0 {
		return fmt.Sprintf("No path from %s to %s!", src, dst)
	}

	return fmt.Sprintf("Shortest path: %s (length %d)", strings.Join(path, " -> "), cost)
}

// Routes renders the single-source listing, one line per destination.
func Routes(src string, routes []dijkstra.Route) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Shortest paths from %q:", src)
	for _, r := range routes {
		fmt.Fprintf(&sb, "\n  to %q: ", r.Target)
		if !r.Reachable() {
			sb.WriteString("no path")
			continue
		}
		fmt.Fprintf(&sb, "%s (length %d)", strings.Join(r.Path, " -> "), r.Cost)
	}

	return sb.String()
}

// PageRank renders one score with four decimals.
func PageRank(score float64) string {
	return fmt.Sprintf("PageRank: %.4f", score)
}

// Ranking renders entries as aligned "word  score" lines.
func Ranking(entries []pagerank.Entry) string {
	width := 0
	for _, e := range entries {
		if len(e.Word) > width {
			width = len(e.Word)
		}
	}

	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%3d. %-*s  %.4f", i+1, width, e.Word, e.Score)
	}

	return sb.String()
}

// Graph renders the adjacency listing: one line per source word, in order,
// each destination followed by its weight and a space.
func Graph(g *core.Graph) string {
	var sb strings.Builder
	sb.WriteString("Directed Graph:\n")

	cur := ""
	for _, e := range g.Edges() {
		if e.From != cur {
			if cur != "" {
				sb.WriteByte('\n')
			}
			cur = e.From
			fmt.Fprintf(&sb, "%s -> ", e.From)
		}
		fmt.Fprintf(&sb, "%s(%d) ", e.To, e.Weight)
	}
	if cur != "" {
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Walk renders a random-walk trace as printed by the command line.
func Walk(trace string) string {
	if trace == "" {
		return "Random walk: (empty graph)"
	}

	return "Random walk: " + trace
}

// Stats renders a one-line graph summary.
func Stats(st *core.GraphStats) string {
	return fmt.Sprintf("%d words, %d edges (%d observations), %d dangling, %d self-loops",
		st.VertexCount, st.EdgeCount, st.TotalWeight, st.DanglingCount, st.SelfLoopCount)
}

// Reach renders BFS layers: layers[0] is the start word, layers[d] the
// words exactly d hops away.
func Reach(src string, layers [][]string) string {
	n := 0
	for _, l := range layers[min(1, len(layers)):] {
		n += len(l)
	}
	if n == 0 {
		return fmt.Sprintf("Nothing is reachable from %q!", src)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Reachable from %q (%d words):", src, n)
	for d := 1; d < len(layers); d++ {
		fmt.Fprintf(&sb, "\n  %d: %s", d, strings.Join(layers[d], " "))
	}

	return sb.String()
}
