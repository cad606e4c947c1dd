// File: inject.go
// Role: Text augmentation by inserting one random bridge word between neighbors.

package bridge

import (
	"strings"

	"github.com/katalvlaran/wordgraph/core"
)

// Rand is the source of randomness for Inject. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Inject returns words with one bridge word inserted between every
// consecutive pair that has at least one. The bridge is chosen uniformly
// from Find's sorted Bridges via rng.Intn. Pairs with a missing word or
// without bridges are left untouched. Input is not modified.
func Inject(g *core.Graph, words []string, rng Rand) []string {
	if len(words) == 0 {
		return nil
	}

	out := make([]string, 0, 2*len(words)-1)
	for i, w := range words {
		out = append(out, w)
		if i == len(words)-1 {
			break
		}
		res := Find(g, w, words[i+1])
		if res.Status != StatusFound {
			continue
		}
		out = append(out, res.Bridges[rng.Intn(len(res.Bridges))])
	}

	return out
}

// GenerateText splits input on whitespace, lower-cases each word, runs Inject
// and joins the result with single spaces. Punctuation attached to a word is
// kept, so such a word simply never matches a graph word.
func GenerateText(g *core.Graph, input string, rng Rand) string {
	fields := strings.Fields(input)
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}

	return strings.Join(Inject(g, fields, rng), " ")
}
