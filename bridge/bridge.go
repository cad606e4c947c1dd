// File: bridge.go
// Role: Bridge-word lookup (Find) and its Result/Status types.

package bridge

import (
	"errors"
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/wordgraph/core"
)

// Sentinel errors returned by Result.Err.
var (
	// ErrWordNotFound indicates one or both query words are absent from the graph.
	ErrWordNotFound = errors.New("bridge: word not in graph")

	// ErrNoBridge indicates both words are present but no bridge word connects them.
	ErrNoBridge = errors.New("bridge: no bridge words")
)

// Status classifies the outcome of Find.
type Status int

const (
	// StatusFound means at least one bridge word exists.
	StatusFound Status = iota
	// StatusMissingBoth means neither word is in the graph.
	StatusMissingBoth
	// StatusMissingWord1 means only word1 is absent.
	StatusMissingWord1
	// StatusMissingWord2 means only word2 is absent.
	StatusMissingWord2
	// StatusNoBridge means both words are present and no bridge exists.
	StatusNoBridge
)

// String returns a short lower-case label for logs.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusMissingBoth:
		return "missing-both"
	case StatusMissingWord1:
		return "missing-word1"
	case StatusMissingWord2:
		return "missing-word2"
	case StatusNoBridge:
		return "no-bridge"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Missing reports whether the status is one of the absent-word cases.
func (s Status) Missing() bool {
	return s == StatusMissingBoth || s == StatusMissingWord1 || s == StatusMissingWord2
}

// Result is the outcome of one bridge query.
type Result struct {
	Word1   string
	Word2   string
	Status  Status
	Bridges []string // sorted; non-empty iff Status == StatusFound
}

// Err returns nil for StatusFound, ErrWordNotFound (wrapped with the missing
// words) for the missing cases, and ErrNoBridge otherwise.
func (r *Result) Err() error {
	switch r.Status {
	case StatusFound:
		return nil
	case StatusMissingBoth:
		return fmt.Errorf("%w: %q and %q", ErrWordNotFound, r.Word1, r.Word2)
	case StatusMissingWord1:
		return fmt.Errorf("%w: %q", ErrWordNotFound, r.Word1)
	case StatusMissingWord2:
		return fmt.Errorf("%w: %q", ErrWordNotFound, r.Word2)
	default:
		return fmt.Errorf("%w: from %q to %q", ErrNoBridge, r.Word1, r.Word2)
	}
}

// Find returns every bridge word from word1 to word2.
//
// Implementation:
//   - Stage 1: Classify absence; a word is present if it is any edge endpoint.
//   - Stage 2: Intersect successors(word1) with predecessors(word2).
//   - Stage 3: Sort the intersection.
//
// Complexity:
//   - Time O(d1 + S + k log k), where d1 is word1's out-degree, S the number of
//     source words (predecessor scan) and k the number of bridges.
func Find(g *core.Graph, word1, word2 string) *Result {
	res := &Result{Word1: word1, Word2: word2}

	has1, has2 := g.HasVertex(word1), g.HasVertex(word2)
	switch {
	case !has1 && !has2:
		res.Status = StatusMissingBoth
		return res
	case !has1:
		res.Status = StatusMissingWord1
		return res
	case !has2:
		res.Status = StatusMissingWord2
		return res
	}

	succ := mapset.NewThreadUnsafeSet(g.NeighborIDs(word1)...)
	pred := mapset.NewThreadUnsafeSet(g.Predecessors(word2)...)
	mids := succ.Intersect(pred).ToSlice()
	if len(mids) == 0 {
		res.Status = StatusNoBridge
		return res
	}
	sort.Strings(mids)

	res.Status = StatusFound
	res.Bridges = mids

	return res
}
