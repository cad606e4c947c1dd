package bridge_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/core"
)

type FindSuite struct {
	suite.Suite
	g *core.Graph
}

// SetupTest builds the sentence
// "the scientist carefully analyzed the data wrote a detailed report"
// plus a second sentence "the report shows the data".
func (s *FindSuite) SetupTest() {
	g := core.NewGraph()
	s.Require().NoError(g.AddSequence([]string{
		"the", "scientist", "carefully", "analyzed", "the", "data",
		"wrote", "a", "detailed", "report",
	}))
	s.Require().NoError(g.AddSequence([]string{"the", "report", "shows", "the", "data"}))
	s.g = g
}

func (s *FindSuite) TestSingleBridge() {
	require := require.New(s.T())
	res := bridge.Find(s.g, "scientist", "analyzed")
	require.Equal(bridge.StatusFound, res.Status)
	require.Equal([]string{"carefully"}, res.Bridges)
	require.NoError(res.Err())
}

func (s *FindSuite) TestMultipleBridgesSorted() {
	require := require.New(s.T())
	// Adds analyzed→report→data next to the existing analyzed→the→data.
	require.NoError(s.g.AddSequence([]string{"analyzed", "report", "data"}))
	res := bridge.Find(s.g, "analyzed", "data")
	require.Equal(bridge.StatusFound, res.Status)
	require.Equal([]string{"report", "the"}, res.Bridges)
}

func (s *FindSuite) TestNoBridge() {
	require := require.New(s.T())
	res := bridge.Find(s.g, "report", "scientist")
	require.Equal(bridge.StatusNoBridge, res.Status)
	require.Empty(res.Bridges)
	require.ErrorIs(res.Err(), bridge.ErrNoBridge)
	require.NotErrorIs(res.Err(), bridge.ErrWordNotFound)
}

func (s *FindSuite) TestDirectEdgeIsNotABridge() {
	require := require.New(s.T())
	// scientist→carefully is a direct edge; no two-hop path exists.
	res := bridge.Find(s.g, "scientist", "carefully")
	require.Equal(bridge.StatusNoBridge, res.Status)
}

func (s *FindSuite) TestMissing() {
	require := require.New(s.T())

	cases := []struct {
		w1, w2 string
		want   bridge.Status
	}{
		{"xyz", "abc", bridge.StatusMissingBoth},
		{"xyz", "the", bridge.StatusMissingWord1},
		{"the", "abc", bridge.StatusMissingWord2},
	}
	for _, tc := range cases {
		res := bridge.Find(s.g, tc.w1, tc.w2)
		require.Equal(tc.want, res.Status, "%s→%s", tc.w1, tc.w2)
		require.True(res.Status.Missing())
		require.Empty(res.Bridges)
		require.ErrorIs(res.Err(), bridge.ErrWordNotFound)
	}
}

func (s *FindSuite) TestSinkWordIsPresent() {
	require := require.New(s.T())
	// A word with no outgoing edges is still a word of the graph.
	g, err := core.FromTokens([]string{"a", "b", "sink"})
	require.NoError(err)
	res := bridge.Find(g, "a", "sink")
	require.Equal(bridge.StatusFound, res.Status)
	require.Equal([]string{"b"}, res.Bridges)
}

func TestFindSuite(t *testing.T) {
	suite.Run(t, new(FindSuite))
}

func TestFind_SelfLoopBridge(t *testing.T) {
	g, err := core.FromTokens([]string{"a", "a", "b"})
	require.NoError(t, err)

	res := bridge.Find(g, "a", "b")
	require.Equal(t, []string{"a"}, res.Bridges, "a→a→b makes a its own bridge")
}

func TestFind_EmptyGraph(t *testing.T) {
	res := bridge.Find(core.NewGraph(), "a", "b")
	require.Equal(t, bridge.StatusMissingBoth, res.Status)
}

// TestFind_Exhaustive checks the result set equals the brute-force set of mids
// on random graphs.
func TestFind_Exhaustive(t *testing.T) {
	vocab := []string{"a", "b", "c", "d", "e"}
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 30; trial++ {
		tokens := make([]string, 3+rng.Intn(25))
		for i := range tokens {
			tokens[i] = vocab[rng.Intn(len(vocab))]
		}
		g, err := core.FromTokens(tokens)
		require.NoError(t, err)

		for _, w1 := range g.Vertices() {
			for _, w2 := range g.Vertices() {
				var want []string
				for _, mid := range g.Vertices() {
					if g.HasEdge(w1, mid) && g.HasEdge(mid, w2) {
						want = append(want, mid)
					}
				}
				res := bridge.Find(g, w1, w2)
				if len(want) == 0 {
					require.Equal(t, bridge.StatusNoBridge, res.Status)
					continue
				}
				require.Equal(t, bridge.StatusFound, res.Status)
				require.Equal(t, want, res.Bridges)
			}
		}
	}
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "found", bridge.StatusFound.String())
	require.Equal(t, "no-bridge", bridge.StatusNoBridge.String())
	require.Equal(t, "status(42)", bridge.Status(42).String())
}
