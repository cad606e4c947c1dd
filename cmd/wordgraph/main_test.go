package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trekCorpus has exactly one shortest path between the pairs used below,
// so the assertions do not depend on tie-breaking.
//
//	to -> explore -> strange -> new -> worlds -> to -> seek -> out -> new
//	   -> life -> and -> new -> civilizations
const trekCorpus = "To explore strange new worlds, to seek out new life and new civilizations."

// runCLI writes trekCorpus to a temp dir and executes args against it.
// Output files go to the same dir and no .env file is read.
func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string, dir string) {
	t.Helper()
	dir = t.TempDir()
	corpus := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(corpus, []byte(trekCorpus), 0o644))

	t.Setenv("WORDGRAPH_WALK_OUTPUT", filepath.Join(dir, "walk.txt"))
	t.Setenv("WORDGRAPH_DOT_OUTPUT", filepath.Join(dir, "graph.dot"))
	t.Setenv("WORDGRAPH_PNG_OUTPUT", filepath.Join(dir, "graph.png"))

	full := append([]string{"--env-file", filepath.Join(dir, "missing.env"), "-f", corpus}, args...)
	var out, errOut bytes.Buffer
	code = run(full, &out, &errOut)

	return code, out.String(), errOut.String(), dir
}

func TestShow(t *testing.T) {
	code, out, _, _ := runCLI(t, "show")
	require.Equal(t, exitOK, code)

	assert.Contains(t, out, "Directed Graph:\n")
	assert.Contains(t, out, "new -> civilizations(1) life(1) worlds(1) \n")
	assert.Contains(t, out, "to -> explore(1) seek(1) \n")
	assert.Contains(t, out, "10 words, 12 edges")
}

func TestBridge(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"found", []string{"explore", "new"}, `The bridge words from "explore" to "new" are: "strange".`},
		{"case folded", []string{"SEEK", "New"}, `The bridge words from "seek" to "new" are: "out".`},
		{"none", []string{"to", "new"}, `No bridge words from "to" to "new"!`},
		{"missing first", []string{"klingon", "new"}, `No "klingon" in the graph!`},
		{"missing second", []string{"new", "klingon"}, `No "klingon" in the graph!`},
		{"missing both", []string{"kirk", "spock"}, `No "kirk" and "spock" in the graph!`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, _, _ := runCLI(t, append([]string{"bridge"}, tc.args...)...)
			require.Equal(t, exitOK, code)
			assert.Equal(t, tc.want+"\n", out)
		})
	}
}

func TestBridgeNeedsTwoWords(t *testing.T) {
	code, _, stderr, _ := runCLI(t, "bridge", "new")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "accepts 2 arg(s)")
}

func TestGenerate(t *testing.T) {
	// Every pair has at most one bridge, so the seed does not matter.
	code, out, _, _ := runCLI(t, "--seed", "3", "generate", "Explore new", "and civilizations")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "explore strange new life and new civilizations\n", out)
}

func TestPath(t *testing.T) {
	t.Run("pair", func(t *testing.T) {
		code, out, _, _ := runCLI(t, "path", "life", "worlds")
		require.Equal(t, exitOK, code)
		assert.Equal(t, "Shortest path: life -> and -> new -> worlds (length 3)\n", out)
	})

	t.Run("unreachable", func(t *testing.T) {
		code, out, _, _ := runCLI(t, "path", "civilizations", "to")
		require.Equal(t, exitOK, code)
		assert.Equal(t, "No path from civilizations to to!\n", out)
	})

	t.Run("single source", func(t *testing.T) {
		code, out, _, _ := runCLI(t, "path", "worlds")
		require.Equal(t, exitOK, code)
		assert.True(t, strings.HasPrefix(out, `Shortest paths from "worlds":`))
		assert.Contains(t, out, `  to "seek": worlds -> to -> seek (length 2)`)
		assert.NotContains(t, out, `to "worlds":`)
	})

	t.Run("single source missing", func(t *testing.T) {
		code, out, _, _ := runCLI(t, "path", "klingon")
		require.Equal(t, exitOK, code)
		assert.Equal(t, "No \"klingon\" in the graph!\n", out)
	})

	t.Run("export highlights the path", func(t *testing.T) {
		code, _, _, dir := runCLI(t, "path", "worlds", "seek", "--export")
		require.Equal(t, exitOK, code)

		data, err := os.ReadFile(filepath.Join(dir, "graph.dot"))
		require.NoError(t, err)
		dot := string(data)
		assert.Contains(t, dot, `"worlds" -> "to" [color=red, penwidth=2.0, label="1"];`)
		assert.Contains(t, dot, `"to" -> "seek" [color=red, penwidth=2.0, label="1"];`)
		assert.Contains(t, dot, `"to" -> "explore" [label="1"];`)
	})
}

func TestPageRank(t *testing.T) {
	t.Run("one word", func(t *testing.T) {
		code, out, _, _ := runCLI(t, "pagerank", "new")
		require.Equal(t, exitOK, code)
		assert.Regexp(t, `^PageRank: 0\.\d{4}\n$`, out)
	})

	t.Run("absent word", func(t *testing.T) {
		code, out, _, _ := runCLI(t, "pagerank", "klingon")
		require.Equal(t, exitOK, code)
		assert.Contains(t, out, "PageRank: 0.0000\n")
		assert.Contains(t, out, `No "klingon" in the graph!`)
	})

	t.Run("ranking", func(t *testing.T) {
		code, out, _, _ := runCLI(t, "pagerank", "--top", "3")
		require.Equal(t, exitOK, code)
		assert.Contains(t, out, "PageRank (top 3 of 10 words)")
		assert.Contains(t, out, "  1. ")
		assert.Contains(t, out, "  3. ")
		assert.NotContains(t, out, "  4. ")
	})

	t.Run("bad damping", func(t *testing.T) {
		t.Setenv("WORDGRAPH_DAMPING", "1.5")
		code, _, stderr, _ := runCLI(t, "pagerank")
		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr, "config: invalid")
	})
}

func TestWalk(t *testing.T) {
	t.Run("writes the trace", func(t *testing.T) {
		code, out, _, dir := runCLI(t, "--seed", "42", "walk")
		require.Equal(t, exitOK, code)

		first, _, _ := strings.Cut(out, "\n")
		trace, ok := strings.CutPrefix(first, "Random walk: ")
		require.True(t, ok, out)
		require.NotEmpty(t, trace)

		data, err := os.ReadFile(filepath.Join(dir, "walk.txt"))
		require.NoError(t, err)
		assert.Equal(t, trace, string(data))
	})

	t.Run("same seed same walk", func(t *testing.T) {
		_, out1, _, _ := runCLI(t, "--seed", "7", "walk", "--no-save")
		_, out2, _, _ := runCLI(t, "--seed", "7", "walk", "--no-save")
		assert.Equal(t, out1, out2)
	})

	t.Run("no-save", func(t *testing.T) {
		code, _, _, dir := runCLI(t, "walk", "--no-save")
		require.Equal(t, exitOK, code)
		assert.NoFileExists(t, filepath.Join(dir, "walk.txt"))
	})
}

func TestExport(t *testing.T) {
	code, out, _, dir := runCLI(t, "export", "--render=false")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Graph written to")

	data, err := os.ReadFile(filepath.Join(dir, "graph.dot"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph G {\n"))
	assert.Contains(t, string(data), `"new" -> "worlds" [label="1"];`)
	assert.NotContains(t, string(data), "color=red")
	assert.NoFileExists(t, filepath.Join(dir, "graph.png"))
}

func TestConfig(t *testing.T) {
	code, out, _, _ := runCLI(t, "--seed", "9", "config")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Seed: 9\n")
	assert.Contains(t, out, "Damping: 0.85\n")
	assert.Contains(t, out, "Iterations: 100\n")
}

func TestTraceWritesSpans(t *testing.T) {
	code, _, stderr, _ := runCLI(t, "--trace", "bridge", "explore", "new")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "wordgraph.ingest")
	assert.Contains(t, stderr, "wordgraph.bridge")
}

func TestNoCorpus(t *testing.T) {
	var out, errOut bytes.Buffer
	t.Setenv("WORDGRAPH_CORPUS", "")
	code := run([]string{"--env-file", filepath.Join(t.TempDir(), "none.env"), "show"}, &out, &errOut)

	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut.String(), "no corpus")
}

func TestMissingCorpusFile(t *testing.T) {
	var out, errOut bytes.Buffer
	dir := t.TempDir()
	code := run([]string{"--env-file", filepath.Join(dir, "none.env"), "-f", filepath.Join(dir, "nope.txt"), "show"}, &out, &errOut)

	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut.String(), "nope.txt")
}

func TestReach(t *testing.T) {
	code, out, _, _ := runCLI(t, "reach", "new", "--depth", "2")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "Reachable from \"new\" (5 words):\n  1: civilizations life worlds\n  2: and to\n", out)

	code, out, _, _ = runCLI(t, "reach", "civilizations")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "Nothing is reachable from \"civilizations\"!\n", out)
}
