package dot_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dot"
)

func sample(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromTokens([]string{"to", "be", "or", "not", "to", "be"})
	require.NoError(t, err)

	return g
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, sample(t)))

	want := `digraph G {
  rankdir=LR;
  "be" -> "or" [label="1"];
  "not" -> "to" [label="1"];
  "or" -> "not" [label="1"];
  "to" -> "be" [label="2"];
}
`
	require.Equal(t, want, buf.String())
}

func TestWrite_Highlight(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, sample(t),
		dot.WithHighlight([]string{"or", "not", "to"}),
		dot.WithName("words"),
		dot.WithRankDir("TB"),
	))

	out := buf.String()
	require.Contains(t, out, "digraph words {\n  rankdir=TB;\n")
	require.Contains(t, out, `"or" -> "not" [color=red, penwidth=2.0, label="1"];`)
	require.Contains(t, out, `"not" -> "to" [color=red, penwidth=2.0, label="1"];`)
	require.Contains(t, out, `"to" -> "be" [label="2"];`)
}

func TestWrite_EmptyAndNil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, core.NewGraph(), dot.WithRankDir(""), dot.WithHighlight([]string{"x"})))
	require.Equal(t, "digraph G {\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, dot.Write(&buf, nil))
	require.Equal(t, "digraph G {\n  rankdir=LR;\n}\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_Error(t *testing.T) {
	require.Error(t, dot.Write(failWriter{}, sample(t)))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.dot")
	require.NoError(t, dot.WriteFile(path, sample(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"to" -> "be" [label="2"];`)

	require.Error(t, dot.WriteFile(filepath.Join(t.TempDir(), "missing", "g.dot"), sample(t)))
}

func TestRender_NotFound(t *testing.T) {
	r := dot.Renderer{Command: "definitely-not-a-graphviz-binary"}
	require.False(t, r.Available())

	err := r.Render(context.Background(), "in.dot", "out.png")
	require.ErrorIs(t, err, dot.ErrRendererNotFound)
}

func TestRender_Failed(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX `false` binary")
	}
	r := dot.Renderer{Command: "false"}
	if !r.Available() {
		t.Skip("`false` not on PATH")
	}

	err := r.Render(context.Background(), "in.dot", "out.png")
	require.ErrorIs(t, err, dot.ErrRenderFailed)
}
