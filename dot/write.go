package dot

import (
	"bufio"
	"fmt"
	"io"
	"os"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/wordgraph/core"
)

// Defaults.
const (
	DefaultName    = "G"
	DefaultRankDir = "LR"
)

// options configures Write.
type options struct {
	name      string
	rankDir   string
	highlight [][2]string
}

// Option customizes DOT output.
type Option func(*options)

// WithName sets the digraph identifier.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithRankDir sets the layout direction (LR, TB, RL, BT). Empty omits it.
func WithRankDir(dir string) Option {
	return func(o *options) { o.rankDir = dir }
}

// WithHighlight marks every consecutive pair of path as a highlighted edge.
// Paths shorter than two words highlight nothing.
func WithHighlight(path []string) Option {
	return func(o *options) {
		for i := 1; i < len(path); i++ {
			o.highlight = append(o.highlight, [2]string{path[i-1], path[i]})
		}
	}
}

// Write renders g as DOT into w.
func Write(w io.Writer, g *core.Graph, opts ...Option) error {
	o := options{name: DefaultName, rankDir: DefaultRankDir}
	for _, opt := range opts {
		opt(&o)
	}
	hl := mapset.NewThreadUnsafeSet(o.highlight...)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", o.name)
	if o.rankDir != "" {
		fmt.Fprintf(bw, "  rankdir=%s;\n", o.rankDir)
	}
	if g != nil {
		for _, e := range g.Edges() {
			fmt.Fprintf(bw, "  %q -> %q [", e.From, e.To)
			if hl.Contains([2]string{e.From, e.To}) {
				bw.WriteString("color=red, penwidth=2.0, ")
			}
			fmt.Fprintf(bw, "label=\"%d\"];\n", e.Weight)
		}
	}
	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dot: write: %w", err)
	}

	return nil
}

// WriteFile renders g into the file at path, replacing it.
func WriteFile(path string, g *core.Graph, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dot: create %q: %w", path, err)
	}
	if err := Write(f, g, opts...); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("dot: close %q: %w", path, err)
	}

	return nil
}
