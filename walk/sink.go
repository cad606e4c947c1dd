package walk

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/wordgraph/core"
)

// DefaultOutput is the file FileSink writes to when Path is empty.
const DefaultOutput = "random_walk.txt"

// Sink persists a rendered trace.
type Sink interface {
	Write(trace string) error
}

// FileSink writes the trace to a file, replacing previous contents.
// The bytes on disk are exactly the string passed to Write.
type FileSink struct {
	Path string
}

// Write implements Sink.
func (s FileSink) Write(trace string) error {
	path := s.Path
	if path == "" {
		path = DefaultOutput
	}
	if err := os.WriteFile(path, []byte(trace), 0o644); err != nil {
		return fmt.Errorf("walk: write %q: %w", path, err)
	}

	return nil
}

// WriterSink writes the trace to any io.Writer.
type WriterSink struct {
	W io.Writer
}

// Write implements Sink.
func (s WriterSink) Write(trace string) error {
	if _, err := io.WriteString(s.W, trace); err != nil {
		return fmt.Errorf("walk: write: %w", err)
	}

	return nil
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(trace string) error

// Write implements Sink.
func (f SinkFunc) Write(trace string) error { return f(trace) }

// Run walks g, renders the trace and persists it to sink.
//
// Behavior highlights:
//   - An empty trace returns "" and never touches sink.
//   - A nil sink skips persistence.
//   - On a sink error the rendered trace is still returned with the error.
func Run(g *core.Graph, rng Rand, sink Sink) (string, error) {
	tr := Walk(g, rng)
	if tr.Empty() {
		return "", nil
	}
	s := tr.String()
	if sink == nil {
		return s, nil
	}
	if err := sink.Write(s); err != nil {
		return s, err
	}

	return s, nil
}
