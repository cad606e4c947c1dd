package dot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Sentinel errors for rendering.
var (
	// ErrRendererNotFound indicates the Graphviz binary is not on PATH.
	ErrRendererNotFound = errors.New("dot: renderer not found")

	// ErrRenderFailed indicates the renderer ran but exited with an error.
	ErrRenderFailed = errors.New("dot: render failed")
)

// DefaultCommand is the Graphviz layout binary.
const DefaultCommand = "dot"

// DefaultTimeout bounds one render.
const DefaultTimeout = 30 * time.Second

// Renderer converts a DOT file to an image with an external command.
type Renderer struct {
	Command string        // default DefaultCommand
	Format  string        // -T value, default "png"
	Timeout time.Duration // default DefaultTimeout
}

// Render runs the default Renderer: `dot -Tpng dotFile -o outFile`.
func Render(ctx context.Context, dotFile, outFile string) error {
	return Renderer{}.Render(ctx, dotFile, outFile)
}

// Available reports whether the renderer binary can be found.
func (r Renderer) Available() bool {
	_, err := exec.LookPath(r.command())
	return err == nil
}

// Render converts dotFile into outFile.
//
// Errors:
//   - ErrRendererNotFound if the command is not on PATH.
//   - ErrRenderFailed (with stderr) if it exits non-zero.
//   - context.DeadlineExceeded if Timeout elapses.
func (r Renderer) Render(ctx context.Context, dotFile, outFile string) error {
	path, err := exec.LookPath(r.command())
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrRendererNotFound, r.command(), err)
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	format := r.Format
	if format == "" {
		format = "png"
	}

	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, path, "-T"+format, dotFile, "-o", outFile)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if cmdCtx.Err() != nil {
			return fmt.Errorf("dot: render %q: %w", dotFile, cmdCtx.Err())
		}
		return fmt.Errorf("%w: %v: %s", ErrRenderFailed, err, strings.TrimSpace(stderr.String()))
	}

	return nil
}

func (r Renderer) command() string {
	if r.Command == "" {
		return DefaultCommand
	}

	return r.Command
}
