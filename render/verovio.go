package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/signadot/scorex/debug"
)

const DefaultVerovio = "verovio"

// Verovio renders with the verovio command line tool.
type Verovio struct {
	// Path of the executable, looked up in $PATH when it has no
	// separator. Defaults to DefaultVerovio.
	Path   string
	Logger *slog.Logger
}

func NewVerovio(path string, logger *slog.Logger) *Verovio {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Verovio{Path: path, Logger: logger}
}

func (v *Verovio) path() string {
	if v.Path == "" {
		return DefaultVerovio
	}
	return v.Path
}

func (v *Verovio) Render(ctx context.Context, xml []byte, opts Options) ([]byte, error) {
	logger := v.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	dir, err := os.MkdirTemp("", "scorex-render-")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	defer os.RemoveAll(dir)
	in := filepath.Join(dir, "excerpt.musicxml")
	if err := os.WriteFile(in, xml, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	args := append(opts.VerovioArgs(), "--outfile", "-", in)
	if debug.Render() {
		debug.Logf("render: %s %s\n", v.path(), strings.Join(args, " "))
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, v.path(), args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	start := time.Now()
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		return nil, fmt.Errorf("%w: %s: %w: %s", ErrRender, v.path(), err, msg)
	}
	svg := stdout.Bytes()
	if err := CheckSVG(svg); err != nil {
		return nil, err
	}
	logger.Debug("rendered page",
		"engine", v.path(),
		"page", opts.Page,
		"bytes", len(svg),
		"elapsed", time.Since(start))
	return svg, nil
}
