package sizereport

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/andybalholm/brotli"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	tsperrors "github.com/reflex-stack/tsp/internal/errors"
	"github.com/reflex-stack/tsp/internal/minify"
)

// BrotliQuality is the compression level used for the compressed size.
const BrotliQuality = brotli.BestCompression

type countingWriter struct {
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

// BrotliSize returns the brotli-compressed byte count of r without buffering the output.
func BrotliSize(r io.Reader) (int64, error) {
	counter := &countingWriter{}
	w := brotli.NewWriterLevel(counter, BrotliQuality)
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return counter.n, nil
}

// Compressor measures one file at a time: it reads the raw script, minifies it
// into the scratch tree and brotli-compresses the minified artifact.
type Compressor struct {
	layout   Layout
	minifier minify.Minifier
	logger   *log.Logger
}

// NewCompressor creates a compressor over layout using the given minifier.
func NewCompressor(layout Layout, m minify.Minifier) *Compressor {
	return &Compressor{layout: layout, minifier: m}
}

// SetLogger sets the logger for per-file debug output.
func (c *Compressor) SetLogger(logger *log.Logger) {
	c.logger = logger
}

// Measure returns [raw, minified, compressed] for rel, a path relative to the output root.
func (c *Compressor) Measure(ctx context.Context, rel string) (Sizes, error) {
	src := filepath.Join(c.layout.OutputRoot, filepath.FromSlash(rel))
	raw, err := afero.ReadFile(c.layout.Fs, src)
	if err != nil {
		return Sizes{}, tsperrors.Discovery(src, err)
	}

	minified, err := c.minifier.Minify(ctx, rel, raw)
	if err != nil {
		var diag *minify.DiagnosticError
		if errors.As(err, &diag) {
			return Sizes{}, tsperrors.Minification(rel, diag.Diagnostics, diag.Err)
		}
		return Sizes{}, tsperrors.Minification(rel, "", err)
	}

	artifact := c.layout.ScratchPath(rel)
	if err := c.layout.Fs.MkdirAll(filepath.Dir(artifact), 0755); err != nil {
		return Sizes{}, tsperrors.Compression(rel, err)
	}
	if err := afero.WriteFile(c.layout.Fs, artifact, minified, 0644); err != nil {
		return Sizes{}, tsperrors.Compression(rel, err)
	}

	compressed, err := c.compressedSize(artifact)
	if err != nil {
		return Sizes{}, tsperrors.Compression(rel, err)
	}

	if c.logger != nil {
		c.logger.Debug("minified", "file", rel, "backend", c.minifier.Name(), "artifact", artifact)
	}
	return Sizes{int64(len(raw)), int64(len(minified)), compressed}, nil
}

func (c *Compressor) compressedSize(artifact string) (int64, error) {
	f, err := c.layout.Fs.Open(artifact)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return BrotliSize(f)
}
