package minify

import (
	"context"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/js"
)

const mediaTypeJS = "application/javascript"

// Tdewolff minifies in process with tdewolff/minify. It removes whitespace
// and simplifies syntax but neither mangles properties nor applies defines.
type Tdewolff struct {
	m *minify.M
}

// NewTdewolff creates a tdewolff backend.
func NewTdewolff(opts Options) *Tdewolff {
	m := minify.New()
	m.Add(mediaTypeJS, &js.Minifier{
		KeepVarNames: opts.KeepClassNames || opts.KeepFunctionNames,
	})
	return &Tdewolff{m: m}
}

// Name implements Minifier.
func (t *Tdewolff) Name() string { return BackendTdewolff }

// Minify implements Minifier.
func (t *Tdewolff) Minify(ctx context.Context, path string, src []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := t.m.Bytes(mediaTypeJS, src)
	if err != nil {
		return nil, &DiagnosticError{
			Backend:     BackendTdewolff,
			Diagnostics: err.Error(),
			Err:         err,
		}
	}
	return out, nil
}
