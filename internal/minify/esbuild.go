package minify

import (
	"context"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// Esbuild minifies in process with esbuild's transform API.
type Esbuild struct {
	opts Options
}

// NewEsbuild creates an esbuild backend.
func NewEsbuild(opts Options) *Esbuild {
	return &Esbuild{opts: opts}
}

// Name implements Minifier.
func (e *Esbuild) Name() string { return BackendEsbuild }

// transformOptions maps Options onto esbuild. The output keeps the input's
// syntax level (ESNext target) because minification must not lower syntax.
func (e *Esbuild) transformOptions(path string) api.TransformOptions {
	opts := api.TransformOptions{
		Loader:            api.LoaderJS,
		Format:            api.FormatESModule,
		Target:            api.ESNext,
		Platform:          api.PlatformNeutral,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		TreeShaking:       api.TreeShakingTrue,
		KeepNames:         e.opts.KeepClassNames || e.opts.KeepFunctionNames,
		MangleProps:       e.opts.Private.Pattern(),
		LegalComments:     api.LegalCommentsNone,
		Sourcefile:        path,
		LogLevel:          api.LogLevelSilent,
	}
	if len(e.opts.Define) > 0 {
		opts.Define = make(map[string]string, len(e.opts.Define))
		for _, k := range e.opts.defineKeys() {
			opts.Define[k] = e.opts.Define[k]
		}
	}
	return opts
}

// Minify implements Minifier.
func (e *Esbuild) Minify(ctx context.Context, path string, src []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := api.Transform(string(src), e.transformOptions(path))
	if len(result.Errors) > 0 {
		msgs := api.FormatMessages(result.Errors, api.FormatMessagesOptions{
			Kind: api.ErrorMessage,
		})
		return nil, &DiagnosticError{
			Backend:     BackendEsbuild,
			Diagnostics: strings.Join(msgs, ""),
			Err:         firstMessage(result.Errors),
		}
	}
	return result.Code, nil
}

type messageError string

func (m messageError) Error() string { return string(m) }

func firstMessage(msgs []api.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	return messageError(msgs[0].Text)
}
