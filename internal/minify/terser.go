package minify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
)

// CommandRunner runs an external command with stdin and captures its output.
// *runner.Executor satisfies it.
type CommandRunner interface {
	Capture(ctx context.Context, stdin io.Reader, name string, args ...string) (stdout, stderr []byte, err error)
}

// Terser runs the terser CLI. The script is piped through stdin and the
// minified code read back from stdout.
type Terser struct {
	opts   Options
	cmd    CommandRunner
	binary string
}

// NewTerser creates a terser backend running "terser" through cmd.
func NewTerser(opts Options, cmd CommandRunner) *Terser {
	return &Terser{opts: opts, cmd: cmd, binary: "terser"}
}

// SetBinary overrides the terser executable path.
func (t *Terser) SetBinary(path string) {
	t.binary = path
}

// Name implements Minifier.
func (t *Terser) Name() string { return BackendTerser }

// Args returns the terser command-line arguments for the configured options.
func (t *Terser) Args() []string {
	o := t.opts
	compress := []string{
		fmt.Sprintf("ecma=%d", o.Ecma),
		fmt.Sprintf("passes=%d", o.Passes),
		fmt.Sprintf("keep_classnames=%t", o.KeepClassNames),
		fmt.Sprintf("keep_fnames=%t", o.KeepFunctionNames),
		"dead_code=true",
		"unsafe_arrows=true",
		"unsafe_methods=true",
		"unsafe_undefined=true",
		"keep_fargs=false",
		"conditionals=false",
	}
	mangle := []string{
		"toplevel=true",
		fmt.Sprintf("keep_classnames=%t", o.KeepClassNames),
		fmt.Sprintf("keep_fnames=%t", o.KeepFunctionNames),
	}

	args := []string{
		"--compress", strings.Join(compress, ","),
		"--mangle", strings.Join(mangle, ","),
	}
	if p := o.Private.Pattern(); p != "" {
		args = append(args, "--mangle-props", "regex=/"+p+"/")
	}
	for _, k := range o.defineKeys() {
		args = append(args, "-d", k+"="+o.Define[k])
	}
	return append(args, "--module", "--toplevel")
}

// Minify implements Minifier.
func (t *Terser) Minify(ctx context.Context, path string, src []byte) ([]byte, error) {
	stdout, stderr, err := t.cmd.Capture(ctx, bytes.NewReader(src), t.binary, t.Args()...)
	if err != nil {
		return nil, &DiagnosticError{
			Backend:     BackendTerser,
			Diagnostics: string(stderr),
			Err:         err,
		}
	}
	return stdout, nil
}
