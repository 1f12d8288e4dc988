// Package runner executes the external tools tsp drives (tsc, the test runtime, terser).
package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	tsperrors "github.com/reflex-stack/tsp/internal/errors"
)

// Executor runs commands from a fixed working directory.
type Executor struct {
	dir     string
	verbose bool
	stdout  io.Writer
	stderr  io.Writer
	logger  *log.Logger
}

// NewExecutor creates an executor rooted at dir.
// Streamed output goes to the process stdout and stderr.
func NewExecutor(dir string) *Executor {
	return &Executor{
		dir:    dir,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: log.Default(),
	}
}

// SetVerbose enables echoing of every command line before it runs.
func (e *Executor) SetVerbose(v bool) {
	e.verbose = v
}

// SetOutput redirects streamed output (for testing).
func (e *Executor) SetOutput(stdout, stderr io.Writer) {
	e.stdout = stdout
	e.stderr = stderr
}

// SetLogger replaces the logger used for command echoing.
func (e *Executor) SetLogger(logger *log.Logger) {
	e.logger = logger
}

// Dir returns the working directory of the executor.
func (e *Executor) Dir() string {
	return e.dir
}

func (e *Executor) command(ctx context.Context, name string, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.dir
	cmd.Env = os.Environ()

	if e.verbose {
		e.logger.Info("running", "cmd", CommandLine(name, args))
	} else {
		e.logger.Debug("running", "cmd", CommandLine(name, args))
	}
	return cmd
}

// Run executes a command, streaming its output.
// A non-zero exit is returned as-is; the tool prints its own diagnostics.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	cmd := e.command(ctx, name, args)
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

// Capture executes a command with the given stdin and returns its stdout and stderr.
func (e *Executor) Capture(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, []byte, error) {
	cmd := e.command(ctx, name, args)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// LookPath reports an environment error when name is not installed.
// Tools under <dir>/node_modules/.bin are found as well, so a locally
// installed tsc or terser works without a global install.
func (e *Executor) LookPath(name string) (string, error) {
	local := filepath.Join(e.dir, "node_modules", ".bin", name)
	if fi, err := os.Stat(local); err == nil && !fi.IsDir() {
		return local, nil
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", tsperrors.Environmentf("%s not found in node_modules/.bin or PATH", name)
	}
	return path, nil
}

// ExitCode extracts the process exit code from err, or -1 when err is not an exit error.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// CommandLine renders a command for display.
func CommandLine(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
