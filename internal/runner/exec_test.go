package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	tsperrors "github.com/reflex-stack/tsp/internal/errors"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell utilities")
	}
}

func quietExecutor(dir string) (*Executor, *bytes.Buffer, *bytes.Buffer) {
	e := NewExecutor(dir)
	var stdout, stderr bytes.Buffer
	e.SetOutput(&stdout, &stderr)
	e.SetLogger(log.New(&bytes.Buffer{}))
	return e, &stdout, &stderr
}

func TestExecutor_Run(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	e, stdout, _ := quietExecutor(dir)

	if err := e.Run(context.Background(), "sh", "-c", "pwd"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got, _ := filepath.EvalSymlinks(strings.TrimSpace(stdout.String()))
	want, _ := filepath.EvalSymlinks(dir)
	if got != want {
		t.Errorf("Run() working dir = %q, want %q", got, want)
	}
}

func TestExecutor_Run_ExitCode(t *testing.T) {
	skipOnWindows(t)
	e, _, _ := quietExecutor(t.TempDir())

	err := e.Run(context.Background(), "sh", "-c", "exit 3")
	if err == nil {
		t.Fatal("Run() expected error")
	}
	if code := ExitCode(err); code != 3 {
		t.Errorf("ExitCode() = %d, want 3", code)
	}
}

func TestExecutor_Capture(t *testing.T) {
	skipOnWindows(t)
	e, _, _ := quietExecutor(t.TempDir())

	stdout, stderr, err := e.Capture(context.Background(), strings.NewReader("hello"), "sh", "-c", "cat; echo oops >&2")
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	if string(stdout) != "hello" {
		t.Errorf("stdout = %q, want %q", stdout, "hello")
	}
	if strings.TrimSpace(string(stderr)) != "oops" {
		t.Errorf("stderr = %q, want %q", stderr, "oops")
	}
}

func TestExecutor_VerboseEcho(t *testing.T) {
	skipOnWindows(t)
	e, _, _ := quietExecutor(t.TempDir())
	var logs bytes.Buffer
	e.SetLogger(log.New(&logs))
	e.SetVerbose(true)

	if err := e.Run(context.Background(), "true"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(logs.String(), "true") {
		t.Errorf("verbose log = %q, want the command line", logs.String())
	}
}

func TestExecutor_LookPath(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "node_modules", ".bin")
	if err := os.MkdirAll(bin, 0755); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join(bin, "tsc")
	if err := os.WriteFile(local, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	e, _, _ := quietExecutor(dir)

	got, err := e.LookPath("tsc")
	if err != nil {
		t.Fatalf("LookPath(tsc) error = %v", err)
	}
	if got != local {
		t.Errorf("LookPath(tsc) = %q, want %q", got, local)
	}

	_, err = e.LookPath("definitely-not-a-real-tool-xyz")
	if err == nil {
		t.Fatal("LookPath() expected error for missing tool")
	}
	if code := tsperrors.GetExitCode(err); code != tsperrors.ExitEnvironmentError {
		t.Errorf("GetExitCode() = %d, want %d", code, tsperrors.ExitEnvironmentError)
	}
}

func TestExitCode_NotExitError(t *testing.T) {
	if code := ExitCode(os.ErrNotExist); code != -1 {
		t.Errorf("ExitCode() = %d, want -1", code)
	}
}

func TestCommandLine(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"tsc", []string{"-p", "tsconfig.json"}, "tsc -p tsconfig.json"},
		{"node", []string{"tests/my test.js"}, "node 'tests/my test.js'"},
		{"terser", []string{""}, "terser ''"},
		{"sh", []string{"it's"}, `sh 'it'\''s'`},
	}

	for _, tt := range tests {
		if got := CommandLine(tt.name, tt.args); got != tt.want {
			t.Errorf("CommandLine(%q, %q) = %q, want %q", tt.name, tt.args, got, tt.want)
		}
	}
}
