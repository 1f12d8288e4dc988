// Package testsuite runs compiled test files with the configured runtime.
package testsuite

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	tsperrors "github.com/reflex-stack/tsp/internal/errors"
	"github.com/reflex-stack/tsp/internal/runner"
)

// Runner runs external tools from the package root.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
	LookPath(name string) (string, error)
}

// Result lists the test files that ran.
type Result struct {
	Passed []string
	Failed string
}

// Suite runs test files one after another.
type Suite struct {
	runner  Runner
	runtime string
	dir     string
	files   []string
	logger  *log.Logger
}

// New creates a suite running files from dir with runtime, e.g. "node" or
// "node --enable-source-maps".
func New(r Runner, runtime, dir string, files []string) *Suite {
	return &Suite{runner: r, runtime: runtime, dir: dir, files: files, logger: log.Default()}
}

// SetLogger sets the logger for progress output.
func (s *Suite) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// Run executes every test file in order and stops at the first failure.
func (s *Suite) Run(ctx context.Context) (Result, error) {
	var result Result

	fields := strings.Fields(s.runtime)
	if len(fields) == 0 {
		return result, tsperrors.Config("runtime is empty")
	}
	bin, err := s.runner.LookPath(fields[0])
	if err != nil {
		return result, err
	}

	for _, file := range s.files {
		path := filepath.Join(s.dir, file)
		args := append(append([]string{}, fields[1:]...), path)
		s.logger.Debug("running test file", "file", path)

		if err := s.runner.Run(ctx, bin, args...); err != nil {
			result.Failed = file
			if code := runner.ExitCode(err); code > 0 {
				return result, tsperrors.Newf("test file %s failed (exit code %d)", file, code)
			}
			return result, tsperrors.Wrap(err, "test file "+file+" failed")
		}
		result.Passed = append(result.Passed, file)
	}
	return result, nil
}
