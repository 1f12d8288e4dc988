package sizereport

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DefaultScriptPatterns selects compiled scripts directly inside a bundle directory.
var DefaultScriptPatterns = []string{"*.js"}

// Layout is the explicit path configuration of a report run.
// Every path is absolute or relative to the process working directory;
// nothing is resolved against implicit state.
type Layout struct {
	Fs          afero.Fs
	OutputRoot  string   // Build output root (tsc outDir)
	ScratchRoot string   // Holds minified artifacts during a run; deleted afterwards
	Patterns    []string // Script patterns relative to a bundle directory
}

// BundleDir returns the directory of b under the output root.
func (l Layout) BundleDir(b Bundle) string {
	if b.IsMain() {
		return l.OutputRoot
	}
	return filepath.Join(l.OutputRoot, filepath.FromSlash(b.Directory))
}

// ScratchPath returns where the minified artifact of rel is written.
func (l Layout) ScratchPath(rel string) string {
	return filepath.Join(l.ScratchRoot, filepath.FromSlash(rel))
}

func (l Layout) patterns() []string {
	if len(l.Patterns) == 0 {
		return DefaultScriptPatterns
	}
	return l.Patterns
}

// Validate rejects layouts whose scratch cleanup would delete build output
// or whose minified copies would be enumerated as build output.
func (l Layout) Validate() error {
	if l.Fs == nil {
		return fmt.Errorf("layout has no filesystem")
	}
	if l.OutputRoot == "" {
		return fmt.Errorf("output root is empty")
	}
	if l.ScratchRoot == "" {
		return fmt.Errorf("scratch root is empty")
	}
	out := filepath.Clean(l.OutputRoot)
	scratch := filepath.Clean(l.ScratchRoot)
	if scratch == out || IsWithin(out, scratch) {
		return fmt.Errorf("scratch root %q must not contain the output root %q", l.ScratchRoot, l.OutputRoot)
	}
	if IsWithin(scratch, out) {
		return fmt.Errorf("scratch root %q must not be inside the output root %q", l.ScratchRoot, l.OutputRoot)
	}
	return nil
}

// IsWithin reports whether path lies strictly inside dir.
func IsWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
