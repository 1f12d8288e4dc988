package sizereport

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/spf13/afero"

	tsperrors "github.com/reflex-stack/tsp/internal/errors"
)

// DiscoveredBundle is a bundle with its script files, relative to the output root.
type DiscoveredBundle struct {
	Bundle
	Files []string
}

// ValidatePatterns checks that every script pattern is a well-formed,
// bundle-relative glob.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if p == "" {
			return fmt.Errorf("empty script pattern")
		}
		if strings.HasPrefix(p, "/") || p == ".." || strings.HasPrefix(p, "../") {
			return fmt.Errorf("script pattern %q must be relative to the bundle directory", p)
		}
		// path.Match rejects malformed brackets and escapes regardless of the name.
		if _, err := path.Match(p, ""); err != nil {
			return fmt.Errorf("invalid script pattern %q: %w", p, err)
		}
	}
	return nil
}

// Discover lists the script files of every bundle in declaration order.
// Files within a bundle follow lexical walk order. A bundle directory without
// scripts yields an empty file list; a missing directory is a discovery error.
func Discover(layout Layout, bundles []Bundle) ([]DiscoveredBundle, error) {
	if err := requireDir(layout.Fs, layout.OutputRoot); err != nil {
		return nil, err
	}

	patterns := lowerPatterns(layout.patterns())
	recursive := isRecursive(patterns)

	result := make([]DiscoveredBundle, 0, len(bundles))
	for _, b := range bundles {
		dir := layout.BundleDir(b)
		if err := requireDir(layout.Fs, dir); err != nil {
			return nil, err
		}
		files, err := scriptsIn(layout, dir, patterns, recursive)
		if err != nil {
			return nil, tsperrors.Discovery(dir, err)
		}
		result = append(result, DiscoveredBundle{Bundle: b, Files: files})
	}
	return result, nil
}

func requireDir(fs afero.Fs, dir string) error {
	info, err := fs.Stat(dir)
	if err != nil {
		return tsperrors.Discovery(dir, err)
	}
	if !info.IsDir() {
		return tsperrors.Discovery(dir, fmt.Errorf("not a directory"))
	}
	return nil
}

func scriptsIn(layout Layout, dir string, patterns []string, recursive bool) ([]string, error) {
	files := []string{}
	err := afero.Walk(layout.Fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if p != dir && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		inBundle, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		if !matchAny(patterns, strings.ToLower(filepath.ToSlash(inBundle))) {
			return nil
		}
		rel, err := filepath.Rel(layout.OutputRoot, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

func lowerPatterns(patterns []string) []string {
	lowered := make([]string, len(patterns))
	for i, p := range patterns {
		lowered[i] = strings.ToLower(p)
	}
	return lowered
}

// isRecursive reports whether any pattern can match below the bundle directory.
func isRecursive(patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(p, "/") || strings.Contains(p, "**") {
			return true
		}
	}
	return false
}
