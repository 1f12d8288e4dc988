// Package project provides package discovery and loading functionality.
package project

import (
	"errors"
	"os"
	"path/filepath"
)

// PackageFileName is the name of the package manifest.
const PackageFileName = "package.json"

// TSConfigFileName is the compiler configuration expected at the package root.
const TSConfigFileName = "tsconfig.json"

// ErrNoProjectRoot is returned when no package.json is found.
var ErrNoProjectRoot = errors.New("package.json not found: not a package (or any parent up to the root)")

// FindRoot walks up from the current working directory until it finds package.json.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRootFrom(cwd)
}

// FindRootFrom walks up from the given directory until it finds package.json.
func FindRootFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		pkgPath := filepath.Join(dir, PackageFileName)
		if info, err := os.Stat(pkgPath); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNoProjectRoot
		}
		dir = parent
	}
}
