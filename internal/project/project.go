package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/reflex-stack/tsp/internal/config"
	tsperrors "github.com/reflex-stack/tsp/internal/errors"
	"github.com/reflex-stack/tsp/internal/sizereport"
	"github.com/reflex-stack/tsp/internal/version"
)

// Project represents a loaded package.
type Project struct {
	Root     string
	Package  *Package
	Config   *config.Config
	Exports  []string
	Version  *version.Semver // nil when package.json has no valid version
	Warnings []string
	Fs       afero.Fs
}

// LoadProject finds and loads a package from the current directory.
func LoadProject() (*Project, error) {
	root, err := FindRoot()
	if err != nil {
		return nil, tsperrors.ConfigAt("", "cannot locate package", err)
	}
	return LoadProjectFrom(root)
}

// LoadProjectFrom loads a package from a specified root directory.
func LoadProjectFrom(root string) (*Project, error) {
	pkgPath := filepath.Join(root, PackageFileName)
	data, err := os.ReadFile(pkgPath)
	if err != nil {
		return nil, tsperrors.ConfigAt(pkgPath, "cannot read package.json", err)
	}

	pkg, err := ParsePackage(data)
	if err != nil {
		return nil, tsperrors.ConfigAt(pkgPath, "failed to load package", err)
	}

	exports, err := pkg.ExportPaths()
	if err != nil {
		return nil, tsperrors.ConfigAt(pkgPath, "failed to read exports", err)
	}

	cfg, warnings, err := config.LoadAndValidate(pkg.TSP)
	if err != nil {
		return nil, tsperrors.ConfigAt(pkgPath, "failed to load configuration", err)
	}
	var semver *version.Semver
	if pkg.Version != "" {
		if semver, err = version.Parse(pkg.Version); err != nil {
			warnings = append(warnings, fmt.Sprintf("package.json version: %v", err))
		}
	}

	return &Project{
		Root:     root,
		Package:  pkg,
		Config:   cfg,
		Exports:  exports,
		Version:  semver,
		Warnings: warnings,
		Fs:       afero.NewOsFs(),
	}, nil
}

// Path resolves a configured path against the package root.
func (p *Project) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(p.Root, rel)
}

// PackagePath returns the full path to package.json.
func (p *Project) PackagePath() string {
	return filepath.Join(p.Root, PackageFileName)
}

// DistDir returns the build output root.
func (p *Project) DistDir() string { return p.Path(p.Config.Dist) }

// SrcDir returns the compiler root directory.
func (p *Project) SrcDir() string { return p.Path(p.Config.Src) }

// TestsDir returns the directory holding compiled test files.
func (p *Project) TestsDir() string { return p.Path(p.Config.Tests) }

// TmpDir returns the scratch directory of size reports.
func (p *Project) TmpDir() string { return p.Path(p.Config.Tmp) }

// ReportsDir returns the directory receiving JSON and SVG reports.
func (p *Project) ReportsDir() string { return p.Path(p.Config.Reports) }

// Bundles returns the declared bundles in exports order.
func (p *Project) Bundles() []sizereport.Bundle {
	return sizereport.BundlesFromExports(p.Exports)
}

// Layout returns the explicit path configuration of a size report run.
func (p *Project) Layout() sizereport.Layout {
	return sizereport.Layout{
		Fs:          p.Fs,
		OutputRoot:  p.DistDir(),
		ScratchRoot: p.TmpDir(),
		Patterns:    p.Config.ScriptPatterns,
	}
}

// DisplayName returns the package name, or the root directory name when unset.
func (p *Project) DisplayName() string {
	if p.Package.Name != "" {
		return p.Package.Name
	}
	return filepath.Base(p.Root)
}
