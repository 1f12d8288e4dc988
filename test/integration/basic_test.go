// Package integration contains integration tests for tsp.
package integration

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/reflex-stack/tsp/internal/minify"
	"github.com/reflex-stack/tsp/internal/project"
	"github.com/reflex-stack/tsp/internal/sizereport"
)

var (
	fixturesDirOnce sync.Once
	fixturesDirPath string
)

// fixturesDir returns the path to the test fixtures directory.
func fixturesDir() string {
	fixturesDirOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		fixturesDirPath = filepath.Join(filepath.Dir(filename), "..", "fixtures")
	})
	return fixturesDirPath
}

// loadOverlay loads a fixture whose writes (scratch files, reports) land in memory.
func loadOverlay(t *testing.T, name string) *project.Project {
	t.Helper()
	proj, err := project.LoadProjectFrom(filepath.Join(fixturesDir(), name))
	if err != nil {
		t.Fatalf("failed to load %s: %v", name, err)
	}
	proj.Fs = afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(afero.NewOsFs()), afero.NewMemMapFs())
	return proj
}

func measure(t *testing.T, proj *project.Project) sizereport.Report {
	t.Helper()
	opts, err := proj.Config.MinifyOptions()
	if err != nil {
		t.Fatalf("MinifyOptions() error = %v", err)
	}
	m, err := minify.New(proj.Config.Minifier, opts, nil)
	if err != nil {
		t.Fatalf("minify.New() error = %v", err)
	}
	layout := proj.Layout()
	report, err := sizereport.Aggregate(context.Background(), layout, proj.Bundles(), sizereport.NewCompressor(layout, m))
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	return report
}

func TestExamplePackage(t *testing.T) {
	t.Parallel()
	proj := loadOverlay(t, "example-package")

	if proj.Package.Name != "@reflex-stack/example-package" {
		t.Errorf("package name = %q", proj.Package.Name)
	}
	if len(proj.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", proj.Warnings)
	}

	bundles := proj.Bundles()
	if len(bundles) != 2 {
		t.Fatalf("len(bundles) = %d, want 2", len(bundles))
	}
	if bundles[0].Name != "main" || bundles[1].Name != "submodule" {
		t.Errorf("bundles = %+v, want main then submodule", bundles)
	}
}

func TestSizeReportEndToEnd(t *testing.T) {
	t.Parallel()
	proj := loadOverlay(t, "example-package")

	report := measure(t, proj)
	if len(report) != 2 {
		t.Fatalf("len(report) = %d, want 2", len(report))
	}
	if report[0].Name != "main" || report[1].Name != "submodule" {
		t.Errorf("report order = %s, %s", report[0].Name, report[1].Name)
	}
	if got := report[0].Sizes[sizereport.Raw]; got != 200 {
		t.Errorf("main raw size = %d, want 200", got)
	}
	if got := report[1].Sizes[sizereport.Raw]; got != 150 {
		t.Errorf("submodule raw size = %d, want 150", got)
	}
	for _, b := range report {
		if b.Sizes[sizereport.Minified] >= b.Sizes[sizereport.Raw] {
			t.Errorf("%s: minified %d is not smaller than raw %d", b.Name, b.Sizes[sizereport.Minified], b.Sizes[sizereport.Raw])
		}
		if b.Sizes[sizereport.Compressed] <= 0 {
			t.Errorf("%s: compressed size = %d", b.Name, b.Sizes[sizereport.Compressed])
		}
	}

	// Main discovery is not recursive: submodule/index.js belongs to the submodule only.
	if len(report[0].Files) != 1 || report[0].Files[0].Path != "index.js" {
		t.Errorf("main files = %+v", report[0].Files)
	}

	table := sizereport.BuildTable(report, proj.DisplayName())
	last := table.Rows[len(table.Rows)-1]
	if last.Kind != sizereport.RowTotal || last.Original != "350b" {
		t.Errorf("last row = %+v, want Total with 350b", last)
	}

	if exists, _ := afero.DirExists(proj.Fs, proj.TmpDir()); exists {
		t.Error("scratch directory survived the report")
	}
	if _, err := os.Stat(proj.TmpDir()); !os.IsNotExist(err) {
		t.Error("size report wrote into the fixture directory")
	}
}

func TestSizeReportArtifacts(t *testing.T) {
	t.Parallel()
	proj := loadOverlay(t, "example-package")
	report := measure(t, proj)

	written, err := sizereport.WriteArtifacts(proj.Fs, proj.ReportsDir(), report, sizereport.ArtifactOptions{JSON: true, SVG: true})
	if err != nil {
		t.Fatalf("WriteArtifacts() error = %v", err)
	}
	if written.JSON != filepath.Join(proj.ReportsDir(), sizereport.JSONReportName) {
		t.Errorf("JSON report = %q", written.JSON)
	}
	if len(written.SVGs) != 6 {
		t.Errorf("len(SVGs) = %d, want 6 (two bundles and total, two schemes each)", len(written.SVGs))
	}
}

func TestSingleBundle(t *testing.T) {
	t.Parallel()
	proj := loadOverlay(t, "single-bundle")

	if len(proj.Exports) != 1 || proj.Exports[0] != "." {
		t.Fatalf("exports = %v, want [.]", proj.Exports)
	}

	report := measure(t, proj)
	if len(report) != 1 {
		t.Fatalf("len(report) = %d, want 1", len(report))
	}
	var paths []string
	for _, f := range report[0].Files {
		paths = append(paths, f.Path)
	}
	if len(paths) != 2 || paths[0] != "chunk.js" || paths[1] != "index.js" {
		t.Errorf("files = %v, want [chunk.js index.js]", paths)
	}
	if report.HasTotal() {
		t.Error("single bundle report must not have a total")
	}
}
