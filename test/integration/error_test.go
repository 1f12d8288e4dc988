package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tsperrors "github.com/reflex-stack/tsp/internal/errors"
	"github.com/reflex-stack/tsp/internal/minify"
	"github.com/reflex-stack/tsp/internal/project"
	"github.com/reflex-stack/tsp/internal/sizereport"
)

func TestProjectNotFoundError(t *testing.T) {
	_, err := project.LoadProjectFrom("/nonexistent/path")
	if err == nil {
		t.Fatal("expected error when loading from nonexistent path")
	}
	if code := tsperrors.GetExitCode(err); code != tsperrors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", code, tsperrors.ExitConfigError)
	}
}

func TestInvalidFixtures(t *testing.T) {
	tests := []struct {
		name    string
		wantErr string
	}{
		{"bad-minifier", "minifier"},
		{"bad-exports", "exports"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := project.LoadProjectFrom(filepath.Join(fixturesDir(), "invalid", tt.name))
			if err == nil {
				t.Fatal("expected error")
			}
			if !containsAny(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want to mention %q", err.Error(), tt.wantErr)
			}
			if code := tsperrors.GetExitCode(err); code != tsperrors.ExitConfigError {
				t.Errorf("exit code = %d, want %d", code, tsperrors.ExitConfigError)
			}
		})
	}
}

func TestMissingBuildOutput(t *testing.T) {
	tmpDir := t.TempDir()
	pkg := `{"name": "unbuilt", "exports": {".": "./dist/index.js", "./extra": "./dist/extra/index.js"}}`
	if err := writeFile(filepath.Join(tmpDir, "package.json"), pkg); err != nil {
		t.Fatal(err)
	}
	if err := mkdir(filepath.Join(tmpDir, "dist")); err != nil {
		t.Fatal(err)
	}
	if err := writeFile(filepath.Join(tmpDir, "dist", "index.js"), "export const a = 1;\n"); err != nil {
		t.Fatal(err)
	}

	proj, err := project.LoadProjectFrom(tmpDir)
	if err != nil {
		t.Fatalf("LoadProjectFrom() error = %v", err)
	}
	layout := proj.Layout()
	report, err := sizereport.Aggregate(context.Background(), layout, proj.Bundles(), sizereport.NewCompressor(layout, minify.NewEsbuild(minify.DefaultOptions())))
	if err == nil {
		t.Fatal("expected discovery error for the missing extra bundle")
	}
	if report != nil {
		t.Error("a failed aggregation must not return a partial report")
	}
	if kind, _ := tsperrors.KindOf(err); kind != tsperrors.KindDiscovery {
		t.Errorf("error kind = %v, want %v", kind, tsperrors.KindDiscovery)
	}
	if _, statErr := os.Stat(proj.TmpDir()); !os.IsNotExist(statErr) {
		t.Error("scratch directory survived the failed report")
	}
}

func TestMinificationError(t *testing.T) {
	tmpDir := t.TempDir()
	if err := writeFile(filepath.Join(tmpDir, "package.json"), `{"name": "broken", "exports": "."}`); err != nil {
		t.Fatal(err)
	}
	if err := mkdir(filepath.Join(tmpDir, "dist")); err != nil {
		t.Fatal(err)
	}
	if err := writeFile(filepath.Join(tmpDir, "dist", "index.js"), "export const = ;\n"); err != nil {
		t.Fatal(err)
	}

	proj, err := project.LoadProjectFrom(tmpDir)
	if err != nil {
		t.Fatalf("LoadProjectFrom() error = %v", err)
	}
	layout := proj.Layout()
	_, err = sizereport.Aggregate(context.Background(), layout, proj.Bundles(), sizereport.NewCompressor(layout, minify.NewEsbuild(minify.DefaultOptions())))
	if kind, _ := tsperrors.KindOf(err); kind != tsperrors.KindMinification {
		t.Fatalf("error kind = %v, want %v (err %v)", kind, tsperrors.KindMinification, err)
	}
	if !strings.Contains(err.Error(), "index.js") {
		t.Errorf("error = %q, want the failing file", err.Error())
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func mkdir(path string) error {
	return os.MkdirAll(path, 0755)
}

func containsAny(s string, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
