package sizereport

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	tsperrors "github.com/reflex-stack/tsp/internal/errors"
)

// ArtifactOptions selects which renderers write files.
type ArtifactOptions struct {
	JSON bool
	SVG  bool
}

// Artifacts lists the files written by WriteArtifacts.
type Artifacts struct {
	JSON string
	SVGs []string
}

// CleanReports removes everything inside dir and creates it if missing.
// This is destructive: reports are regenerated from scratch on every run.
func CleanReports(fs afero.Fs, dir string) error {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fs.MkdirAll(dir, 0755)
		}
		return err
	}
	for _, e := range entries {
		if err := fs.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// WriteArtifacts clears dir once, then runs the JSON and SVG renderers
// independently. A failing renderer does not stop or undo the other; all
// failures are returned together.
func WriteArtifacts(fs afero.Fs, dir string, report Report, opts ArtifactOptions) (Artifacts, error) {
	var out Artifacts
	if !opts.JSON && !opts.SVG {
		return out, nil
	}
	if err := CleanReports(fs, dir); err != nil {
		return out, tsperrors.Write(dir, err)
	}

	var result *multierror.Error
	if opts.JSON {
		path := filepath.Join(dir, JSONReportName)
		if err := WriteJSON(fs, path, report); err != nil {
			result = multierror.Append(result, tsperrors.Write(path, err))
		} else {
			out.JSON = path
		}
	}
	if opts.SVG {
		written, err := WriteSVGs(fs, dir, report)
		out.SVGs = written
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return out, result.ErrorOrNil()
}
