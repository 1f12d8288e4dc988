package sizereport

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// JSONReportName is the file name of the JSON artifact inside the reports directory.
const JSONReportName = "size-report.json"

// Encoding formats accepted by Encode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// MarshalJSON serializes the report verbatim. A nil report encodes as [].
func (r Report) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]BundleReport(r))
}

// WriteJSON writes the report to path, replacing any existing content.
func WriteJSON(fs afero.Fs, path string, report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return afero.WriteFile(fs, path, data, 0644)
}

// Encode writes the report to w as JSON or YAML.
func Encode(w io.Writer, report Report, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		if report == nil {
			report = Report{}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode([]BundleReport(report)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q (valid: %s, %s)", format, FormatJSON, FormatYAML)
	}
}
