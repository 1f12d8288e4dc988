package tsp

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/reflex-stack/tsp/internal/sizereport"
)

// Size stages in Sizes.
const (
	Raw        = sizereport.Raw
	Minified   = sizereport.Minified
	Compressed = sizereport.Compressed
)

// Report types as written to size-report.json.
type (
	Sizes        = sizereport.Sizes
	FileReport   = sizereport.FileReport
	BundleReport = sizereport.BundleReport
	Report       = sizereport.Report
)

// ReportFileName is the name of the JSON report inside the reports directory.
const ReportFileName = sizereport.JSONReportName

// ReadReport decodes a size-report.json document.
func ReadReport(r io.Reader) (Report, error) {
	var report Report
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("invalid size report: %w", err)
	}
	return report, nil
}

// HumanSize formats a byte count the way the size table and badges show it.
func HumanSize(n int64) string {
	return sizereport.HumanSize(n)
}
