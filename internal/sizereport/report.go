// Package sizereport measures the built output of a package: it discovers the
// script files of every bundle, minifies and brotli-compresses each one, and
// aggregates the byte counts into a Report that is rendered as a console
// table, a JSON file and SVG badges.
package sizereport

// Indices into Sizes.
const (
	Raw        = 0
	Minified   = 1
	Compressed = 2
)

// Sizes holds the byte counts of one file or bundle at the three stages:
// raw, minified and compressed.
type Sizes [3]int64

// Add returns the elementwise sum of s and o.
func (s Sizes) Add(o Sizes) Sizes {
	return Sizes{s[0] + o[0], s[1] + o[1], s[2] + o[2]}
}

// FileReport is one built script file within a bundle.
type FileReport struct {
	Path  string `json:"path" yaml:"path"` // Relative to the build output root, slash separated
	Sizes Sizes  `json:"sizes" yaml:"sizes"`
}

// BundleReport aggregates the files of one bundle.
// Sizes is always the elementwise sum of Files; use Add to append files.
type BundleReport struct {
	Name  string       `json:"name" yaml:"name"`
	Files []FileReport `json:"files" yaml:"files"`
	Sizes Sizes        `json:"sizes" yaml:"sizes"`
}

// NewBundleReport returns an empty bundle report.
func NewBundleReport(name string) BundleReport {
	return BundleReport{Name: name, Files: []FileReport{}}
}

// Add appends a file and recomputes the bundle sizes.
func (b *BundleReport) Add(f FileReport) {
	b.Files = append(b.Files, f)
	b.recompute()
}

func (b *BundleReport) recompute() {
	var total Sizes
	for _, f := range b.Files {
		total = total.Add(f.Sizes)
	}
	b.Sizes = total
}

// Report is the result of one aggregation run, ordered as the bundles were declared.
type Report []BundleReport

// Total sums the sizes of all bundles.
func (r Report) Total() Sizes {
	var total Sizes
	for _, b := range r {
		total = total.Add(b.Sizes)
	}
	return total
}

// HasTotal reports whether renderers add a combined total (more than one bundle).
func (r Report) HasTotal() bool {
	return len(r) > 1
}
