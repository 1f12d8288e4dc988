package sizereport

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// Measurer returns [raw, minified, compressed] for a path relative to the output root.
type Measurer interface {
	Measure(ctx context.Context, rel string) (Sizes, error)
}

// Aggregator builds a Report from declared bundles.
type Aggregator struct {
	layout   Layout
	measurer Measurer
	logger   *log.Logger
}

// NewAggregator creates an aggregator.
func NewAggregator(layout Layout, m Measurer) *Aggregator {
	return &Aggregator{layout: layout, measurer: m}
}

// SetLogger sets the logger for progress output.
func (a *Aggregator) SetLogger(logger *log.Logger) {
	a.logger = logger
}

// Aggregate is a convenience wrapper around NewAggregator(...).Run.
func Aggregate(ctx context.Context, layout Layout, bundles []Bundle, m Measurer) (Report, error) {
	return NewAggregator(layout, m).Run(ctx, bundles)
}

// Run discovers, measures and sums every bundle in declaration order.
// The scratch tree is removed on every return path. On failure no report is returned.
func (a *Aggregator) Run(ctx context.Context, bundles []Bundle) (report Report, err error) {
	if err := a.layout.Validate(); err != nil {
		return nil, err
	}
	defer func() {
		if rmErr := a.layout.Fs.RemoveAll(a.layout.ScratchRoot); rmErr != nil && a.logger != nil {
			a.logger.Warn("cannot remove scratch directory", "path", a.layout.ScratchRoot, "err", rmErr)
		}
	}()

	discovered, err := Discover(a.layout, bundles)
	if err != nil {
		return nil, err
	}

	report = make(Report, 0, len(discovered))
	for _, d := range discovered {
		br := NewBundleReport(d.Name)
		for _, rel := range d.Files {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("size report interrupted: %w", err)
			}
			sizes, err := a.measurer.Measure(ctx, rel)
			if err != nil {
				return nil, err
			}
			br.Add(FileReport{Path: rel, Sizes: sizes})
			a.debug("file", rel, sizes)
		}
		a.debug("bundle", d.Name, br.Sizes)
		report = append(report, br)
	}
	return report, nil
}

func (a *Aggregator) debug(kind, name string, s Sizes) {
	if a.logger == nil {
		return
	}
	a.logger.Debug(kind,
		"name", name,
		"raw", humanize.Bytes(uint64(s[Raw])),
		"minified", humanize.Bytes(uint64(s[Minified])),
		"brotli", humanize.Bytes(uint64(s[Compressed])),
	)
}
