package cli

import (
	"context"

	"github.com/spf13/cobra"

	tsperrors "github.com/reflex-stack/tsp/internal/errors"
	"github.com/reflex-stack/tsp/internal/minify"
	"github.com/reflex-stack/tsp/internal/project"
	"github.com/reflex-stack/tsp/internal/sizereport"
)

// Output formats of the size command.
const (
	formatTable = "table"
	formatJSON  = sizereport.FormatJSON
	formatYAML  = sizereport.FormatYAML
)

type sizeOptions struct {
	format    string
	artifacts bool
}

func (o sizeOptions) validate() error {
	switch o.format {
	case formatTable, formatJSON, formatYAML:
		return nil
	}
	return tsperrors.Configf("invalid --format value %q (valid: %s, %s, %s)", o.format, formatTable, formatJSON, formatYAML)
}

func (a *app) sizeCommand() *cobra.Command {
	opts := sizeOptions{format: formatTable}
	var noArtifacts bool

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Report bundle sizes of an existing build",
		Long: `Minify every script of every declared bundle, measure its brotli size, and
print the per-bundle report.

The reports directory is cleared before the JSON report and SVG badges are
written, so anything else stored there is removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.artifacts = !noArtifacts
			if err := opts.validate(); err != nil {
				return err
			}
			if opts.format != formatTable {
				a.statusToStderr()
			}
			p, err := a.loadProject()
			if err != nil {
				return err
			}
			_, err = a.sizeReport(cmd.Context(), p, opts)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", formatTable, "report format: table, json or yaml")
	cmd.Flags().BoolVar(&noArtifacts, "no-artifacts", false, "do not write the JSON report and SVG badges")
	return cmd
}

// sizeReport measures every bundle of p, prints the report, and writes the
// configured artifacts. The console report is printed even when writing
// artifacts fails.
func (a *app) sizeReport(ctx context.Context, p *project.Project, opts sizeOptions) (sizereport.Report, error) {
	m, err := a.minifier(p)
	if err != nil {
		return nil, err
	}

	layout := p.Layout()
	compressor := sizereport.NewCompressor(layout, m)
	compressor.SetLogger(a.logger)
	aggregator := sizereport.NewAggregator(layout, compressor)
	aggregator.SetLogger(a.logger)

	bundles := p.Bundles()
	a.out.Action("Measuring %d %s with %s", len(bundles), plural(len(bundles), "bundle", "bundles"), m.Name())
	report, err := aggregator.Run(ctx, bundles)
	if err != nil {
		return nil, err
	}

	switch opts.format {
	case formatTable:
		a.out.Println("")
		a.out.SizeTable(sizereport.BuildTable(report, p.DisplayName()))
	default:
		if err := sizereport.Encode(a.stdout, report, opts.format); err != nil {
			return report, tsperrors.Wrap(err, "cannot encode size report")
		}
	}

	if !opts.artifacts {
		return report, nil
	}
	written, err := sizereport.WriteArtifacts(p.Fs, p.ReportsDir(), report, sizereport.ArtifactOptions{
		JSON: p.Config.GenerateJSONReport,
		SVG:  p.Config.GenerateSVGReport,
	})
	if written.JSON != "" {
		a.logger.Debug("wrote report", "path", written.JSON)
	}
	if n := len(written.SVGs); n > 0 {
		a.logger.Debug("wrote badges", "dir", p.ReportsDir(), "count", n)
	}
	return report, err
}

// minifier builds the configured backend. The terser binary is resolved up
// front so a missing install is an environment error before any file is read.
func (a *app) minifier(p *project.Project) (minify.Minifier, error) {
	opts, err := p.Config.MinifyOptions()
	if err != nil {
		return nil, tsperrors.ConfigAt(p.PackagePath(), "invalid mangle-props", err)
	}

	e := a.executor(p)
	m, err := minify.New(p.Config.Minifier, opts, e)
	if err != nil {
		return nil, tsperrors.ConfigAt(p.PackagePath(), "invalid minifier", err)
	}
	if t, ok := m.(*minify.Terser); ok {
		bin, err := e.LookPath(minify.BackendTerser)
		if err != nil {
			return nil, err
		}
		t.SetBinary(bin)
	}
	return m, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
