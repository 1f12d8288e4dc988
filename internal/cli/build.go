package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/reflex-stack/tsp/internal/build"
	"github.com/reflex-stack/tsp/internal/runner"
)

// Build phase names.
const (
	phaseClean   = "clean"
	phaseCompile = "compile"
	phaseSize    = "size"
)

func (a *app) buildCommand() *cobra.Command {
	var noSizeReport bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Clean, compile and size-report the package",
		Long: `Empty the dist directory, compile src with tsc, then measure every bundle
declared in package.json "exports".

The size report clears the reports directory before writing to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.loadProject()
			if err != nil {
				return err
			}

			builder := build.NewBuilder(p.Fs, a.executor(p), p.Root)
			builder.SetLogger(a.logger)

			pipeline := runner.NewPipeline()
			pipeline.Add(phaseClean, func(context.Context) error {
				a.out.Action("Cleaning %s", p.Config.Dist)
				return builder.Clean(p.Config.Dist)
			})
			pipeline.Add(phaseCompile, func(ctx context.Context) error {
				a.out.Action("Compiling %s", p.Config.Src)
				return builder.Compile(ctx, p.Config.Src, p.Config.Dist)
			})
			if !noSizeReport {
				pipeline.Add(phaseSize, func(ctx context.Context) error {
					_, err := a.sizeReport(ctx, p, sizeOptions{format: formatTable, artifacts: true})
					return err
				})
			}

			result, err := pipeline.Run(cmd.Context())
			a.printSummary("Build", result)
			return err
		},
	}
	cmd.Flags().BoolVar(&noSizeReport, "no-size-report", false, "skip the size report after compiling")
	return cmd
}

// printSummary prints the phase listing of a pipeline run.
func (a *app) printSummary(title string, result *runner.PipelineResult) {
	if a.opts.Quiet || result == nil {
		return
	}

	a.out.Section(title + " Summary")
	for _, pr := range result.PhaseResults {
		if pr.Skipped {
			a.out.SummarySkipped(pr.Name)
			continue
		}
		var errMsg string
		if pr.Error != nil {
			errMsg = pr.Error.Error()
		}
		a.out.SummaryAction(pr.Name, pr.Success, runner.FormatDuration(pr.Duration), errMsg)
	}
	a.out.SummaryItem("Duration", runner.FormatDuration(result.Duration))

	if result.Success {
		a.out.FinalSuccess("%s completed successfully.", title)
	} else {
		a.out.FinalFailure("%s failed.", title)
	}
}
