package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reflex-stack/tsp/internal/testsuite"
)

func (a *app) testCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the compiled test files",
		Long: `Run every file listed in "test-files" from the tests directory with the
configured runtime, in order. The first failing file stops the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.loadProject()
			if err != nil {
				return err
			}

			files := p.Config.TestFiles
			a.out.Action("Running %d test %s with %s", len(files), plural(len(files), "file", "files"), p.Config.Runtime)

			suite := testsuite.New(a.executor(p), p.Config.Runtime, p.TestsDir(), files)
			suite.SetLogger(a.logger)
			result, err := suite.Run(cmd.Context())

			if !a.opts.Quiet {
				a.out.Section("Test Summary")
				a.out.SummaryItem("Passed", fmt.Sprintf("%d/%d", len(result.Passed), len(files)))
				if result.Failed != "" {
					a.out.SummaryItem("Failed", result.Failed)
					if skipped := len(files) - len(result.Passed) - 1; skipped > 0 {
						a.out.SummaryItem("Not run", strings.Join(files[len(files)-skipped:], ", "))
					}
				}
			}
			if err != nil {
				return err
			}
			a.out.FinalSuccess("All tests passed.")
			return nil
		},
	}
}
