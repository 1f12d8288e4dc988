// Package cli provides the tsp command line.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	tsperrors "github.com/reflex-stack/tsp/internal/errors"
	"github.com/reflex-stack/tsp/internal/output"
	"github.com/reflex-stack/tsp/internal/project"
	"github.com/reflex-stack/tsp/internal/runner"
)

// Version is set at build time.
var Version = "dev"

// GlobalOptions holds the persistent flags shared by every command.
type GlobalOptions struct {
	Quiet   bool
	Verbose bool
	NoIntro bool
	Dir     string
}

// app carries the per-invocation state of the command tree.
type app struct {
	opts   GlobalOptions
	stdout io.Writer
	stderr io.Writer
	color  bool
	out    *output.Writer
	logger *log.Logger
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return run(context.Background(), args, os.Stdout, os.Stderr, output.ColorSupported())
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, color bool) int {
	a := &app{stdout: stdout, stderr: stderr, color: color}
	a.configure()

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := fang.Execute(ctx, root,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(a.handleError),
	)
	if err != nil {
		return tsperrors.GetExitCode(err)
	}
	return tsperrors.ExitSuccess
}

// configure rebuilds the writer and logger from the current options.
func (a *app) configure() {
	a.out = output.NewWithWriters(a.stdout, a.stderr, a.color)
	a.out.SetQuiet(a.opts.Quiet)
	a.logger = output.NewLogger(a.stderr, a.opts.Verbose, a.opts.Quiet)
}

// statusToStderr moves banner and progress lines to stderr so stdout carries
// only machine-readable output.
func (a *app) statusToStderr() {
	a.out = output.NewWithWriters(a.stderr, a.stderr, a.color)
	a.out.SetQuiet(a.opts.Quiet)
}

func (a *app) handleError(_ io.Writer, _ fang.Styles, err error) {
	a.out.ErrorPrefix("%v", err)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tsp",
		Short: "Build, test and size-report TypeScript packages",
		Long: `tsp compiles a TypeScript package with tsc, runs its test files, and reports
the raw and brotli-compressed size of every bundle declared in package.json "exports".

Configuration lives in the "tsp" section of package.json and can be overridden
with TSP_* environment variables (for example TSP_MINIFIER=terser).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.opts.Quiet && a.opts.Verbose {
				return tsperrors.Config("--quiet and --verbose are mutually exclusive")
			}
			a.configure()
			return nil
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return tsperrors.Config(err.Error())
	})

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.opts.Quiet, "quiet", "q", false, "minimal output (errors and the size table only)")
	flags.BoolVarP(&a.opts.Verbose, "verbose", "v", false, "log every command and measured file")
	flags.BoolVar(&a.opts.NoIntro, "no-intro", false, "do not print the package banner")
	flags.StringVarP(&a.opts.Dir, "dir", "C", "", "run as if tsp was started in `dir`")

	root.AddCommand(
		a.buildCommand(),
		a.sizeCommand(),
		a.testCommand(),
		a.bundlesCommand(),
		a.configCommand(),
		a.versionCommand(),
	)
	return root
}

// loadProject finds the package from --dir (or the working directory) and
// prints its banner and configuration warnings.
func (a *app) loadProject() (*project.Project, error) {
	start := a.opts.Dir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, tsperrors.Wrap(err, "cannot determine working directory")
		}
		start = wd
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return nil, tsperrors.Wrap(err, "cannot resolve --dir")
	}

	root, err := project.FindRootFrom(start)
	if err != nil {
		return nil, tsperrors.ConfigAt(start, "cannot locate package", err)
	}
	p, err := project.LoadProjectFrom(root)
	if err != nil {
		return nil, err
	}

	if !a.opts.NoIntro {
		a.out.Intro(p.DisplayName(), p.Package.Version)
	}
	for _, w := range p.Warnings {
		a.out.Warning("%s", w)
	}
	return p, nil
}

// executor returns a command executor rooted at the package.
func (a *app) executor(p *project.Project) *runner.Executor {
	e := runner.NewExecutor(p.Root)
	e.SetVerbose(a.opts.Verbose)
	e.SetOutput(a.stdout, a.stderr)
	e.SetLogger(a.logger)
	return e
}
