// Package build compiles TypeScript sources into the build output directory.
package build

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	tsperrors "github.com/reflex-stack/tsp/internal/errors"
	"github.com/reflex-stack/tsp/internal/runner"
)

// CompilerBinary is the TypeScript compiler executable.
const CompilerBinary = "tsc"

// Runner runs external tools from the package root.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
	LookPath(name string) (string, error)
}

// Builder cleans and compiles one package.
type Builder struct {
	fs       afero.Fs
	runner   Runner
	root     string
	tsconfig string
	logger   *log.Logger
}

// NewBuilder creates a builder for the package at root.
func NewBuilder(fs afero.Fs, r Runner, root string) *Builder {
	return &Builder{
		fs:       fs,
		runner:   r,
		root:     root,
		tsconfig: "tsconfig.json",
		logger:   log.Default(),
	}
}

// SetLogger sets the logger for progress output.
func (b *Builder) SetLogger(logger *log.Logger) {
	b.logger = logger
}

// Clean removes the build output directory and recreates it empty.
func (b *Builder) Clean(dist string) error {
	dir := b.resolve(dist)
	if filepath.Clean(dir) == filepath.Clean(b.root) {
		return tsperrors.Configf("refusing to clean the package root %q", dir)
	}
	if err := b.fs.RemoveAll(dir); err != nil {
		return tsperrors.Wrap(err, "cannot clean build output")
	}
	if err := b.fs.MkdirAll(dir, 0755); err != nil {
		return tsperrors.Wrap(err, "cannot create build output")
	}
	b.logger.Debug("cleaned", "dir", dir)
	return nil
}

// CompilerArgs returns the tsc arguments compiling src into dist.
func (b *Builder) CompilerArgs(src, dist string) []string {
	return []string{
		"-p", b.tsconfig,
		"--rootDir", src,
		"--outDir", dist,
		"--declaration", "true",
		"--noEmitOnError", "true",
		"--pretty",
	}
}

// Compile runs tsc, streaming its diagnostics to the console.
func (b *Builder) Compile(ctx context.Context, src, dist string) error {
	tsconfig := b.resolve(b.tsconfig)
	if _, err := b.fs.Stat(tsconfig); err != nil {
		if os.IsNotExist(err) {
			return tsperrors.ConfigAt(tsconfig, "compiler configuration not found", err)
		}
		return tsperrors.Wrap(err, "cannot read compiler configuration")
	}

	tsc, err := b.runner.LookPath(CompilerBinary)
	if err != nil {
		return err
	}

	if err := b.runner.Run(ctx, tsc, b.CompilerArgs(src, dist)...); err != nil {
		if code := runner.ExitCode(err); code > 0 {
			return tsperrors.Newf("compilation failed (tsc exited with code %d)", code)
		}
		return tsperrors.Wrap(err, "compilation failed")
	}
	return nil
}

func (b *Builder) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(b.root, path)
}
