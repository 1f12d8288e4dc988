// Package tsp provides public constants and types for external tools
// integrating with tsp.
package tsp

// Exit codes returned by the tsp CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (compilation, minification, a failing test file, etc.).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid package.json, bad tsp section, etc.).
	ExitConfigError = 2

	// ExitEnvError indicates an environment error (tsc, terser or the test runtime is missing).
	ExitEnvError = 3
)
