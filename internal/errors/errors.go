// Package errors provides structured error types and exit codes for tsp.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess          = 0 // Success
	ExitRuntimeError     = 1 // Runtime error (build, minification, test failure, etc.)
	ExitConfigError      = 2 // Configuration error (invalid package.json, bad tsp section, etc.)
	ExitEnvironmentError = 3 // Environment error (tsc, node or terser missing, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindEnvironment
	KindDiscovery
	KindMinification
	KindCompression
	KindWrite
)

// String returns the lowercase name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	case KindEnvironment:
		return "environment"
	case KindDiscovery:
		return "discovery"
	case KindMinification:
		return "minification"
	case KindCompression:
		return "compression"
	case KindWrite:
		return "write"
	default:
		return "runtime"
	}
}

// Error is the base error type for tsp.
type Error struct {
	Kind        ErrorKind
	Message     string
	Path        string // File or directory the error is about, if any
	Diagnostics string // Verbatim output of an external tool, if any
	Cause       error  // Underlying error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Path != "" {
		fmt.Fprintf(&b, "[%s] ", e.Path)
	}
	b.WriteString(e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	if d := strings.TrimSpace(e.Diagnostics); d != "" {
		b.WriteString("\n")
		b.WriteString(d)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *Error {
	return &Error{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *Error {
	return &Error{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *Error {
	return Config(fmt.Sprintf(format, args...))
}

// ConfigAt creates a configuration error about a file, wrapping its cause.
func ConfigAt(path, message string, cause error) *Error {
	return &Error{
		Kind:    KindConfig,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// Environment creates a new environment error.
func Environment(message string) *Error {
	return &Error{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Environmentf creates a new environment error with formatting.
func Environmentf(format string, args ...interface{}) *Error {
	return Environment(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *Error {
	return &Error{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// Discovery reports a missing build output root or bundle directory.
func Discovery(path string, cause error) *Error {
	return &Error{
		Kind:    KindDiscovery,
		Message: "build output not found",
		Path:    path,
		Cause:   cause,
	}
}

// Minification reports a minifier failure for one file, carrying the
// minifier's own diagnostic output.
func Minification(path, diagnostics string, cause error) *Error {
	return &Error{
		Kind:        KindMinification,
		Message:     "minification failed",
		Path:        path,
		Diagnostics: diagnostics,
		Cause:       cause,
	}
}

// Compression reports a failure measuring the compressed size of a minified artifact.
func Compression(path string, cause error) *Error {
	return &Error{
		Kind:    KindCompression,
		Message: "compression failed",
		Path:    path,
		Cause:   cause,
	}
}

// Write reports a renderer that could not write its artifact.
func Write(path string, cause error) *Error {
	return &Error{
		Kind:    KindWrite,
		Message: "cannot write report",
		Path:    path,
		Cause:   cause,
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind, true
	}
	return KindRuntime, false
}

// GetExitCode returns the exit code for an error.
// Wrapped errors are unwrapped until an *Error is found.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.ExitCode()
	}
	return ExitRuntimeError
}
