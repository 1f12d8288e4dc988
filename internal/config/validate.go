package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reflex-stack/tsp/internal/minify"
	"github.com/reflex-stack/tsp/internal/sizereport"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	if err := validateDirectories(cfg); err != nil {
		return nil, err
	}
	if err := validateMinifier(cfg); err != nil {
		return nil, err
	}
	if len(cfg.ScriptPatterns) == 0 {
		return nil, &ValidationError{Field: "script-patterns", Message: "must list at least one pattern"}
	}
	if err := sizereport.ValidatePatterns(cfg.ScriptPatterns); err != nil {
		return nil, &ValidationError{Field: "script-patterns", Message: err.Error()}
	}
	if strings.TrimSpace(cfg.Runtime) == "" {
		return nil, &ValidationError{Field: "runtime", Message: "is required"}
	}

	if len(cfg.TestFiles) == 0 {
		warnings = append(warnings, "test-files is empty: tsp test has nothing to run")
	}
	if cfg.Minifier == minify.BackendTdewolff && cfg.MangleProps != "" {
		warnings = append(warnings, "mangle-props is ignored by the tdewolff minifier")
	}
	return warnings, nil
}

func validateDirectories(cfg *Config) error {
	dirs := []struct {
		field string
		value string
	}{
		{"src", cfg.Src},
		{"dist", cfg.Dist},
		{"tests", cfg.Tests},
		{"tmp", cfg.Tmp},
		{"reports", cfg.Reports},
	}
	for _, d := range dirs {
		if strings.TrimSpace(d.value) == "" {
			return &ValidationError{Field: d.field, Message: "must not be empty"}
		}
	}

	tmp := filepath.Clean(cfg.Tmp)
	for _, other := range []struct {
		field string
		value string
	}{{"dist", cfg.Dist}, {"reports", cfg.Reports}, {"src", cfg.Src}} {
		if filepath.Clean(other.value) == tmp {
			return &ValidationError{Field: "tmp", Message: fmt.Sprintf("must differ from %s (it is deleted after every size report)", other.field)}
		}
	}
	if sizereport.IsWithin(tmp, filepath.Clean(cfg.Dist)) {
		return &ValidationError{Field: "tmp", Message: "must not be inside dist (minified copies would be measured as bundle files)"}
	}
	if filepath.Clean(cfg.Dist) == filepath.Clean(cfg.Reports) {
		return &ValidationError{Field: "reports", Message: "must differ from dist (it is cleared before reports are written)"}
	}
	return nil
}

func validateMinifier(cfg *Config) error {
	name := strings.ToLower(cfg.Minifier)
	valid := false
	for _, b := range minify.Backends() {
		if name == b {
			valid = true
			break
		}
	}
	if !valid {
		return &ValidationError{
			Field:   "minifier",
			Message: fmt.Sprintf("must be one of %s", strings.Join(minify.Backends(), ", ")),
		}
	}
	if _, err := minify.NewPropertyConvention(cfg.MangleProps); err != nil {
		return &ValidationError{Field: "mangle-props", Message: err.Error()}
	}
	return nil
}

// MinifyOptions converts the configuration into minifier options.
func (c *Config) MinifyOptions() (minify.Options, error) {
	opts := minify.DefaultOptions()
	conv, err := minify.NewPropertyConvention(c.MangleProps)
	if err != nil {
		return opts, err
	}
	opts.Private = conv
	opts.KeepClassNames = c.KeepClassnames
	opts.KeepFunctionNames = c.KeepFnames
	return opts, nil
}
