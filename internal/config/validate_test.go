package config

import (
	"errors"
	"strings"
	"testing"
)

func asValidationError(err error, target **ValidationError) bool {
	return errors.As(err, target)
}

func TestValidate_Defaults(t *testing.T) {
	warnings, err := Validate(Default())
	if err != nil {
		t.Fatalf("Validate(Default()) error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"empty dist", func(c *Config) { c.Dist = "" }, "dist"},
		{"blank src", func(c *Config) { c.Src = "  " }, "src"},
		{"tmp equals dist", func(c *Config) { c.Tmp = "dist" }, "tmp"},
		{"tmp inside dist", func(c *Config) { c.Tmp = "./dist/.tsp-tmp" }, "tmp"},
		{"tmp equals reports", func(c *Config) { c.Tmp = "./reports/" }, "tmp"},
		{"reports equals dist", func(c *Config) { c.Reports = "./dist" }, "reports"},
		{"unknown minifier", func(c *Config) { c.Minifier = "uglify" }, "minifier"},
		{"bad mangle-props", func(c *Config) { c.MangleProps = "([" }, "mangle-props"},
		{"no patterns", func(c *Config) { c.ScriptPatterns = nil }, "script-patterns"},
		{"bad pattern", func(c *Config) { c.ScriptPatterns = []string{"[a-.js"} }, "script-patterns"},
		{"absolute pattern", func(c *Config) { c.ScriptPatterns = []string{"/x/*.js"} }, "script-patterns"},
		{"empty runtime", func(c *Config) { c.Runtime = "" }, "runtime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			_, err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			var ve *ValidationError
			if !asValidationError(err, &ve) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestValidate_MinifierCaseInsensitive(t *testing.T) {
	cfg := Default()
	cfg.Minifier = "Terser"
	if _, err := Validate(cfg); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate_Warnings(t *testing.T) {
	cfg := Default()
	cfg.TestFiles = nil
	cfg.Minifier = "tdewolff"

	warnings, err := Validate(cfg)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v, want 2", warnings)
	}
	if !strings.Contains(warnings[0], "test-files") || !strings.Contains(warnings[1], "tdewolff") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "dist", Message: "must not be empty"}
	if got := err.Error(); got != "dist: must not be empty" {
		t.Errorf("Error() = %q", got)
	}
}
