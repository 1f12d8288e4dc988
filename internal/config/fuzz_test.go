package config

import (
	"reflect"
	"testing"
)

// FuzzLoad tests configuration loading with arbitrary section input.
// Run: go test -fuzz=FuzzLoad -fuzztime=30s ./internal/config
func FuzzLoad(f *testing.F) {
	seeds := []string{
		`{}`,
		``,
		`null`,
		`[]`,
		`"string"`,
		`123`,
		`true`,
		`{"dist": "./build", "minifier": "terser"}`,
		`{"test-files": ["a.js"], "script-patterns": ["**/*.js"]}`,
		`{"generate-json-report": "false"}`,
		`{"mangle-props": "(["}`,
		`{"dist": "./构建"}`,
		`{"dist": "./dist",}`,
		`{dist: "x"}`,
		`{"dist": {"nested": true}}`,
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Loading never panics and is deterministic.
		cfg1, err1 := Load(data)
		cfg2, err2 := Load(data)

		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("non-deterministic error: %v vs %v", err1, err2)
		}
		if err1 == nil && !reflect.DeepEqual(cfg1, cfg2) {
			t.Fatalf("non-deterministic result: %+v vs %+v", cfg1, cfg2)
		}

		// Validation of whatever loaded must not panic either.
		if err1 == nil {
			_, _ = Validate(cfg1)
		}
		_, _, _ = LoadAndValidate(data)
	})
}
