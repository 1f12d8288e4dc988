package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/reflex-stack/tsp/internal/schema"
)

// Load resolves the configuration from the raw "tsp" section of package.json.
// Layering: defaults, then the section, then TSP_* environment variables.
// An empty or null section yields defaults (plus environment overrides).
func Load(raw []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if section := bytes.TrimSpace(raw); len(section) > 0 && !bytes.Equal(section, []byte("null")) {
		v.SetConfigType("json")
		if err := v.ReadConfig(bytes.NewReader(section)); err != nil {
			return nil, fmt.Errorf("failed to parse tsp config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode tsp config: %w", err)
	}
	return &cfg, nil
}

// LoadAndValidate loads the section, checks it against the embedded schema,
// validates the resolved values, and returns warnings for unknown keys.
func LoadAndValidate(raw []byte) (*Config, []string, error) {
	var warnings []string
	if section := bytes.TrimSpace(raw); len(section) > 0 && !bytes.Equal(section, []byte("null")) {
		if err := schema.ValidateConfig(section); err != nil {
			return nil, nil, err
		}
		var err error
		warnings, err = detectUnknownFields(section)
		if err != nil {
			return nil, nil, err
		}
	}

	cfg, err := Load(raw)
	if err != nil {
		return nil, warnings, err
	}

	validationWarnings, err := Validate(cfg)
	warnings = append(warnings, validationWarnings...)
	if err != nil {
		return nil, warnings, err
	}
	return cfg, warnings, nil
}

// JSON returns the resolved configuration as indented JSON.
func (c *Config) JSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
