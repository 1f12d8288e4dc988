// Package config provides configuration loading and validation for the "tsp"
// section of package.json.
package config

// Config is the resolved tsp configuration. Paths are relative to the
// package root unless absolute.
type Config struct {
	Runtime            string   `mapstructure:"runtime" json:"runtime" yaml:"runtime"`
	Src                string   `mapstructure:"src" json:"src" yaml:"src"`
	Dist               string   `mapstructure:"dist" json:"dist" yaml:"dist"`
	Tests              string   `mapstructure:"tests" json:"tests" yaml:"tests"`
	TestFiles          []string `mapstructure:"test-files" json:"test-files" yaml:"test-files"`
	Tmp                string   `mapstructure:"tmp" json:"tmp" yaml:"tmp"`
	Reports            string   `mapstructure:"reports" json:"reports" yaml:"reports"`
	GenerateJSONReport bool     `mapstructure:"generate-json-report" json:"generate-json-report" yaml:"generate-json-report"`
	GenerateSVGReport  bool     `mapstructure:"generate-svg-report" json:"generate-svg-report" yaml:"generate-svg-report"`
	Minifier           string   `mapstructure:"minifier" json:"minifier" yaml:"minifier"`
	MangleProps        string   `mapstructure:"mangle-props" json:"mangle-props" yaml:"mangle-props"`
	KeepClassnames     bool     `mapstructure:"keep-classnames" json:"keep-classnames" yaml:"keep-classnames"`
	KeepFnames         bool     `mapstructure:"keep-fnames" json:"keep-fnames" yaml:"keep-fnames"`
	ScriptPatterns     []string `mapstructure:"script-patterns" json:"script-patterns" yaml:"script-patterns"`
}

// Entries returns the configuration as ordered key/value pairs for display.
func (c *Config) Entries() [][2]string {
	return [][2]string{
		{"runtime", c.Runtime},
		{"src", c.Src},
		{"dist", c.Dist},
		{"tests", c.Tests},
		{"test-files", joinList(c.TestFiles)},
		{"tmp", c.Tmp},
		{"reports", c.Reports},
		{"generate-json-report", formatBool(c.GenerateJSONReport)},
		{"generate-svg-report", formatBool(c.GenerateSVGReport)},
		{"minifier", c.Minifier},
		{"mangle-props", c.MangleProps},
		{"keep-classnames", formatBool(c.KeepClassnames)},
		{"keep-fnames", formatBool(c.KeepFnames)},
		{"script-patterns", joinList(c.ScriptPatterns)},
	}
}

func joinList(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
