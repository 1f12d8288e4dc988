package config

import "github.com/spf13/viper"

// Default configuration values.
const (
	DefaultRuntime            = "node"
	DefaultSrc                = "./src"
	DefaultDist               = "./dist"
	DefaultTests              = "./tests"
	DefaultTmp                = "./tmp"
	DefaultReports            = "./reports"
	DefaultMinifier           = "esbuild"
	DefaultMangleProps        = "^_"
	DefaultGenerateJSONReport = true
	DefaultGenerateSVGReport  = true
)

// Default list values. Copied on use.
var (
	DefaultTestFiles      = []string{"test.js"}
	DefaultScriptPatterns = []string{"*.js"}
)

// EnvPrefix prefixes environment overrides: TSP_MINIFIER, TSP_GENERATE_JSON_REPORT, ...
const EnvPrefix = "TSP"

// Default returns a configuration holding only default values.
func Default() *Config {
	return &Config{
		Runtime:            DefaultRuntime,
		Src:                DefaultSrc,
		Dist:               DefaultDist,
		Tests:              DefaultTests,
		TestFiles:          append([]string(nil), DefaultTestFiles...),
		Tmp:                DefaultTmp,
		Reports:            DefaultReports,
		GenerateJSONReport: DefaultGenerateJSONReport,
		GenerateSVGReport:  DefaultGenerateSVGReport,
		Minifier:           DefaultMinifier,
		MangleProps:        DefaultMangleProps,
		ScriptPatterns:     append([]string(nil), DefaultScriptPatterns...),
	}
}

// setDefaults registers every key so environment overrides apply to all of them.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("runtime", d.Runtime)
	v.SetDefault("src", d.Src)
	v.SetDefault("dist", d.Dist)
	v.SetDefault("tests", d.Tests)
	v.SetDefault("test-files", d.TestFiles)
	v.SetDefault("tmp", d.Tmp)
	v.SetDefault("reports", d.Reports)
	v.SetDefault("generate-json-report", d.GenerateJSONReport)
	v.SetDefault("generate-svg-report", d.GenerateSVGReport)
	v.SetDefault("minifier", d.Minifier)
	v.SetDefault("mangle-props", d.MangleProps)
	v.SetDefault("keep-classnames", d.KeepClassnames)
	v.SetDefault("keep-fnames", d.KeepFnames)
	v.SetDefault("script-patterns", d.ScriptPatterns)
}
