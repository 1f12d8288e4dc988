// Package minify wraps the JavaScript minifiers used to measure bundle sizes.
//
// Three backends are available: esbuild (in process, the default), terser
// (external process, the reference configuration) and tdewolff (in process,
// whitespace and syntax only). All of them take the compiled script content
// and return the minified bytes.
package minify

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Backend names accepted by New.
const (
	BackendEsbuild  = "esbuild"
	BackendTerser   = "terser"
	BackendTdewolff = "tdewolff"
)

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendEsbuild, BackendTerser, BackendTdewolff}
}

// Minifier turns a compiled script into its minified form.
type Minifier interface {
	// Name returns the backend name.
	Name() string
	// Minify returns the minified content of the script at path.
	// path is used for diagnostics only; the content is src.
	Minify(ctx context.Context, path string, src []byte) ([]byte, error)
}

// DiagnosticError carries the verbatim diagnostic output of a minifier.
type DiagnosticError struct {
	Backend     string
	Diagnostics string
	Err         error
}

func (e *DiagnosticError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Backend, e.Err)
	}
	return e.Backend + " failed"
}

func (e *DiagnosticError) Unwrap() error {
	return e.Err
}

// PropertyConvention decides which property names are private and may be
// renamed by the minifier. The zero value treats no property as private.
type PropertyConvention struct {
	re *regexp.Regexp
}

// DefaultPrivatePattern marks properties with a leading underscore as private.
const DefaultPrivatePattern = "^_"

// NewPropertyConvention compiles a naming convention from a regular expression.
// An empty pattern disables property mangling.
func NewPropertyConvention(pattern string) (PropertyConvention, error) {
	if pattern == "" {
		return PropertyConvention{}, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return PropertyConvention{}, fmt.Errorf("invalid property pattern %q: %w", pattern, err)
	}
	return PropertyConvention{re: re}, nil
}

// PrefixConvention treats names starting with prefix as private.
func PrefixConvention(prefix string) PropertyConvention {
	if prefix == "" {
		return PropertyConvention{}
	}
	return PropertyConvention{re: regexp.MustCompile("^" + regexp.QuoteMeta(prefix))}
}

// Pattern returns the regular expression source, or "" when disabled.
func (c PropertyConvention) Pattern() string {
	if c.re == nil {
		return ""
	}
	return c.re.String()
}

// IsPrivate reports whether a property name may be mangled.
func (c PropertyConvention) IsPrivate(name string) bool {
	return c.re != nil && c.re.MatchString(name)
}

// Options configures every backend. Backends ignore what they cannot express.
type Options struct {
	Ecma              int               // ECMAScript level the output may use
	Passes            int               // Compression passes (terser)
	KeepClassNames    bool              // Retain class names
	KeepFunctionNames bool              // Retain function names
	Private           PropertyConvention // Properties that may be renamed
	Define            map[string]string // Global identifiers replaced at compile time
}

// DefaultOptions returns the production minification profile.
func DefaultOptions() Options {
	return Options{
		Ecma:    2017,
		Passes:  3,
		Private: PrefixConvention("_"),
		Define: map[string]string{
			"process.env.NODE_ENV": `"production"`,
		},
	}
}

// defineKeys returns Define keys in a stable order.
func (o Options) defineKeys() []string {
	keys := make([]string, 0, len(o.Define))
	for k := range o.Define {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// New returns the backend with the given name.
// The terser backend runs through cmd, which may be nil for the in-process backends.
func New(name string, opts Options, cmd CommandRunner) (Minifier, error) {
	switch strings.ToLower(name) {
	case "", BackendEsbuild:
		return NewEsbuild(opts), nil
	case BackendTerser:
		if cmd == nil {
			return nil, fmt.Errorf("terser backend requires a command runner")
		}
		return NewTerser(opts, cmd), nil
	case BackendTdewolff:
		return NewTdewolff(opts), nil
	default:
		return nil, fmt.Errorf("unknown minifier %q (valid: %s)", name, strings.Join(Backends(), ", "))
	}
}
