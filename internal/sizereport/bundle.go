package sizereport

import (
	"path"
	"strings"
)

// MainBundleName is the display name of the root export ".".
const MainBundleName = "main"

// Bundle is a logical entry point of the package, declared by an export path.
type Bundle struct {
	Name      string // Display name: "main" for ".", otherwise the export without "./"
	Export    string // Declaration as written in package.json exports
	Directory string // Build output subpath, slash separated ("" for the root)
}

// NewBundle maps an export declaration to a bundle.
func NewBundle(export string) Bundle {
	dir := strings.TrimPrefix(export, "./")
	if export == "." || dir == "" {
		return Bundle{Name: MainBundleName, Export: export}
	}
	dir = strings.TrimSuffix(path.Clean(dir), "/")
	return Bundle{Name: dir, Export: export, Directory: dir}
}

// BundlesFromExports maps export declarations to bundles, keeping their order.
func BundlesFromExports(exports []string) []Bundle {
	bundles := make([]Bundle, 0, len(exports))
	for _, e := range exports {
		bundles = append(bundles, NewBundle(e))
	}
	return bundles
}

// IsMain reports whether b is the root bundle.
func (b Bundle) IsMain() bool {
	return b.Directory == ""
}
