package sizereport

import (
	"fmt"
	"html"
	"math"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"

	tsperrors "github.com/reflex-stack/tsp/internal/errors"
)

// Scheme is a badge color scheme.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// Schemes lists the schemes every badge is rendered in.
var Schemes = []Scheme{SchemeLight, SchemeDark}

// Fill returns the text color of the scheme.
func (s Scheme) Fill() string {
	if s == SchemeDark {
		return "white"
	}
	return "black"
}

// TotalBadgeName is the badge base name of the combined size.
const TotalBadgeName = "total"

const (
	badgeFontSize  = 14
	badgeCharWidth = 0.6
	badgeFontStack = `Consolas, Monaco, "Lucida Console", monospace`
)

// RenderSVG returns a badge showing text in the given scheme.
// Width is estimated from the character count of text.
func RenderSVG(text string, scheme Scheme) string {
	height := badgeFontSize + 1
	width := math.Round((float64(len(text))*badgeFontSize*badgeCharWidth+1)*100) / 100
	return fmt.Sprintf(
		`<svg width="%s" height="%d" xmlns="http://www.w3.org/2000/svg">`+
			`<style> text { fill: %s; font-family: %s; font-size: %dpx; }</style>`+
			`<text y="%d">%s</text></svg>`,
		strconv.FormatFloat(width, 'f', -1, 64), height,
		scheme.Fill(), badgeFontStack, badgeFontSize,
		height-1, html.EscapeString(text),
	)
}

// BadgeFileName returns "<name>-<scheme>.svg".
func BadgeFileName(name string, scheme Scheme) string {
	return name + "-" + string(scheme) + ".svg"
}

// WriteSVGs writes a light and dark badge of the compressed size per bundle,
// plus a total pair when the report has more than one bundle.
// It returns the paths written, stopping at the first failure.
func WriteSVGs(fs afero.Fs, dir string, report Report) ([]string, error) {
	type badge struct {
		name string
		size int64
	}
	badges := make([]badge, 0, len(report)+1)
	for _, b := range report {
		badges = append(badges, badge{b.Name, b.Sizes[Compressed]})
	}
	if report.HasTotal() {
		badges = append(badges, badge{TotalBadgeName, report.Total()[Compressed]})
	}

	var written []string
	for _, b := range badges {
		text := HumanSize(b.size)
		for _, scheme := range Schemes {
			path := filepath.Join(dir, filepath.FromSlash(BadgeFileName(b.name, scheme)))
			if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return written, tsperrors.Write(path, err)
			}
			if err := afero.WriteFile(fs, path, []byte(RenderSVG(text, scheme)), 0644); err != nil {
				return written, tsperrors.Write(path, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}
