package project

import (
	"github.com/spf13/afero"

	"github.com/reflex-stack/tsp/internal/sizereport"
)

// Bundle kinds shown by the bundles listing.
const (
	KindMain      = "main"
	KindSubmodule = "submodule"
)

// BundleInfo describes a declared bundle and the state of its build output.
type BundleInfo struct {
	sizereport.Bundle
	Kind    string
	Dir     string
	Built   bool
	Scripts int
}

// DescribeBundles inspects the build output of every declared bundle.
// Missing output is reported as not built rather than as an error.
func (p *Project) DescribeBundles() []BundleInfo {
	layout := p.Layout()
	infos := make([]BundleInfo, 0, len(p.Exports))
	for _, b := range p.Bundles() {
		info := BundleInfo{Bundle: b, Kind: KindSubmodule, Dir: layout.BundleDir(b)}
		if b.IsMain() {
			info.Kind = KindMain
		}
		if ok, _ := afero.DirExists(layout.Fs, info.Dir); ok {
			info.Built = true
			if found, err := sizereport.Discover(layout, []sizereport.Bundle{b}); err == nil {
				info.Scripts = len(found[0].Files)
			}
		}
		infos = append(infos, info)
	}
	return infos
}
