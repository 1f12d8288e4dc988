package cli

import (
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/reflex-stack/tsp/internal/project"
)

func (a *app) bundlesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bundles",
		Short: "List the bundles declared in package.json exports",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := a.loadProject()
			if err != nil {
				return err
			}
			a.printBundles(p, p.DescribeBundles())
			return nil
		},
	}
}

func (a *app) printBundles(p *project.Project, infos []project.BundleInfo) {
	title := cases.Title(language.English)
	headers := []string{"Bundle", "Export", "Directory", "Scripts"}

	for _, kind := range []string{project.KindMain, project.KindSubmodule} {
		var rows [][]string
		for _, info := range infos {
			if info.Kind != kind {
				continue
			}
			rows = append(rows, []string{info.Name, info.Export, relativeTo(p.Root, info.Dir), scriptCount(info)})
		}
		if len(rows) == 0 {
			continue
		}
		a.out.Section(title.String(kind))
		a.out.Table(headers, rows)
	}
}

func scriptCount(info project.BundleInfo) string {
	if !info.Built {
		return "not built"
	}
	return strconv.Itoa(info.Scripts)
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
