package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	tsperrors "github.com/reflex-stack/tsp/internal/errors"
)

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the tsp configuration",
	}
	cmd.AddCommand(a.configShowCommand(), a.configValidateCommand())
	return cmd
}

func (a *app) configShowCommand() *cobra.Command {
	format := formatTable

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after defaults, the package.json "tsp" section and
TSP_* environment variables have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if format != formatTable {
				a.statusToStderr()
			}
			p, err := a.loadProject()
			if err != nil {
				return err
			}

			switch format {
			case formatTable:
				rows := make([][]string, 0, 16)
				for _, e := range p.Config.Entries() {
					rows = append(rows, []string{e[0], e[1]})
				}
				a.out.Table([]string{"Key", "Value"}, rows)
			case formatJSON:
				data, err := p.Config.JSON()
				if err != nil {
					return tsperrors.Wrap(err, "cannot encode configuration")
				}
				fmt.Fprintln(a.stdout, string(data))
			case formatYAML:
				enc := yaml.NewEncoder(a.stdout)
				enc.SetIndent(2)
				if err := enc.Encode(p.Config); err != nil {
					return tsperrors.Wrap(err, "cannot encode configuration")
				}
				return enc.Close()
			default:
				return tsperrors.Configf("invalid --format value %q (valid: %s, %s, %s)", format, formatTable, formatJSON, formatYAML)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatTable, "output format: table, json or yaml")
	return cmd
}

func (a *app) configValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate package.json and its tsp section",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := a.loadProject()
			if err != nil {
				return err
			}

			a.out.ValidationSuccess("Configuration is valid.")
			a.out.SummaryItem("Package", p.DisplayName())
			if p.Version != nil {
				v := p.Version.String()
				if p.Version.IsPrerelease() {
					v += " (prerelease)"
				}
				a.out.SummaryItem("Version", v)
			}
			a.out.SummaryItem("Bundles", fmt.Sprintf("%d", len(p.Exports)))
			a.out.SummaryItem("Minifier", p.Config.Minifier)
			if len(p.Warnings) > 0 {
				a.out.SummaryItem("Warnings", fmt.Sprintf("%d", len(p.Warnings)))
			}
			return nil
		},
	}
}
