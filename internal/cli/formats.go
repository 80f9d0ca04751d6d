package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sciplot/pkg/sizes"
	"github.com/matzehuels/sciplot/pkg/styles"
)

// formatsCommand creates the formats command listing registered profiles.
func (c *CLI) formatsCommand() *cobra.Command {
	var profilesPath string

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List registered size and style profiles",
		Long: `List registered size and style profiles.

Shows the physical dimensions of every size profile and the typography
metrics (font size, title size, line width) each style derives from it.
Use --profiles to merge user-defined sizes from a TOML file first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadProfiles(profilesPath); err != nil {
				return err
			}
			return runFormats()
		},
	}

	cmd.Flags().StringVar(&profilesPath, "profiles", "", "TOML file with additional size profiles")

	return cmd
}

func runFormats() error {
	fmt.Println(StyleTitle.Render("Sizes"))
	fmt.Println(sizeTable())
	fmt.Println()
	fmt.Println(StyleTitle.Render("Metrics per style"))
	fmt.Println(metricsTable())
	return nil
}

// sizeTable renders the physical dimensions of all size profiles.
func sizeTable() string {
	rows := [][]string{}
	for _, name := range sizes.Names() {
		p, err := sizes.Lookup(name)
		if err != nil {
			continue
		}
		rows = append(rows, []string{
			p.Name,
			fmt.Sprintf("%.2f × %.2f in", p.NormalWidth, p.NormalHeight),
			fmt.Sprintf("%.2f × %.2f in", p.WideWidth, p.WideHeight),
		})
	}

	return tableWith([]string{"Size", "Normal (W × H)", "Wide (W × H)"}, rows)
}

// metricsTable renders the per-style typography metrics of all profiles.
func metricsTable() string {
	rows := [][]string{}
	for _, sizeName := range sizes.Names() {
		p, err := sizes.Lookup(sizeName)
		if err != nil {
			continue
		}
		for _, styleName := range styles.Names() {
			s, err := styles.Lookup(styleName)
			if err != nil {
				continue
			}
			cfg, err := s.Config(p)
			if err != nil {
				// Profile has no column for this style; skip the pair.
				continue
			}
			rows = append(rows, []string{
				p.Name,
				s.Name,
				fmt.Sprintf("%g pt", cfg.FontSize),
				fmt.Sprintf("%g pt", cfg.TitleSize),
				fmt.Sprintf("%g pt", cfg.LineWidth),
			})
		}
	}

	return tableWith([]string{"Size", "Style", "Font", "Title", "Line"}, rows)
}

func tableWith(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return StyleValue
		})
	return t.String()
}
