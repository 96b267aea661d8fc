package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/figtools/pubfig/pkg/page"
)

// pagesCommand creates the pages command listing the available presets.
func (c *CLI) pagesCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List page presets and their content areas",
		Long: `List page presets and their content areas.

Shows each preset's outer dimensions, conventional margins, and the content
area a full-width figure would occupy. Config-defined pages are included
when a config file is present.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPages(configFile)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file (default ~/.config/pubfig/config.toml)")
	return cmd
}

// runPages prints the preset table.
func runPages(configFile string) error {
	rows := [][]string{}
	for _, name := range page.PresetNames() {
		p, err := page.Preset(name)
		if err != nil {
			return err
		}
		rows = append(rows, pageRow(name, p))
	}

	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	if cfg != nil {
		names := make([]string, 0, len(cfg.Pages))
		for name := range cfg.Pages {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			p, err := cfg.Pages[name].page()
			if err != nil {
				return fmt.Errorf("config page %q: %w", name, err)
			}
			rows = append(rows, pageRow(name+" *", p))
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Preset", "Page", "Margins (T/B/L/R)", "Content", "Unit").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	fmt.Println(t.Render())
	if cfg != nil && len(cfg.Pages) > 0 {
		fmt.Println(StyleDim.Render("  * defined in config"))
	}
	return nil
}

// pageRow formats one preset as a table row.
func pageRow(name string, p page.Page) []string {
	body := p.Body()
	return []string{
		name,
		fmt.Sprintf("%.4g × %.4g", p.Width, p.Height),
		fmt.Sprintf("%.4g / %.4g / %.4g / %.4g", p.Margin.Top, p.Margin.Bottom, p.Margin.Left, p.Margin.Right),
		fmt.Sprintf("%.4g × %.4g", body.Width, body.Height),
		string(p.Unit),
	}
}
