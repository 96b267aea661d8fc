package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/figtools/pubfig/pkg/io"
	"github.com/figtools/pubfig/pkg/pipeline"
)

// renderCommand creates the render command for generating figure scaffolds.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		pf         pageFlags
		gf         geometryFlags
		formatsStr string
		output     string
		style      string
		labels     bool
		outline    bool
		dpi        float64
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "render ROWS COLS",
		Short: "Render a sized figure scaffold to SVG, PDF, PNG, or JSON",
		Long: `Render a sized figure scaffold to SVG, PDF, PNG, or JSON.

The scaffold shows each panel at its exact physical position and size, so it
can be placed under a chart in a vector editor or used to verify dimensions
before plotting. The JSON format carries the full layout and can be piped
back into other tools.

Results are cached locally for faster subsequent runs.

Examples:
  pubfig render 3 2 -o figure.svg
  pubfig render 2 2 --page letter -f svg,pdf --labels
  pubfig render 1 3 --style minimal --outline -o draft.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := parseGrid(args)
			if err != nil {
				return err
			}
			opts := pipeline.Options{
				Grid:        grid,
				Style:       style,
				Formats:     parseFormats(formatsStr),
				PanelLabels: labels,
				PageOutline: outline,
				DPI:         dpi,
			}
			if err := pf.apply(&opts); err != nil {
				return err
			}
			gf.apply(&opts)
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	pf.register(cmd)
	gf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), pdf, png, json (comma-separated)")
	cmd.Flags().StringVar(&style, "style", "", "visual style: classic (default), minimal")
	cmd.Flags().BoolVar(&labels, "labels", false, "draw panel labels: (a), (b), ...")
	cmd.Flags().BoolVar(&outline, "outline", false, "draw the page and margin outline around the figure (svg)")
	cmd.Flags().Float64Var(&dpi, "dpi", 0, "raster resolution for PNG output (default 300)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable artifact caching")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, the pipeline default applies.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// runRender executes the pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner := c.newRunner(noCache)
	defer runner.Cache.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, "Rendering figure...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if output == "" {
		output = fmt.Sprintf("figure_%dx%d", opts.Grid.Rows, opts.Grid.Cols)
	}
	paths, err := io.ExportArtifacts(output, result.Artifacts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d formats", len(result.Artifacts)))

	printSuccess("Rendered %.4g × %.4g %s figure",
		result.Size.Width, result.Size.Height, result.Size.Unit)
	for _, path := range paths {
		printFile(path)
	}
	formats := make([]string, 0, len(result.Artifacts))
	for format := range result.Artifacts {
		formats = append(formats, format)
	}
	printStats(result.Layout.Grid.Panels(), formats, allCached(result.CacheInfo.RenderHits))
	return nil
}

// allCached reports whether every rendered format was a cache hit.
func allCached(hits map[string]bool) bool {
	if len(hits) == 0 {
		return false
	}
	for _, hit := range hits {
		if !hit {
			return false
		}
	}
	return true
}
