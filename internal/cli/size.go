package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/figtools/pubfig/pkg/pipeline"
	"github.com/figtools/pubfig/pkg/render/sink"
)

// sizeCommand creates the size command for computing figure dimensions.
func (c *CLI) sizeCommand() *cobra.Command {
	var (
		pf       pageFlags
		gf       geometryFlags
		asJSON   bool
		showGrid bool
	)

	cmd := &cobra.Command{
		Use:   "size ROWS COLS",
		Short: "Compute figure and panel dimensions for a page and grid",
		Long: `Compute figure and panel dimensions for a page and grid.

The size command answers the core question: how large must a multi-panel
figure be so that, once embedded in the page, it renders at its intended
scale instead of being rescaled by the document layout engine?

Examples:
  pubfig size 3 2
  pubfig size 2 2 --page letter --scale 0.8
  pubfig size 1 4 --square --unit in`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := parseGrid(args)
			if err != nil {
				return err
			}
			opts := pipeline.Options{Grid: grid}
			if err := pf.apply(&opts); err != nil {
				return err
			}
			gf.apply(&opts)
			return c.runSize(cmd.Context(), opts, asJSON, showGrid)
		},
	}

	pf.register(cmd)
	gf.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON instead of a summary")
	cmd.Flags().BoolVar(&showGrid, "cells", false, "list every panel with its position")

	return cmd
}

// runSize computes the layout and prints it.
func (c *CLI) runSize(ctx context.Context, opts pipeline.Options, asJSON, showGrid bool) error {
	loggerFromContext(ctx).Debug("computing layout",
		"rows", opts.Grid.Rows, "cols", opts.Grid.Cols, "preset", opts.Preset)

	runner := pipeline.NewRunner(nil, c.Logger)
	layout, err := runner.ComputeLayout(ctx, opts)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := sink.RenderJSON(layout, sink.WithJSONStyle(opts.Style))
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	u := layout.Figure.Unit
	body := layout.Page.Body()

	fmt.Println(StyleTitle.Render("Figure size"))
	printKeyValue("page", fmt.Sprintf("%.4g × %.4g %s", layout.Page.Width, layout.Page.Height, u))
	printKeyValue("content", fmt.Sprintf("%.4g × %.4g %s", body.Width, body.Height, u))
	printKeyValue("figure", StyleNumber.Render(fmt.Sprintf("%.4g × %.4g %s", layout.Figure.Width, layout.Figure.Height, u)))
	printKeyValue("grid", fmt.Sprintf("%d × %d (%d panels)", layout.Grid.Rows, layout.Grid.Cols, layout.Grid.Panels()))
	if len(layout.Cells) > 0 {
		cell := layout.Cells[0]
		printKeyValue("panel", fmt.Sprintf("%.4g × %.4g %s", cell.Width, cell.Height, u))
	}

	if showGrid {
		printNewline()
		for _, cell := range layout.Cells {
			printKeyValue(cell.Label(layout.Grid.Cols),
				fmt.Sprintf("x=%.4g y=%.4g w=%.4g h=%.4g", cell.Left, cell.Top, cell.Width, cell.Height))
		}
	}
	return nil
}
