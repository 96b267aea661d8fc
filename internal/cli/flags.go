package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/figtools/pubfig/pkg/figure"
	"github.com/figtools/pubfig/pkg/page"
	"github.com/figtools/pubfig/pkg/pipeline"
	"github.com/figtools/pubfig/pkg/unit"
)

// pageFlags holds the page selection flags shared by size and render.
type pageFlags struct {
	preset     string
	width      float64
	height     float64
	margins    string
	unit       string
	landscape  bool
	configPath string
}

// register adds the page flags to cmd.
func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "page", "p", "", "page preset: a4 (default), letter, slide4:3, slide16:9, or a config-defined page")
	cmd.Flags().Float64Var(&f.width, "width", 0, "custom page width (with --height, overrides --page)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "custom page height (with --width, overrides --page)")
	cmd.Flags().StringVarP(&f.margins, "margins", "m", "", "margins: one uniform value, or top,bottom,left,right")
	cmd.Flags().StringVarP(&f.unit, "unit", "u", "", "unit for input and output: mm (default), cm, in, pt")
	cmd.Flags().BoolVar(&f.landscape, "landscape", false, "rotate the page to landscape orientation")
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default ~/.config/pubfig/config.toml)")
}

// apply resolves the page flags into opts, consulting the config file for
// custom presets. Custom width/height build an explicit page; otherwise the
// preset name is passed through for the pipeline (or config) to resolve.
func (f *pageFlags) apply(opts *pipeline.Options) error {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}

	opts.Preset = f.preset
	opts.Unit = f.unit

	if f.width > 0 || f.height > 0 {
		if f.width <= 0 || f.height <= 0 {
			return fmt.Errorf("custom pages need both --width and --height")
		}
		u := unit.Millimeter
		if f.unit != "" {
			parsed, err := unit.Parse(f.unit)
			if err != nil {
				return err
			}
			u = parsed
		}
		p := page.Page{Width: f.width, Height: f.height, Unit: u}
		opts.Page = &p
	}

	if err := cfg.apply(opts); err != nil {
		return err
	}

	if f.margins != "" {
		m, err := parseMargins(f.margins)
		if err != nil {
			return err
		}
		p, err := resolvedPage(opts)
		if err != nil {
			return err
		}
		p.Margin = m
		opts.Page = &p
		opts.Preset = ""
	}

	if f.landscape {
		p, err := resolvedPage(opts)
		if err != nil {
			return err
		}
		rotated := p.Landscape()
		opts.Page = &rotated
		opts.Preset = ""
	}
	return nil
}

// resolvedPage materializes the page opts currently describe.
func resolvedPage(opts *pipeline.Options) (page.Page, error) {
	if opts.Page != nil {
		return *opts.Page, nil
	}
	p, err := page.Preset(presetOrDefault(opts.Preset))
	if err != nil {
		return page.Page{}, err
	}
	if opts.Unit != "" {
		u, err := unit.Parse(opts.Unit)
		if err != nil {
			return page.Page{}, err
		}
		p = p.In(u)
	}
	return p, nil
}

func presetOrDefault(name string) string {
	if name == "" {
		return pipeline.DefaultPreset
	}
	return name
}

// parseMargins parses the --margins flag: either a single uniform value or
// four comma-separated values in top,bottom,left,right order.
func parseMargins(s string) (page.Margin, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return page.Margin{}, fmt.Errorf("invalid margin value %q", part)
		}
		values = append(values, v)
	}
	switch len(values) {
	case 1:
		return page.Uniform(values[0]), nil
	case 4:
		return page.Margin{Top: values[0], Bottom: values[1], Left: values[2], Right: values[3]}, nil
	}
	return page.Margin{}, fmt.Errorf("margins want 1 or 4 values, got %d", len(values))
}

// geometryFlags holds the sizing flags shared by size and render.
type geometryFlags struct {
	scale   float64
	aspect  float64
	square  bool
	auto    bool
	xfrac   float64
	yfrac   float64
	wspace  float64
	hspace  float64
	stretch float64
}

// register adds the geometry flags to cmd.
func (f *geometryFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.scale, "scale", "s", 0, "figure width as a fraction of the content width (default 1.0)")
	cmd.Flags().Float64Var(&f.aspect, "aspect", 0, "cell height/width ratio; caps the figure at the content height")
	cmd.Flags().BoolVar(&f.square, "square", false, "square cells (shorthand for --aspect 1)")
	cmd.Flags().BoolVar(&f.auto, "auto", false, "pick width/height fractions from the grid shape")
	cmd.Flags().Float64Var(&f.xfrac, "xfrac", 0, "width fraction of the content area (default 1.0)")
	cmd.Flags().Float64Var(&f.yfrac, "yfrac", 0, "height fraction of the content area (default 1.0)")
	cmd.Flags().Float64Var(&f.wspace, "wspace", 0, "horizontal gap between cells as a fraction of cell width")
	cmd.Flags().Float64Var(&f.hspace, "hspace", 0, "vertical gap between cells as a fraction of cell height")
	cmd.Flags().Float64Var(&f.stretch, "stretch", 0, "vertical stretch factor, clamped to the content height")
}

// apply copies the geometry flags into opts.
func (f *geometryFlags) apply(opts *pipeline.Options) {
	opts.Scale = f.scale
	opts.CellAspect = f.aspect
	if f.square {
		opts.CellAspect = 1
	}
	opts.AutoFractions = f.auto
	opts.XFrac = f.xfrac
	opts.YFrac = f.yfrac
	opts.WSpace = f.wspace
	opts.HSpace = f.hspace
	opts.Stretch = f.stretch
}

// parseGrid parses the positional ROWS COLS arguments.
func parseGrid(args []string) (figure.Grid, error) {
	rows, err := strconv.Atoi(args[0])
	if err != nil {
		return figure.Grid{}, fmt.Errorf("invalid row count %q", args[0])
	}
	cols, err := strconv.Atoi(args[1])
	if err != nil {
		return figure.Grid{}, fmt.Errorf("invalid column count %q", args[1])
	}
	g := figure.Grid{Rows: rows, Cols: cols}
	return g, g.Validate()
}
