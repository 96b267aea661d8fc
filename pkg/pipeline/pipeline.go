// Package pipeline provides the core sizing and rendering pipeline for
// pubfig.
//
// This package implements the complete size → layout → render pipeline
// shared by the CLI commands. By centralizing this logic, defaults and
// caching behave identically across all entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Size: compute the physical figure dimensions for the target page
//  2. Layout: arrange the panel grid inside the figure
//  3. Render: generate output in the requested formats (SVG, PDF, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Preset:  "a4",
//	    Grid:    figure.Grid{Rows: 3, Cols: 2},
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"slices"
	"strings"
	"time"

	pfgerrors "github.com/figtools/pubfig/pkg/errors"
	"github.com/figtools/pubfig/pkg/figure"
	"github.com/figtools/pubfig/pkg/page"
	"github.com/figtools/pubfig/pkg/render/sink"
	"github.com/figtools/pubfig/pkg/styles"
	"github.com/figtools/pubfig/pkg/unit"
)

// Default values - single source of truth for the CLI.
const (
	// DefaultPreset is the page preset used when no page is specified.
	DefaultPreset = "a4"

	// DefaultStyle is the visual style for rendered scaffolds.
	DefaultStyle = "classic"

	// DefaultFormat is the output format when none is requested.
	DefaultFormat = "svg"

	// DefaultScale fills the full content width.
	DefaultScale = 1.0

	// DefaultDPI is the raster resolution for PNG output.
	DefaultDPI = sink.DefaultDPI

	// DefaultCacheTTL is how long rendered artifacts stay cached.
	DefaultCacheTTL = 24 * time.Hour
)

// Formats lists the supported output formats.
var Formats = []string{"svg", "pdf", "png", "json"}

// Options configures a pipeline run. The zero value plus a Grid is valid:
// defaults fill in an A4 page, classic style, and SVG output.
type Options struct {
	// Page selection: Page wins over Preset; an empty Preset means A4.
	Preset string
	Page   *page.Page

	// Unit converts the page (and therefore all output) to another unit
	// before sizing. Empty keeps the page's own unit.
	Unit string

	// Grid is the panel arrangement. Required.
	Grid figure.Grid

	// Sizing options; zero values mean "use the default".
	Scale         float64
	CellAspect    float64
	AutoFractions bool
	XFrac, YFrac  float64
	WSpace        float64
	HSpace        float64
	Stretch       float64

	// Rendering options.
	Style       string
	Config      *styles.Config
	Formats     []string
	PanelLabels bool
	PageOutline bool
	DPI         float64

	// CacheTTL bounds how long rendered artifacts stay cached.
	// Zero means DefaultCacheTTL.
	CacheTTL time.Duration
}

// ValidateAndSetDefaults normalizes opts in place and validates the parts
// the pipeline resolves itself (formats, style, unit). Geometry validation
// happens in the figure package during execution.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Page == nil && o.Preset == "" {
		o.Preset = DefaultPreset
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if _, err := styles.ByName(o.Style); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	// Normalize into a fresh slice; the caller's slice stays untouched.
	formats := make([]string, len(o.Formats))
	for i, f := range o.Formats {
		formats[i] = strings.ToLower(strings.TrimSpace(f))
		if !slices.Contains(Formats, formats[i]) {
			return pfgerrors.New(pfgerrors.ErrCodeInvalidFormat,
				"unknown format %q (want one of %s)", f, strings.Join(Formats, ", "))
		}
	}
	o.Formats = formats
	if o.Unit != "" {
		if _, err := unit.Parse(o.Unit); err != nil {
			return err
		}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	return nil
}

// resolvePage returns the target page in the requested unit.
func (o *Options) resolvePage() (page.Page, error) {
	var p page.Page
	if o.Page != nil {
		p = *o.Page
	} else {
		preset, err := page.Preset(o.Preset)
		if err != nil {
			return page.Page{}, err
		}
		p = preset
	}
	if o.Unit != "" {
		u, err := unit.Parse(o.Unit)
		if err != nil {
			return page.Page{}, err
		}
		p = p.In(u)
	}
	return p, nil
}

// figureOptions translates the sizing fields into figure options.
func (o *Options) figureOptions() []figure.Option {
	opts := []figure.Option{figure.WithScale(o.Scale)}
	if o.CellAspect > 0 {
		opts = append(opts, figure.WithCellAspect(o.CellAspect))
	}
	if o.AutoFractions {
		opts = append(opts, figure.WithAutoFractions())
	}
	if o.XFrac > 0 || o.YFrac > 0 {
		x, y := o.XFrac, o.YFrac
		if x == 0 {
			x = 1
		}
		if y == 0 {
			y = 1
		}
		opts = append(opts, figure.WithFractions(x, y))
	}
	if o.WSpace > 0 || o.HSpace > 0 {
		opts = append(opts, figure.WithSpacing(o.WSpace, o.HSpace))
	}
	if o.Stretch > 0 {
		opts = append(opts, figure.WithStretch(o.Stretch))
	}
	return opts
}

// styleConfig returns the effective style configuration.
func (o *Options) styleConfig() styles.Config {
	if o.Config != nil {
		return *o.Config
	}
	return styles.Default()
}

// Stats records per-stage timings.
type Stats struct {
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo records which render artifacts came from cache.
type CacheInfo struct {
	RenderHits map[string]bool
}

// Result is the output of a pipeline run.
type Result struct {
	Size      page.Size         // computed figure dimensions
	Layout    *figure.Layout    // positioned panel grid
	Artifacts map[string][]byte // rendered output per format
	Stats     Stats
	CacheInfo CacheInfo
}
