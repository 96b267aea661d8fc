package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/figtools/pubfig/pkg/cache"
	pfgerrors "github.com/figtools/pubfig/pkg/errors"
	"github.com/figtools/pubfig/pkg/figure"
	"github.com/figtools/pubfig/pkg/observability"
	"github.com/figtools/pubfig/pkg/render/sink"
	"github.com/figtools/pubfig/pkg/styles"
)

// Runner encapsulates pipeline execution with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, log.Default() is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete size → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
		CacheInfo: CacheInfo{RenderHits: make(map[string]bool)},
	}

	// Stage 1+2: size and layout. Compute does both; the size hook brackets
	// the arithmetic so backends can track rejected parameter combinations.
	layoutStart := time.Now()
	observability.Pipeline().OnSizeStart(ctx, opts.Preset, opts.Grid.Rows, opts.Grid.Cols)
	layout, err := r.ComputeLayout(ctx, opts)
	if err != nil {
		observability.Pipeline().OnSizeComplete(ctx, opts.Preset, 0, 0, err)
		return nil, fmt.Errorf("layout: %w", err)
	}
	observability.Pipeline().OnSizeComplete(ctx, opts.Preset, layout.Figure.Width, layout.Figure.Height, nil)
	result.Layout = layout
	result.Size = layout.Figure
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Info("computed figure size",
		"width", fmt.Sprintf("%.2f%s", layout.Figure.Width, layout.Figure.Unit),
		"height", fmt.Sprintf("%.2f%s", layout.Figure.Height, layout.Figure.Unit),
		"panels", layout.Grid.Panels())

	// Stage 3: render each requested format.
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	for _, format := range opts.Formats {
		data, hit, err := r.RenderWithCacheInfo(ctx, layout, format, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data
		result.CacheInfo.RenderHits[format] = hit
	}
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, nil)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayout runs the sizing stages only, without rendering.
func (r *Runner) ComputeLayout(ctx context.Context, opts Options) (*figure.Layout, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	p, err := opts.resolvePage()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.Grid.Rows, opts.Grid.Cols)
	layout, err := figure.Compute(p, opts.Grid, opts.figureOptions()...)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Grid.Rows, opts.Grid.Cols, time.Since(start), err)
	return layout, err
}

// RenderWithCacheInfo renders one format, consulting the artifact cache
// first. The second return reports whether the artifact was a cache hit.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout *figure.Layout, format string, opts Options) ([]byte, bool, error) {
	key := cache.Key("artifact", format, layout, opts.Style, opts.PanelLabels, opts.PageOutline, opts.DPI, opts.styleConfig())

	if data, ok, err := r.Cache.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, "artifact")
		r.Logger.Debug("artifact cache hit", "format", format)
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	data, err := r.Render(layout, format, opts)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
		// A failed cache write only costs the next render.
		r.Logger.Debug("artifact cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}

// Render renders one format without caching.
func (r *Runner) Render(layout *figure.Layout, format string, opts Options) ([]byte, error) {
	style, err := styles.ByName(opts.Style)
	if err != nil {
		return nil, err
	}
	cfg := opts.styleConfig()

	switch format {
	case "svg":
		svgOpts := []sink.SVGOption{sink.WithStyle(style), sink.WithConfig(cfg)}
		if opts.PanelLabels {
			svgOpts = append(svgOpts, sink.WithPanelLabels())
		}
		if opts.PageOutline {
			svgOpts = append(svgOpts, sink.WithPageOutline())
		}
		return sink.RenderSVG(layout, svgOpts...), nil
	case "pdf":
		pdfOpts := []sink.PDFOption{sink.WithPDFStyle(style), sink.WithPDFConfig(cfg)}
		if opts.PanelLabels {
			pdfOpts = append(pdfOpts, sink.WithPDFPanelLabels())
		}
		return sink.RenderPDF(layout, pdfOpts...)
	case "png":
		pngOpts := []sink.PNGOption{sink.WithPNGStyle(style), sink.WithPNGConfig(cfg), sink.WithDPI(opts.DPI)}
		if opts.PanelLabels {
			pngOpts = append(pngOpts, sink.WithPNGPanelLabels())
		}
		return sink.RenderPNG(layout, pngOpts...)
	case "json":
		return sink.RenderJSON(layout, sink.WithJSONStyle(opts.Style))
	}
	return nil, pfgerrors.New(pfgerrors.ErrCodeInvalidFormat, "unknown format %q", format)
}
