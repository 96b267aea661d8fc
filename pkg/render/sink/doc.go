// Package sink provides output format renderers for figure scaffolds.
//
// # Overview
//
// A "sink" transforms a computed [figure.Layout] into a final output format.
// This package provides renderers for:
//
//   - SVG: vector scaffold carrying its physical size, for 1:1 embedding
//   - PDF: print-ready output, page size equal to the figure size
//   - PNG: raster output at a configurable DPI
//   - JSON: layout data export for external tools
//
// # SVG Output
//
// [RenderSVG] produces an SVG whose width/height attributes are expressed
// in the layout's physical unit:
//
//	svg := sink.RenderSVG(l,
//	    sink.WithStyle(styles.Classic{}),
//	    sink.WithPanelLabels(),
//	)
//
// Options: [WithStyle], [WithConfig], [WithPanelLabels], [WithPageOutline].
//
// # PDF and PNG Output
//
// [RenderPDF] writes the scaffold natively in the layout's unit, so the
// resulting document prints at exactly the computed size. [RenderPNG]
// rasterizes at a DPI option (default 300); raster panel labels need a
// resolvable system font and are skipped when none is found.
//
// # JSON Output
//
// [RenderJSON] exports the complete layout, enabling round-trip rendering
// via [ReadJSON] and integration with external drawing code.
//
// [figure.Layout]: github.com/figtools/pubfig/pkg/figure.Layout
package sink
