// Package pkg provides the core libraries for pubfig figure sizing.
//
// # Overview
//
// pubfig computes physical figure dimensions so that a multi-panel chart
// embedded in a printed page renders at its intended scale instead of being
// stretched by the document layout engine. The pkg directory is organized
// into five main areas:
//
//  1. [unit], [page], [figure] - Domain logic (units, page geometry, sizing)
//  2. [styles] - Visual configuration and SVG styles
//  3. [render/sink] - Output formats (SVG, PDF, PNG, JSON)
//  4. [pipeline] - Orchestration (size → layout → render) with caching
//  5. [cache], [observability], [io] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through pubfig:
//
//	Page preset or custom page + panel grid
//	         ↓
//	    [figure] package (size computation + cell arrangement)
//	         ↓
//	    [render/sink] package (scaffold rendering)
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
// Compute a figure size and render its scaffold:
//
//	import (
//	    "github.com/figtools/pubfig/pkg/figure"
//	    "github.com/figtools/pubfig/pkg/page"
//	    "github.com/figtools/pubfig/pkg/render/sink"
//	)
//
//	// 1. Pick the target page
//	p, _ := page.Preset("a4")
//
//	// 2. Compute the layout
//	l, err := figure.Compute(p, figure.Grid{Rows: 3, Cols: 2})
//	if err != nil {
//	    return err
//	}
//
//	// 3. Render the scaffold
//	svg := sink.RenderSVG(l, sink.WithPanelLabels())
//
// [unit]: github.com/figtools/pubfig/pkg/unit
// [page]: github.com/figtools/pubfig/pkg/page
// [figure]: github.com/figtools/pubfig/pkg/figure
// [styles]: github.com/figtools/pubfig/pkg/styles
// [render/sink]: github.com/figtools/pubfig/pkg/render/sink
// [pipeline]: github.com/figtools/pubfig/pkg/pipeline
// [cache]: github.com/figtools/pubfig/pkg/cache
// [observability]: github.com/figtools/pubfig/pkg/observability
// [io]: github.com/figtools/pubfig/pkg/io
package pkg
