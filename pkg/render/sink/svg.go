package sink

import (
	"bytes"
	"fmt"

	"github.com/figtools/pubfig/pkg/figure"
	"github.com/figtools/pubfig/pkg/styles"
	"github.com/figtools/pubfig/pkg/unit"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	cfg         styles.Config
	panelLabels bool
	pageOutline bool
}

// WithStyle sets the visual style (default styles.Classic).
func WithStyle(s styles.Style) SVGOption {
	return func(r *svgRenderer) { r.style = s }
}

// WithConfig sets the style configuration (default styles.Default()).
func WithConfig(cfg styles.Config) SVGOption {
	return func(r *svgRenderer) { r.cfg = cfg }
}

// WithTicks overrides the number of major ticks drawn per axis. Zero
// disables tick marks.
func WithTicks(n int) SVGOption {
	return func(r *svgRenderer) { r.cfg.TickCount = n }
}

// WithPanelLabels draws "(a)", "(b)", ... corner labels in reading order.
func WithPanelLabels() SVGOption {
	return func(r *svgRenderer) { r.panelLabels = true }
}

// WithPageOutline expands the canvas to the full page and draws the page
// edge and margin box around the figure, for previewing the fit.
func WithPageOutline() SVGOption {
	return func(r *svgRenderer) { r.pageOutline = true }
}

// RenderSVG renders the figure scaffold as SVG. The document carries its
// physical size in the layout's unit, so placing it in a page at native
// size reproduces the computed dimensions exactly.
func RenderSVG(l *figure.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Classic{}, cfg: styles.Default()}
	for _, opt := range opts {
		opt(&r)
	}

	u := l.Figure.Unit
	pt := unit.Convert(1, unit.Point, u)

	// With the page outline the canvas is the page; otherwise it is the
	// figure and the figure's own origin is the canvas origin.
	canvasW, canvasH := l.Figure.Width, l.Figure.Height
	offX, offY := 0.0, 0.0
	if r.pageOutline {
		canvasW, canvasH = l.Page.Width, l.Page.Height
		offX, offY = l.Page.Margin.Left, l.Page.Margin.Top
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.3f%s" height="%.3f%s" viewBox="0 0 %.3f %.3f">`+"\n",
		canvasW, u, canvasH, u, canvasW, canvasH)

	buf.WriteString("  <defs>\n")
	r.style.RenderDefs(&buf, r.cfg)
	buf.WriteString("  </defs>\n")

	if r.pageOutline {
		renderPageOutline(&buf, l, pt)
	}

	for _, c := range l.Cells {
		f := styles.Frame{
			X:     offX + c.Left,
			Y:     offY + c.Top,
			W:     c.Width,
			H:     c.Height,
			Pt:    pt,
			Index: c.Row*l.Grid.Cols + c.Col,
		}
		if r.panelLabels {
			f.Label = c.Label(l.Grid.Cols)
		}
		r.style.RenderFrame(&buf, r.cfg, f)
		r.style.RenderTicks(&buf, r.cfg, f)
		r.style.RenderLabel(&buf, r.cfg, f)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderPageOutline draws the page edge and a dashed margin box.
func renderPageOutline(buf *bytes.Buffer, l *figure.Layout, pt float64) {
	body := l.Page.Body()
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.3f" height="%.3f" fill="#fff" stroke="#888" stroke-width="%.3f"/>`+"\n",
		l.Page.Width, l.Page.Height, 0.5*pt)
	fmt.Fprintf(buf, `  <rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="none" stroke="#bbb" stroke-width="%.3f" stroke-dasharray="%.3f %.3f"/>`+"\n",
		l.Page.Margin.Left, l.Page.Margin.Top, body.Width, body.Height,
		0.5*pt, 3*pt, 2*pt)
}
