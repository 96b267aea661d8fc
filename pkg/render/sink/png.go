package sink

import (
	"bytes"
	"image/png"
	"math"

	"github.com/fogleman/gg"

	pfgerrors "github.com/figtools/pubfig/pkg/errors"
	"github.com/figtools/pubfig/pkg/figure"
	"github.com/figtools/pubfig/pkg/styles"
	"github.com/figtools/pubfig/pkg/unit"
)

// DefaultDPI is the minimum resolution usually required for print
// submissions. Use 600 for final artwork.
const DefaultDPI = 300

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	style       styles.Style
	cfg         styles.Config
	dpi         float64
	panelLabels bool
}

// WithPNGStyle sets the visual style (default styles.Classic).
func WithPNGStyle(s styles.Style) PNGOption {
	return func(r *pngRenderer) { r.style = s }
}

// WithPNGConfig sets the style configuration (default styles.Default()).
func WithPNGConfig(cfg styles.Config) PNGOption {
	return func(r *pngRenderer) { r.cfg = cfg }
}

// WithDPI sets the raster resolution (default 300).
func WithDPI(dpi float64) PNGOption {
	return func(r *pngRenderer) { r.dpi = dpi }
}

// WithPNGPanelLabels draws "(a)", "(b)", ... corner labels. Label text
// needs a resolvable font file; when none is found the labels are skipped.
func WithPNGPanelLabels() PNGOption {
	return func(r *pngRenderer) { r.panelLabels = true }
}

// RenderPNG rasterizes the figure scaffold at the configured DPI. The pixel
// dimensions are the physical figure size times DPI, so the image embeds at
// the intended physical size when the document honors its resolution.
func RenderPNG(l *figure.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{style: styles.Classic{}, cfg: styles.Default(), dpi: DefaultDPI}
	for _, opt := range opts {
		opt(&r)
	}
	if r.dpi <= 0 {
		return nil, pfgerrors.New(pfgerrors.ErrCodeInvalidDimension, "dpi must be positive, got %g", r.dpi)
	}

	u := l.Figure.Unit
	px := r.dpi * unit.Convert(1, u, unit.Inch) // pixels per layout unit
	ptPx := px * unit.Convert(1, unit.Point, u) // pixels per point

	w := int(math.Round(l.Figure.Width * px))
	h := int(math.Round(l.Figure.Height * px))
	if w < 1 || h < 1 {
		return nil, pfgerrors.New(pfgerrors.ErrCodeInvalidDimension,
			"figure rasterizes to %dx%d pixels at %g dpi", w, h, r.dpi)
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(r.cfg.LineWidth * ptPx)

	labels := r.panelLabels
	if labels {
		if path, err := styles.ResolveFontPath(r.cfg); err == nil {
			if err := dc.LoadFontFace(path, r.cfg.Fonts.Medium*ptPx); err != nil {
				labels = false
			}
		} else {
			labels = false
		}
	}

	boxed := r.style.Name() == "classic"
	for _, c := range l.Cells {
		drawPNGCell(dc, r.cfg, c, px, ptPx, boxed)
		if labels {
			size := r.cfg.Fonts.Medium * ptPx
			dc.DrawString(c.Label(l.Grid.Cols), (c.Left+0.02*c.Width)*px, (c.Top+0.02*c.Height)*px+size)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, pfgerrors.Wrap(pfgerrors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// drawPNGCell strokes one panel's axes and ticks in pixel space.
func drawPNGCell(dc *gg.Context, cfg styles.Config, c figure.Cell, px, ptPx float64, boxed bool) {
	if boxed {
		dc.DrawRectangle(c.Left*px, c.Top*px, c.Width*px, c.Height*px)
	} else {
		dc.MoveTo(c.Left*px, c.Bottom()*px)
		dc.LineTo(c.Right()*px, c.Bottom()*px)
		dc.MoveTo(c.Left*px, c.Top*px)
		dc.LineTo(c.Left*px, c.Bottom()*px)
	}
	dc.Stroke()

	if cfg.TickCount < 2 {
		return
	}
	tickLen := cfg.TickLen * ptPx
	if boxed {
		tickLen = -tickLen // inward
	}
	for i := 0; i < cfg.TickCount; i++ {
		t := float64(i) / float64(cfg.TickCount-1)
		x := (c.Left + t*c.Width) * px
		y := (c.Bottom() - t*c.Height) * px
		dc.MoveTo(x, c.Bottom()*px)
		dc.LineTo(x, c.Bottom()*px+tickLen)
		dc.MoveTo(c.Left*px, y)
		dc.LineTo(c.Left*px-tickLen, y)
	}
	dc.Stroke()
}
