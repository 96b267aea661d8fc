package sink

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	pfgerrors "github.com/figtools/pubfig/pkg/errors"
	"github.com/figtools/pubfig/pkg/figure"
	"github.com/figtools/pubfig/pkg/styles"
	"github.com/figtools/pubfig/pkg/unit"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	style       styles.Style
	cfg         styles.Config
	panelLabels bool
}

// WithPDFStyle sets the visual style (default styles.Classic).
func WithPDFStyle(s styles.Style) PDFOption {
	return func(r *pdfRenderer) { r.style = s }
}

// WithPDFConfig sets the style configuration (default styles.Default()).
func WithPDFConfig(cfg styles.Config) PDFOption {
	return func(r *pdfRenderer) { r.cfg = cfg }
}

// WithPDFPanelLabels draws "(a)", "(b)", ... corner labels.
func WithPDFPanelLabels() PDFOption {
	return func(r *pdfRenderer) { r.panelLabels = true }
}

// coreFont maps a style to one of the PDF core fonts, which need no font
// files: Times for the serif classic style, Helvetica otherwise.
func coreFont(s styles.Style) string {
	if s.Name() == "classic" {
		return "Times"
	}
	return "Helvetica"
}

// RenderPDF renders the figure scaffold as a single-page PDF whose page
// size is exactly the computed figure size, in the layout's unit.
func RenderPDF(l *figure.Layout, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{style: styles.Classic{}, cfg: styles.Default()}
	for _, opt := range opts {
		opt(&r)
	}

	u := l.Figure.Unit
	if !u.Valid() {
		return nil, pfgerrors.New(pfgerrors.ErrCodeInvalidUnit, "layout has unknown unit %q", string(u))
	}
	pt := unit.Convert(1, unit.Point, u)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        u.String(),
		Size:           gofpdf.SizeType{Wd: l.Figure.Width, Ht: l.Figure.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont(coreFont(r.style), "", r.cfg.Fonts.Medium)
	pdf.SetLineWidth(r.cfg.LineWidth * pt)
	pdf.SetDrawColor(0, 0, 0)

	boxed := r.style.Name() == "classic"
	for _, c := range l.Cells {
		drawPDFCell(pdf, r.cfg, c, pt, boxed)
		if r.panelLabels {
			drawPDFLabel(pdf, r.cfg, c, l.Grid.Cols, pt)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, pfgerrors.Wrap(pfgerrors.ErrCodeInternal, err, "encode pdf")
	}
	return buf.Bytes(), nil
}

// drawPDFCell draws one panel's axes: a full frame with inward ticks for
// the boxed classic style, bottom/left spines with outward ticks otherwise.
func drawPDFCell(pdf *gofpdf.Fpdf, cfg styles.Config, c figure.Cell, pt float64, boxed bool) {
	if boxed {
		pdf.Rect(c.Left, c.Top, c.Width, c.Height, "D")
	} else {
		pdf.Line(c.Left, c.Bottom(), c.Right(), c.Bottom())
		pdf.Line(c.Left, c.Top, c.Left, c.Bottom())
	}

	if cfg.TickCount < 2 {
		return
	}
	tickLen := cfg.TickLen * pt
	if boxed {
		tickLen = -tickLen // inward
	}
	for i := 0; i < cfg.TickCount; i++ {
		t := float64(i) / float64(cfg.TickCount-1)
		x := c.Left + t*c.Width
		y := c.Bottom() - t*c.Height
		pdf.Line(x, c.Bottom(), x, c.Bottom()+tickLen)
		pdf.Line(c.Left, y, c.Left-tickLen, y)
	}
}

// drawPDFLabel places the panel label inside the top-left corner, matching
// the SVG styles.
func drawPDFLabel(pdf *gofpdf.Fpdf, cfg styles.Config, c figure.Cell, cols int, pt float64) {
	size := cfg.Fonts.Medium * pt
	pdf.Text(c.Left+0.02*c.Width, c.Top+0.02*c.Height+size, c.Label(cols))
}
