package styles

import (
	"bytes"
	"fmt"
)

// Minimal renders open sans-serif axes: only the bottom and left spines are
// drawn with outward ticks, the common look of slide decks and posters.
type Minimal struct{}

// Name implements Style.
func (Minimal) Name() string { return "minimal" }

// RenderDefs implements Style.
func (Minimal) RenderDefs(buf *bytes.Buffer, cfg Config) {
	fmt.Fprintf(buf, "  <style>\n")
	fmt.Fprintf(buf, "    .spine { fill: none; stroke: #333; stroke-linecap: round; }\n")
	fmt.Fprintf(buf, "    .tick { stroke: #333; }\n")
	fmt.Fprintf(buf, "    .panel-label { font-family: %s; fill: #333; }\n", sansFamilyCSS(cfg))
	fmt.Fprintf(buf, "  </style>\n")
}

// RenderFrame implements Style.
// Only the bottom and left spines are drawn.
func (Minimal) RenderFrame(buf *bytes.Buffer, cfg Config, f Frame) {
	w := cfg.LineWidth * f.Pt
	fmt.Fprintf(buf, `  <line class="spine" x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke-width="%.3f"/>`+"\n",
		f.X, f.Y+f.H, f.X+f.W, f.Y+f.H, w)
	fmt.Fprintf(buf, `  <line class="spine" x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke-width="%.3f"/>`+"\n",
		f.X, f.Y, f.X, f.Y+f.H, w)
}

// RenderTicks implements Style.
// Minimal ticks point outward, away from the panel.
func (Minimal) RenderTicks(buf *bytes.Buffer, cfg Config, f Frame) {
	if cfg.TickCount < 2 {
		return
	}
	tickLen := cfg.TickLen * f.Pt
	w := cfg.LineWidth * f.Pt
	for i := 0; i < cfg.TickCount; i++ {
		t := float64(i) / float64(cfg.TickCount-1)
		x := f.X + t*f.W
		y := f.Y + f.H - t*f.H
		fmt.Fprintf(buf, `  <line class="tick" x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke-width="%.3f"/>`+"\n",
			x, f.Y+f.H, x, f.Y+f.H+tickLen, w)
		fmt.Fprintf(buf, `  <line class="tick" x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke-width="%.3f"/>`+"\n",
			f.X, y, f.X-tickLen, y, w)
	}
}

// RenderLabel implements Style.
// The label sits inside the panel's top-left corner so it never clips at
// the canvas edge.
func (Minimal) RenderLabel(buf *bytes.Buffer, cfg Config, f Frame) {
	if f.Label == "" {
		return
	}
	size := cfg.Fonts.Medium * f.Pt
	fmt.Fprintf(buf, `  <text class="panel-label" x="%.3f" y="%.3f" font-size="%.3f">%s</text>`+"\n",
		f.X+0.02*f.W, f.Y+0.02*f.H+size, size, EscapeXML(f.Label))
}

// sansFamilyCSS renders the sans-serif fallback stack for Minimal.
func sansFamilyCSS(cfg Config) string {
	sans := cfg
	sans.Fonts.Family = DefaultSansFamily
	return fontFamilyCSS(sans)
}

var _ Style = Minimal{}
