package styles

import (
	"bytes"
	"fmt"
	"strings"
)

// Classic renders boxed serif axes: a full rectangular frame around each
// panel with inward-pointing tick marks, the common look of print journals.
type Classic struct{}

// Name implements Style.
func (Classic) Name() string { return "classic" }

// RenderDefs implements Style.
func (Classic) RenderDefs(buf *bytes.Buffer, cfg Config) {
	fmt.Fprintf(buf, "  <style>\n")
	fmt.Fprintf(buf, "    .frame { fill: none; stroke: #000; }\n")
	fmt.Fprintf(buf, "    .tick { stroke: #000; }\n")
	fmt.Fprintf(buf, "    .panel-label { font-family: %s; }\n", fontFamilyCSS(cfg))
	fmt.Fprintf(buf, "  </style>\n")
}

// RenderFrame implements Style.
func (Classic) RenderFrame(buf *bytes.Buffer, cfg Config, f Frame) {
	fmt.Fprintf(buf, `  <rect class="frame" x="%.3f" y="%.3f" width="%.3f" height="%.3f" stroke-width="%.3f"/>`+"\n",
		f.X, f.Y, f.W, f.H, cfg.LineWidth*f.Pt)
}

// RenderTicks implements Style.
// Classic ticks point inward from the bottom and left frame edges.
func (Classic) RenderTicks(buf *bytes.Buffer, cfg Config, f Frame) {
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
			x, f.Y+f.H, x, f.Y+f.H-tickLen, w)
		fmt.Fprintf(buf, `  <line class="tick" x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke-width="%.3f"/>`+"\n",
			f.X, y, f.X+tickLen, y, w)
	}
}

// RenderLabel implements Style.
// The label sits inside the panel's top-left corner, offset by 2% of the
// panel extent on each axis.
func (Classic) RenderLabel(buf *bytes.Buffer, cfg Config, f Frame) {
	if f.Label == "" {
		return
	}
	size := cfg.Fonts.Medium * f.Pt
	x := f.X + 0.02*f.W
	y := f.Y + 0.02*f.H + size
	fmt.Fprintf(buf, `  <text class="panel-label" x="%.3f" y="%.3f" font-size="%.3f">%s</text>`+"\n",
		x, y, size, EscapeXML(f.Label))
}

// fontFamilyCSS renders a font fallback stack as a CSS font-family value.
func fontFamilyCSS(cfg Config) string {
	families := cfg.Fonts.Family
	if len(families) == 0 {
		return "serif"
	}
	quoted := make([]string, len(families))
	for i, fam := range families {
		if strings.ContainsAny(fam, " -") {
			quoted[i] = "'" + fam + "'"
		} else {
			quoted[i] = fam
		}
	}
	return strings.Join(quoted, ", ")
}

var _ Style = Classic{}
