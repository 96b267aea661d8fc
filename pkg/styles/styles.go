// Package styles defines the visual configuration applied to rendered
// figure scaffolds.
//
// Configuration is an explicit [Config] value passed to the sinks rather
// than process-wide mutable state, so rendering never depends on import
// order and applying the same config twice is trivially idempotent.
//
// The [Style] interface controls how a sink draws frames, cells, and labels;
// [Classic] produces serif, boxed publication axes and [Minimal] produces
// open sans-serif axes.
package styles

import "bytes"

// Font size roles in points. The small size suits tick labels and legends,
// the medium size axis labels and panel titles, the large size figure
// titles.
const (
	DefaultSmallSize  = 8.0
	DefaultMediumSize = 10.0
	DefaultLargeSize  = 12.0
)

// DefaultSerifFamily is the preferred print font, with fallbacks for
// systems that do not ship it.
var DefaultSerifFamily = []string{"Times New Roman", "Nimbus Roman", "Liberation Serif", "serif"}

// DefaultSansFamily is the sans-serif fallback stack.
var DefaultSansFamily = []string{"Helvetica", "Arial", "Liberation Sans", "sans-serif"}

// DefaultPalette is the conventional 10-color categorical cycle most
// plotting tools default to, as hex strings.
var DefaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Fonts holds the text configuration for a figure.
type Fonts struct {
	Family []string // font family with fallbacks, first entry preferred
	Small  float64  // tick and legend size in points
	Medium float64  // axis label and panel title size in points
	Large  float64  // figure title size in points
}

// Config is the complete visual configuration for rendering. The zero
// value is not useful; start from [Default] and adjust.
type Config struct {
	Fonts     Fonts
	Palette   []string // categorical color cycle, hex strings
	LineWidth float64  // axes frame line width in points
	TickCount int      // major ticks per axis drawn by the sinks
	TickLen   float64  // tick mark length in points
}

// Default returns the publication defaults: 8/10/12 pt serif text, the
// standard 10-color cycle, and 5 major ticks per axis.
func Default() Config {
	return Config{
		Fonts: Fonts{
			Family: DefaultSerifFamily,
			Small:  DefaultSmallSize,
			Medium: DefaultMediumSize,
			Large:  DefaultLargeSize,
		},
		Palette:   DefaultPalette,
		LineWidth: 0.8,
		TickCount: 5,
		TickLen:   3.5,
	}
}

// Color returns the i-th palette color, cycling past the end.
func (c Config) Color(i int) string {
	if len(c.Palette) == 0 {
		return "#000000"
	}
	return c.Palette[i%len(c.Palette)]
}

// FontFamily returns the preferred font family name.
func (c Config) FontFamily() string {
	if len(c.Fonts.Family) == 0 {
		return "serif"
	}
	return c.Fonts.Family[0]
}

// Frame contains the geometry a style needs to draw one panel's axes box.
// All coordinates are in the figure's unit, origin top-left.
type Frame struct {
	X, Y, W, H float64
	Pt         float64 // user units per typographic point
	Index      int     // panel index in reading order
	Label      string  // panel label, empty when labels are disabled
}

// Style defines the visual appearance for SVG scaffold rendering.
// Implementations write SVG fragments; the sink provides the document
// envelope and coordinate space.
type Style interface {
	// Name returns the style's CLI-facing identifier.
	Name() string
	// RenderDefs writes SVG <defs> content (shared CSS, markers).
	RenderDefs(buf *bytes.Buffer, cfg Config)
	// RenderFrame writes the axes frame for a single panel.
	RenderFrame(buf *bytes.Buffer, cfg Config, f Frame)
	// RenderTicks writes the major tick marks along the panel edges.
	RenderTicks(buf *bytes.Buffer, cfg Config, f Frame)
	// RenderLabel writes the panel's corner label.
	RenderLabel(buf *bytes.Buffer, cfg Config, f Frame)
}
