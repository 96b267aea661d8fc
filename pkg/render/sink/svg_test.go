package sink

import (
	"strings"
	"testing"

	"github.com/figtools/pubfig/pkg/figure"
	"github.com/figtools/pubfig/pkg/page"
	"github.com/figtools/pubfig/pkg/styles"
)

func testLayout(t *testing.T) *figure.Layout {
	t.Helper()
	p, err := page.Preset("a4")
	if err != nil {
		t.Fatalf("Preset(a4) error: %v", err)
	}
	l, err := figure.Compute(p, figure.Grid{Rows: 2, Cols: 2})
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	return l
}

func TestRenderSVG(t *testing.T) {
	l := testLayout(t)
	svg := string(RenderSVG(l))

	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Error("output should start with an svg element")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("output should be a closed svg document")
	}

	// The document carries the physical size in the layout's unit.
	if !strings.Contains(svg, `width="160.000mm"`) {
		t.Error("svg width should be 160.000mm")
	}
	if !strings.Contains(svg, `height="247.000mm"`) {
		t.Error("svg height should be 247.000mm")
	}
	if !strings.Contains(svg, `viewBox="0 0 160.000 247.000"`) {
		t.Error("viewBox should match the figure dimensions")
	}

	// One frame per panel, classic style by default.
	if got := strings.Count(svg, `<rect class="frame"`); got != 4 {
		t.Errorf("frame count = %d, want 4", got)
	}

	// No labels unless requested.
	if strings.Contains(svg, "panel-label\" x=") {
		t.Error("labels should be off by default")
	}
}

func TestRenderSVGPanelLabels(t *testing.T) {
	l := testLayout(t)
	svg := string(RenderSVG(l, WithPanelLabels()))

	for _, label := range []string{"(a)", "(b)", "(c)", "(d)"} {
		if !strings.Contains(svg, ">"+label+"<") {
			t.Errorf("svg should contain label %s", label)
		}
	}
}

func TestRenderSVGTicks(t *testing.T) {
	l := testLayout(t)

	// Default classic ticks: 5 per axis, two axes, four panels.
	svg := string(RenderSVG(l))
	if got := strings.Count(svg, `<line class="tick"`); got != 40 {
		t.Errorf("tick count = %d, want 40", got)
	}

	svg = string(RenderSVG(l, WithTicks(0)))
	if strings.Contains(svg, `class="tick"`) {
		t.Error("WithTicks(0) should disable tick marks")
	}
}

func TestRenderSVGMinimalStyle(t *testing.T) {
	l := testLayout(t)
	svg := string(RenderSVG(l, WithStyle(styles.Minimal{})))

	if strings.Contains(svg, `<rect class="frame"`) {
		t.Error("minimal style should not draw boxed frames")
	}
	if !strings.Contains(svg, `class="spine"`) {
		t.Error("minimal style should draw spines")
	}
}

func TestRenderSVGPageOutline(t *testing.T) {
	l := testLayout(t)
	svg := string(RenderSVG(l, WithPageOutline()))

	// The canvas expands to the page, and the panels shift by the margins.
	if !strings.Contains(svg, `width="210.000mm"`) || !strings.Contains(svg, `height="297.000mm"`) {
		t.Error("outline canvas should be the full page")
	}
	if !strings.Contains(svg, "stroke-dasharray") {
		t.Error("outline should include the dashed margin box")
	}
	if !strings.Contains(svg, `x="25.000"`) {
		t.Error("first panel should be offset by the left margin")
	}
}

func TestRenderSVGCustomConfig(t *testing.T) {
	l := testLayout(t)
	cfg := styles.Default()
	cfg.Fonts.Family = []string{"Georgia", "serif"}

	svg := string(RenderSVG(l, WithConfig(cfg), WithPanelLabels()))
	if !strings.Contains(svg, "Georgia") {
		t.Error("custom font family should appear in the style defs")
	}
}
