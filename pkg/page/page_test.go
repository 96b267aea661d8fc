package page

import (
	"math"
	"testing"

	pfgerrors "github.com/figtools/pubfig/pkg/errors"
	"github.com/figtools/pubfig/pkg/unit"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		page     Page
		wantCode pfgerrors.Code
	}{
		{
			name: "valid page",
			page: Page{Width: 210, Height: 297, Margin: Uniform(25), Unit: unit.Millimeter},
		},
		{
			name:     "zero width",
			page:     Page{Width: 0, Height: 297, Unit: unit.Millimeter},
			wantCode: pfgerrors.ErrCodeInvalidDimension,
		},
		{
			name:     "negative height",
			page:     Page{Width: 210, Height: -1, Unit: unit.Millimeter},
			wantCode: pfgerrors.ErrCodeInvalidDimension,
		},
		{
			name:     "negative margin",
			page:     Page{Width: 210, Height: 297, Margin: Margin{Top: -5}, Unit: unit.Millimeter},
			wantCode: pfgerrors.ErrCodeInvalidDimension,
		},
		{
			name:     "margins swallow the width",
			page:     Page{Width: 100, Height: 297, Margin: Margin{Left: 50, Right: 50}, Unit: unit.Millimeter},
			wantCode: pfgerrors.ErrCodeInvalidDimension,
		},
		{
			name:     "margins swallow the height",
			page:     Page{Width: 210, Height: 80, Margin: Margin{Top: 40, Bottom: 45}, Unit: unit.Millimeter},
			wantCode: pfgerrors.ErrCodeInvalidDimension,
		},
		{
			name:     "unknown unit",
			page:     Page{Width: 210, Height: 297, Unit: "furlong"},
			wantCode: pfgerrors.ErrCodeInvalidUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.page.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if code := pfgerrors.GetCode(err); code != tt.wantCode {
				t.Errorf("Validate() code = %v, want %v", code, tt.wantCode)
			}
		})
	}
}

func TestBody(t *testing.T) {
	p := Page{
		Width:  210,
		Height: 297,
		Margin: Margin{Top: 20, Bottom: 30, Left: 25, Right: 15},
		Unit:   unit.Millimeter,
	}

	body := p.Body()
	if !almost(body.Width, 170) || !almost(body.Height, 247) {
		t.Errorf("Body() = %g x %g, want 170 x 247", body.Width, body.Height)
	}
	if body.Unit != unit.Millimeter {
		t.Errorf("Body() unit = %q, want mm", body.Unit)
	}
}

func TestIn(t *testing.T) {
	p := Page{Width: 254, Height: 127, Margin: Uniform(25.4), Unit: unit.Millimeter}

	converted := p.In(unit.Inch)
	if !almost(converted.Width, 10) || !almost(converted.Height, 5) {
		t.Errorf("In(in) = %g x %g, want 10 x 5", converted.Width, converted.Height)
	}
	if !almost(converted.Margin.Top, 1) {
		t.Errorf("In(in) top margin = %g, want 1", converted.Margin.Top)
	}
	if converted.Unit != unit.Inch {
		t.Errorf("In(in) unit = %q, want in", converted.Unit)
	}

	// Same-unit conversion is the identity.
	same := p.In(unit.Millimeter)
	if same != p {
		t.Errorf("In(mm) = %+v, want the page unchanged", same)
	}
}

func TestOrientation(t *testing.T) {
	portrait := Page{Width: 210, Height: 297, Unit: unit.Millimeter}

	landscape := portrait.Landscape()
	if !landscape.IsLandscape() {
		t.Error("Landscape() result should be landscape")
	}
	if landscape.Width != 297 || landscape.Height != 210 {
		t.Errorf("Landscape() = %g x %g, want 297 x 210", landscape.Width, landscape.Height)
	}

	back := landscape.Portrait()
	if back != portrait {
		t.Errorf("Portrait() = %+v, want the original page", back)
	}

	// Already-landscape pages pass through unchanged.
	if landscape.Landscape() != landscape {
		t.Error("Landscape() on a landscape page should be a no-op")
	}
}

func TestAspectRatio(t *testing.T) {
	p := Page{Width: 160, Height: 90, Unit: unit.Millimeter}
	if !almost(p.AspectRatio(), 16.0/9.0) {
		t.Errorf("AspectRatio() = %g, want %g", p.AspectRatio(), 16.0/9.0)
	}
	if (Page{}).AspectRatio() != 0 {
		t.Error("AspectRatio() of a zero page should be 0")
	}
}

func TestMarginHelpers(t *testing.T) {
	m := Margin{Top: 1, Bottom: 2, Left: 3, Right: 4}
	if m.Horizontal() != 7 || m.Vertical() != 3 {
		t.Errorf("Horizontal/Vertical = %g/%g, want 7/3", m.Horizontal(), m.Vertical())
	}
	if Uniform(5) != (Margin{Top: 5, Bottom: 5, Left: 5, Right: 5}) {
		t.Error("Uniform(5) should set all four sides")
	}
}
