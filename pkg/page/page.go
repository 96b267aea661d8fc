// Package page models the physical page a figure will be embedded in.
//
// A [Page] carries its outer dimensions, margins, and the unit everything is
// expressed in. The content area that remains after subtracting margins is
// what a figure may occupy; [Page.Body] computes it and [Page.Validate]
// guarantees it is positive.
//
// If you are unfamiliar with these terms, they match the Page Setup section
// of any word processor: page size, plus top/bottom/left/right margins.
package page

import (
	pfgerrors "github.com/figtools/pubfig/pkg/errors"
	"github.com/figtools/pubfig/pkg/unit"
)

// Margin holds the four page margins in the page's unit.
type Margin struct {
	Top, Bottom, Left, Right float64
}

// Uniform returns a margin with the same value on all four sides.
func Uniform(v float64) Margin {
	return Margin{Top: v, Bottom: v, Left: v, Right: v}
}

// Horizontal returns the combined left and right margin.
func (m Margin) Horizontal() float64 { return m.Left + m.Right }

// Vertical returns the combined top and bottom margin.
func (m Margin) Vertical() float64 { return m.Top + m.Bottom }

// Page describes a physical page or slide.
type Page struct {
	Width  float64   // outer width in Unit
	Height float64   // outer height in Unit
	Margin Margin    // margins in Unit
	Unit   unit.Unit // unit for all dimensions
}

// Size is a width/height pair in a specific unit.
type Size struct {
	Width  float64
	Height float64
	Unit   unit.Unit
}

// Validate checks that the page dimensions are positive, the margins are not
// negative, and a positive content area remains after subtracting margins.
func (p Page) Validate() error {
	if err := pfgerrors.ValidatePositive("page width", p.Width); err != nil {
		return err
	}
	if err := pfgerrors.ValidatePositive("page height", p.Height); err != nil {
		return err
	}
	for _, mv := range []struct {
		name  string
		value float64
	}{
		{"top margin", p.Margin.Top},
		{"bottom margin", p.Margin.Bottom},
		{"left margin", p.Margin.Left},
		{"right margin", p.Margin.Right},
	} {
		if err := pfgerrors.ValidateNonNegative(mv.name, mv.value); err != nil {
			return err
		}
	}
	if p.Margin.Horizontal() >= p.Width {
		return pfgerrors.New(pfgerrors.ErrCodeInvalidDimension,
			"left and right margins (%g) leave no content width on a %g wide page",
			p.Margin.Horizontal(), p.Width)
	}
	if p.Margin.Vertical() >= p.Height {
		return pfgerrors.New(pfgerrors.ErrCodeInvalidDimension,
			"top and bottom margins (%g) leave no content height on a %g tall page",
			p.Margin.Vertical(), p.Height)
	}
	if !p.Unit.Valid() {
		return pfgerrors.New(pfgerrors.ErrCodeInvalidUnit, "unknown unit %q", string(p.Unit))
	}
	return nil
}

// Body returns the content area remaining after subtracting margins.
// Call Validate first; Body does not re-check the invariants.
func (p Page) Body() Size {
	return Size{
		Width:  p.Width - p.Margin.Horizontal(),
		Height: p.Height - p.Margin.Vertical(),
		Unit:   p.Unit,
	}
}

// In returns the page converted to another unit.
func (p Page) In(u unit.Unit) Page {
	if u == p.Unit {
		return p
	}
	return Page{
		Width:  unit.Convert(p.Width, p.Unit, u),
		Height: unit.Convert(p.Height, p.Unit, u),
		Margin: Margin{
			Top:    unit.Convert(p.Margin.Top, p.Unit, u),
			Bottom: unit.Convert(p.Margin.Bottom, p.Unit, u),
			Left:   unit.Convert(p.Margin.Left, p.Unit, u),
			Right:  unit.Convert(p.Margin.Right, p.Unit, u),
		},
		Unit: u,
	}
}

// Landscape returns the page rotated so width >= height. Margins keep their
// roles (top stays top).
func (p Page) Landscape() Page {
	if p.Width >= p.Height {
		return p
	}
	p.Width, p.Height = p.Height, p.Width
	return p
}

// Portrait returns the page rotated so height >= width.
func (p Page) Portrait() Page {
	if p.Height >= p.Width {
		return p
	}
	p.Width, p.Height = p.Height, p.Width
	return p
}

// IsLandscape reports whether the page is wider than tall.
func (p Page) IsLandscape() bool { return p.Width > p.Height }

// AspectRatio returns width/height of the page.
func (p Page) AspectRatio() float64 {
	if p.Height == 0 {
		return 0
	}
	return p.Width / p.Height
}
