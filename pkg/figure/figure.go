// Package figure computes physical figure dimensions for print embedding.
//
// # Overview
//
// Documents embed figures into a content area: the page minus its margins.
// A figure exported at any other size gets rescaled by the document layout
// engine, which distorts line widths and font sizes. This package computes
// the figure size that fills the content area (or a caller-chosen fraction
// of it) exactly, so the figure renders at 1:1 scale.
//
// [Size] returns just the outer dimensions. [Compute] additionally arranges
// a rows x cols grid of equally sized panel cells inside the figure:
//
//	p, _ := page.Preset("a4")
//	l, err := figure.Compute(p, figure.Grid{Rows: 3, Cols: 2})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(l.Figure.Width, l.Figure.Height) // 160 247 (mm)
//
// Options control the scale fraction, per-cell aspect ratio, inter-panel
// spacing, and per-axis size fractions.
package figure

import (
	pfgerrors "github.com/figtools/pubfig/pkg/errors"
	"github.com/figtools/pubfig/pkg/page"
)

// Grid is the subplot arrangement: Rows x Cols equally sized panels.
type Grid struct {
	Rows int
	Cols int
}

// Validate checks that both row and column counts are at least 1.
func (g Grid) Validate() error {
	if g.Rows < 1 {
		return pfgerrors.New(pfgerrors.ErrCodeInvalidGrid, "rows must be >= 1, got %d", g.Rows)
	}
	if g.Cols < 1 {
		return pfgerrors.New(pfgerrors.ErrCodeInvalidGrid, "cols must be >= 1, got %d", g.Cols)
	}
	return nil
}

// Panels returns the total panel count.
func (g Grid) Panels() int { return g.Rows * g.Cols }

// autoFractions is the empirical width/height fraction table indexed by
// [rows-1][cols-1]. Tall single panels waste page height, so small grids get
// reduced fractions; grids beyond the table use the full body.
var autoFractions = [4][4][2]float64{
	{{0.6, 0.30}, {1.0, 1.00}, {1.0, 1.00}, {1.0, 1.00}},
	{{1.0, 0.55}, {1.0, 0.55}, {1.0, 0.55}, {1.0, 0.55}},
	{{1.0, 1.00}, {1.0, 1.00}, {1.0, 1.00}, {1.0, 1.00}},
	{{1.0, 1.00}, {1.0, 1.00}, {1.0, 1.00}, {1.0, 1.00}},
}

// sizer holds the resolved sizing options.
type sizer struct {
	scale      float64 // fraction of the body width to fill
	xfrac      float64 // width fraction of the (scaled) body
	yfrac      float64 // height fraction of the body
	auto       bool    // pick fractions from autoFractions
	cellAspect float64 // height/width ratio per cell (0 = off)
	wspace     float64 // horizontal gap as a fraction of cell width
	hspace     float64 // vertical gap as a fraction of cell height
	stretch    float64 // post-hoc height multiplier
}

// Option configures the size computation.
type Option func(*sizer)

// WithScale sets the fraction of the content width the figure occupies.
// Must be in (0, 1]; the default 1 fills the full content width.
func WithScale(scale float64) Option {
	return func(s *sizer) { s.scale = scale }
}

// WithFractions sets explicit width and height fractions of the content
// area, overriding the defaults. Both must be in (0, 1].
func WithFractions(x, y float64) Option {
	return func(s *sizer) { s.xfrac, s.yfrac = x, y; s.auto = false }
}

// WithAutoFractions picks width/height fractions from a built-in table
// tuned per grid shape, so sparse grids do not produce overly tall panels.
func WithAutoFractions() Option {
	return func(s *sizer) { s.auto = true }
}

// WithCellAspect fixes each cell's height/width ratio. The figure height
// follows from the cell width; if it would exceed the content height the
// whole figure shrinks uniformly to fit.
func WithCellAspect(ratio float64) Option {
	return func(s *sizer) { s.cellAspect = ratio }
}

// WithSquareCells is shorthand for WithCellAspect(1).
func WithSquareCells() Option {
	return WithCellAspect(1)
}

// WithSpacing reserves gaps between panels, expressed as fractions of a
// cell's width (wspace) and height (hspace). Zero means panels touch.
func WithSpacing(wspace, hspace float64) Option {
	return func(s *sizer) { s.wspace, s.hspace = wspace, hspace }
}

// WithStretch multiplies the computed figure height by ratio, clamped to
// the content height. Useful to give dense plots extra breathing room.
func WithStretch(ratio float64) Option {
	return func(s *sizer) { s.stretch = ratio }
}

func newSizer(opts ...Option) sizer {
	s := sizer{scale: 1, xfrac: 1, yfrac: 1, stretch: 1}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s sizer) validate() error {
	if err := pfgerrors.ValidateScale(s.scale); err != nil {
		return err
	}
	if err := pfgerrors.ValidateFraction("width fraction", s.xfrac); err != nil {
		return err
	}
	if err := pfgerrors.ValidateFraction("height fraction", s.yfrac); err != nil {
		return err
	}
	if s.cellAspect < 0 {
		return pfgerrors.New(pfgerrors.ErrCodeInvalidDimension, "cell aspect must not be negative, got %g", s.cellAspect)
	}
	if s.wspace < 0 || s.hspace < 0 {
		return pfgerrors.New(pfgerrors.ErrCodeInvalidDimension, "panel spacing must not be negative, got wspace=%g hspace=%g", s.wspace, s.hspace)
	}
	if s.stretch <= 0 {
		return pfgerrors.New(pfgerrors.ErrCodeInvalidDimension, "stretch ratio must be positive, got %g", s.stretch)
	}
	return nil
}

// fractions resolves the effective width/height fractions for a grid.
func (s sizer) fractions(g Grid) (x, y float64) {
	if !s.auto {
		return s.xfrac, s.yfrac
	}
	r, c := g.Rows, g.Cols
	if r > len(autoFractions) {
		r = len(autoFractions)
	}
	if c > len(autoFractions[0]) {
		c = len(autoFractions[0])
	}
	f := autoFractions[r-1][c-1]
	return f[0], f[1]
}

// Size computes the physical figure dimensions for embedding in p with the
// given panel grid. The result is in the page's unit and never exceeds the
// page's content area.
//
// Errors: INVALID_DIMENSION when the page has no positive content area,
// INVALID_GRID when rows or cols < 1, INVALID_SCALE for out-of-range scale
// or fraction options.
func Size(p page.Page, g Grid, opts ...Option) (page.Size, error) {
	if err := p.Validate(); err != nil {
		return page.Size{}, err
	}
	if err := g.Validate(); err != nil {
		return page.Size{}, err
	}
	s := newSizer(opts...)
	if err := s.validate(); err != nil {
		return page.Size{}, err
	}

	body := p.Body()
	xfrac, yfrac := s.fractions(g)

	width := body.Width * s.scale * xfrac
	var height float64
	if s.cellAspect > 0 {
		height = width / float64(g.Cols) * s.cellAspect * float64(g.Rows)
		if height > body.Height {
			// Shrink uniformly so the aspect ratio survives.
			width *= body.Height / height
			height = body.Height
		}
	} else {
		height = body.Height * yfrac
	}

	height *= s.stretch
	if height > body.Height {
		height = body.Height
	}

	return page.Size{Width: width, Height: height, Unit: p.Unit}, nil
}
