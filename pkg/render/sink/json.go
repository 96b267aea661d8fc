package sink

import (
	"encoding/json"

	pfgerrors "github.com/figtools/pubfig/pkg/errors"
	"github.com/figtools/pubfig/pkg/figure"
	"github.com/figtools/pubfig/pkg/page"
	"github.com/figtools/pubfig/pkg/unit"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name (e.g., "classic", "minimal") in the
// JSON output for documentation or round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Unit   string     `json:"unit"`
	Style  string     `json:"style,omitempty"`
	Page   jsonPage   `json:"page"`
	Figure jsonSize   `json:"figure"`
	Grid   jsonGrid   `json:"grid"`
	Cells  []jsonCell `json:"cells"`
}

type jsonPage struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Margin jsonMargin `json:"margin"`
}

type jsonMargin struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

type jsonSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonGrid struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

type jsonCell struct {
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RenderJSON exports the complete layout as indented JSON, suitable for
// external tools or re-rendering via [ReadJSON].
func RenderJSON(l *figure.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Unit:  l.Figure.Unit.String(),
		Style: r.style,
		Page: jsonPage{
			Width:  l.Page.Width,
			Height: l.Page.Height,
			Margin: jsonMargin{
				Top:    l.Page.Margin.Top,
				Bottom: l.Page.Margin.Bottom,
				Left:   l.Page.Margin.Left,
				Right:  l.Page.Margin.Right,
			},
		},
		Figure: jsonSize{Width: l.Figure.Width, Height: l.Figure.Height},
		Grid:   jsonGrid{Rows: l.Grid.Rows, Cols: l.Grid.Cols},
		Cells:  make([]jsonCell, len(l.Cells)),
	}
	for i, c := range l.Cells {
		out.Cells[i] = jsonCell{Row: c.Row, Col: c.Col, Left: c.Left, Top: c.Top, Width: c.Width, Height: c.Height}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, pfgerrors.Wrap(pfgerrors.ErrCodeInternal, err, "encode layout")
	}
	return append(data, '\n'), nil
}

// ReadJSON decodes a layout previously exported with [RenderJSON], returning
// the layout and the recorded style name (empty if none was recorded).
func ReadJSON(data []byte) (*figure.Layout, string, error) {
	var in jsonOutput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, "", pfgerrors.Wrap(pfgerrors.ErrCodeInvalidFormat, err, "decode layout")
	}
	u, err := unit.Parse(in.Unit)
	if err != nil {
		return nil, "", err
	}

	l := &figure.Layout{
		Page: page.Page{
			Width:  in.Page.Width,
			Height: in.Page.Height,
			Margin: page.Margin{
				Top:    in.Page.Margin.Top,
				Bottom: in.Page.Margin.Bottom,
				Left:   in.Page.Margin.Left,
				Right:  in.Page.Margin.Right,
			},
			Unit: u,
		},
		Grid:   figure.Grid{Rows: in.Grid.Rows, Cols: in.Grid.Cols},
		Figure: page.Size{Width: in.Figure.Width, Height: in.Figure.Height, Unit: u},
		Cells:  make([]figure.Cell, len(in.Cells)),
	}
	if err := l.Page.Validate(); err != nil {
		return nil, "", err
	}
	if err := l.Grid.Validate(); err != nil {
		return nil, "", err
	}
	// CellAt indexes row*cols+col, so a truncated or hand-edited cell list
	// must be rejected here rather than panic later.
	if len(in.Cells) != in.Grid.Rows*in.Grid.Cols {
		return nil, "", pfgerrors.New(pfgerrors.ErrCodeInvalidFormat,
			"layout has %d cells, want %d for a %dx%d grid",
			len(in.Cells), in.Grid.Rows*in.Grid.Cols, in.Grid.Rows, in.Grid.Cols)
	}
	for i, c := range in.Cells {
		if c.Row < 0 || c.Row >= in.Grid.Rows || c.Col < 0 || c.Col >= in.Grid.Cols {
			return nil, "", pfgerrors.New(pfgerrors.ErrCodeInvalidFormat,
				"cell %d position (%d,%d) outside the %dx%d grid",
				i, c.Row, c.Col, in.Grid.Rows, in.Grid.Cols)
		}
		l.Cells[i] = figure.Cell{Row: c.Row, Col: c.Col, Left: c.Left, Top: c.Top, Width: c.Width, Height: c.Height}
	}
	return l, in.Style, nil
}
