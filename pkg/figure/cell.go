package figure

import (
	"fmt"

	"github.com/figtools/pubfig/pkg/page"
)

// Cell is one panel region inside the figure. Coordinates are in the
// figure's unit with the origin at the figure's top-left corner and y
// growing downward, matching SVG and PDF user space.
type Cell struct {
	Row, Col      int
	Left, Top     float64
	Width, Height float64
}

// Right returns the cell's right edge.
func (c Cell) Right() float64 { return c.Left + c.Width }

// Bottom returns the cell's bottom edge.
func (c Cell) Bottom() float64 { return c.Top + c.Height }

// CenterX returns the horizontal center of the cell.
func (c Cell) CenterX() float64 { return c.Left + c.Width/2 }

// CenterY returns the vertical center of the cell.
func (c Cell) CenterY() float64 { return c.Top + c.Height/2 }

// Label returns the panel's index label in reading order: "(a)" for the
// top-left panel, "(b)" for the next one, and so on. Panels beyond "(z)"
// continue with "(aa)", "(ab)", ...
func (c Cell) Label(cols int) string {
	return panelLabel(c.Row*cols + c.Col)
}

func panelLabel(i int) string {
	s := ""
	for {
		s = string(rune('a'+i%26)) + s
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	return "(" + s + ")"
}

// Layout is the complete result of a size computation: the figure's outer
// dimensions and the positioned panel cells, all in the page's unit.
type Layout struct {
	Page   page.Page // the page the figure targets
	Grid   Grid      // panel arrangement
	Figure page.Size // outer figure dimensions
	Cells  []Cell    // row-major panel regions
}

// CellAt returns the cell at the given row and column.
func (l *Layout) CellAt(row, col int) (Cell, error) {
	if row < 0 || row >= l.Grid.Rows || col < 0 || col >= l.Grid.Cols {
		return Cell{}, fmt.Errorf("cell (%d,%d) out of range for %dx%d grid", row, col, l.Grid.Rows, l.Grid.Cols)
	}
	return l.Cells[row*l.Grid.Cols+col], nil
}

// Compute computes the figure size for p and g and arranges the panel grid
// inside it. Spacing options split the figure into cells with gaps; with no
// spacing each cell is exactly figureWidth/cols x figureHeight/rows.
func Compute(p page.Page, g Grid, opts ...Option) (*Layout, error) {
	size, err := Size(p, g, opts...)
	if err != nil {
		return nil, err
	}
	s := newSizer(opts...)

	// With n cells and a gap of space*cellSize between neighbours, the
	// figure splits into n + space*(n-1) cell-sized slots.
	cellW := size.Width / (float64(g.Cols) + s.wspace*float64(g.Cols-1))
	cellH := size.Height / (float64(g.Rows) + s.hspace*float64(g.Rows-1))
	gapW := s.wspace * cellW
	gapH := s.hspace * cellH

	cells := make([]Cell, 0, g.Panels())
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cells = append(cells, Cell{
				Row:    r,
				Col:    c,
				Left:   float64(c) * (cellW + gapW),
				Top:    float64(r) * (cellH + gapH),
				Width:  cellW,
				Height: cellH,
			})
		}
	}

	return &Layout{Page: p, Grid: g, Figure: size, Cells: cells}, nil
}
