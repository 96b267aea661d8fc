package sink

import (
	"bytes"
	"testing"

	pfgerrors "github.com/figtools/pubfig/pkg/errors"
	"github.com/figtools/pubfig/pkg/figure"
	"github.com/figtools/pubfig/pkg/page"
	"github.com/figtools/pubfig/pkg/styles"
	"github.com/figtools/pubfig/pkg/unit"
)

func TestRenderPDF(t *testing.T) {
	l := testLayout(t)

	data, err := RenderPDF(l)
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output should start with the PDF magic")
	}
	if len(data) < 500 {
		t.Errorf("output suspiciously small: %d bytes", len(data))
	}
}

func TestRenderPDFOptions(t *testing.T) {
	l := testLayout(t)

	plain, err := RenderPDF(l)
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	labeled, err := RenderPDF(l, WithPDFPanelLabels(), WithPDFStyle(styles.Minimal{}))
	if err != nil {
		t.Fatalf("RenderPDF(labels) error: %v", err)
	}
	if bytes.Equal(plain, labeled) {
		t.Error("labels and style should change the output")
	}
}

func TestRenderPDFInvalidUnit(t *testing.T) {
	l := &figure.Layout{
		Figure: page.Size{Width: 100, Height: 100, Unit: "furlong"},
		Grid:   figure.Grid{Rows: 1, Cols: 1},
	}
	_, err := RenderPDF(l)
	if pfgerrors.GetCode(err) != pfgerrors.ErrCodeInvalidUnit {
		t.Errorf("code = %v, want INVALID_UNIT", pfgerrors.GetCode(err))
	}
}

func TestCoreFont(t *testing.T) {
	if coreFont(styles.Classic{}) != "Times" {
		t.Error("classic should use Times")
	}
	if coreFont(styles.Minimal{}) != "Helvetica" {
		t.Error("minimal should use Helvetica")
	}
}

func TestRenderPDFInInches(t *testing.T) {
	p, _ := page.Preset("letter")
	l, err := figure.Compute(p.In(unit.Inch), figure.Grid{Rows: 1, Cols: 2})
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	data, err := RenderPDF(l)
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output should start with the PDF magic")
	}
}
