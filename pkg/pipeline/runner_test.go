package pipeline

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/figtools/pubfig/pkg/cache"
	pfgerrors "github.com/figtools/pubfig/pkg/errors"
	"github.com/figtools/pubfig/pkg/figure"
)

func testRunner(t *testing.T, c cache.Cache) *Runner {
	t.Helper()
	return NewRunner(c, log.New(io.Discard))
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil)
	if r.Cache == nil {
		t.Error("nil cache should default to a null cache")
	}
	if r.Logger == nil {
		t.Error("nil logger should default to log.Default()")
	}
}

func TestExecute(t *testing.T) {
	r := testRunner(t, nil)

	result, err := r.Execute(context.Background(), Options{
		Grid:    figure.Grid{Rows: 3, Cols: 2},
		Formats: []string{"svg", "json"},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Size.Width != 160 || result.Size.Height != 247 {
		t.Errorf("size = %g x %g, want 160 x 247", result.Size.Width, result.Size.Height)
	}
	if len(result.Layout.Cells) != 6 {
		t.Errorf("cells = %d, want 6", len(result.Layout.Cells))
	}

	svg, ok := result.Artifacts["svg"]
	if !ok || !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Error("svg artifact missing or malformed")
	}
	js, ok := result.Artifacts["json"]
	if !ok || !strings.Contains(string(js), `"figure"`) {
		t.Error("json artifact missing or malformed")
	}

	// Null cache never hits.
	if result.CacheInfo.RenderHits["svg"] || result.CacheInfo.RenderHits["json"] {
		t.Error("null cache should never report hits")
	}
}

func TestExecuteInvalidGrid(t *testing.T) {
	r := testRunner(t, nil)

	_, err := r.Execute(context.Background(), Options{Grid: figure.Grid{Rows: 0, Cols: 2}})
	if err == nil {
		t.Fatal("Execute() expected error")
	}
	if !pfgerrors.Is(err, pfgerrors.ErrCodeInvalidGrid) {
		t.Errorf("error = %v, want INVALID_GRID", err)
	}
}

func TestExecuteInvalidFormat(t *testing.T) {
	r := testRunner(t, nil)

	_, err := r.Execute(context.Background(), Options{
		Grid:    figure.Grid{Rows: 1, Cols: 1},
		Formats: []string{"gif"},
	})
	if !pfgerrors.Is(err, pfgerrors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestExecuteCacheHit(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	r := testRunner(t, fc)

	opts := Options{Grid: figure.Grid{Rows: 2, Cols: 2}, Formats: []string{"svg"}}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute() error: %v", err)
	}
	if first.CacheInfo.RenderHits["svg"] {
		t.Error("first run should miss the cache")
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	if !second.CacheInfo.RenderHits["svg"] {
		t.Error("second run should hit the cache")
	}
	if !bytes.Equal(first.Artifacts["svg"], second.Artifacts["svg"]) {
		t.Error("cached artifact should match the rendered one")
	}
}

func TestCacheKeyDependsOnOptions(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	r := testRunner(t, fc)
	ctx := context.Background()

	opts := Options{Grid: figure.Grid{Rows: 2, Cols: 2}, Formats: []string{"svg"}}
	if _, err := r.Execute(ctx, opts); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	// Changing a render option must not reuse the cached artifact.
	labeled := opts
	labeled.PanelLabels = true
	result, err := r.Execute(ctx, labeled)
	if err != nil {
		t.Fatalf("Execute(labels) error: %v", err)
	}
	if result.CacheInfo.RenderHits["svg"] {
		t.Error("different options should produce a cache miss")
	}
	if !bytes.Contains(result.Artifacts["svg"], []byte("(a)")) {
		t.Error("labeled artifact should contain panel labels")
	}
}

func TestComputeLayout(t *testing.T) {
	r := testRunner(t, nil)

	layout, err := r.ComputeLayout(context.Background(), Options{
		Preset: "slide16:9",
		Grid:   figure.Grid{Rows: 1, Cols: 2},
	})
	if err != nil {
		t.Fatalf("ComputeLayout() error: %v", err)
	}
	// Slides have no margins, so the figure is the whole slide.
	if layout.Figure.Width != 338.7 || layout.Figure.Height != 190.5 {
		t.Errorf("figure = %g x %g, want 338.7 x 190.5", layout.Figure.Width, layout.Figure.Height)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	r := testRunner(t, nil)
	layout, err := r.ComputeLayout(context.Background(), Options{Grid: figure.Grid{Rows: 1, Cols: 1}})
	if err != nil {
		t.Fatalf("ComputeLayout() error: %v", err)
	}

	_, err = r.Render(layout, "gif", Options{Style: "classic"})
	if !pfgerrors.Is(err, pfgerrors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}
