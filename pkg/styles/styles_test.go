package styles

import (
	"bytes"
	"strings"
	"testing"

	pfgerrors "github.com/figtools/pubfig/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Fonts.Small != 8 || cfg.Fonts.Medium != 10 || cfg.Fonts.Large != 12 {
		t.Errorf("font sizes = %g/%g/%g, want 8/10/12",
			cfg.Fonts.Small, cfg.Fonts.Medium, cfg.Fonts.Large)
	}
	if cfg.FontFamily() != "Times New Roman" {
		t.Errorf("FontFamily() = %q, want Times New Roman", cfg.FontFamily())
	}
	if len(cfg.Palette) != 10 {
		t.Errorf("palette has %d colors, want 10", len(cfg.Palette))
	}
	if cfg.TickCount != 5 {
		t.Errorf("TickCount = %d, want 5", cfg.TickCount)
	}
}

func TestColorCycles(t *testing.T) {
	cfg := Default()

	if cfg.Color(0) != "#1f77b4" {
		t.Errorf("Color(0) = %q", cfg.Color(0))
	}
	if cfg.Color(10) != cfg.Color(0) {
		t.Error("Color should cycle past the palette end")
	}
	if cfg.Color(13) != cfg.Color(3) {
		t.Error("Color(13) should wrap to Color(3)")
	}

	empty := Config{}
	if empty.Color(0) != "#000000" {
		t.Errorf("empty palette Color(0) = %q, want black", empty.Color(0))
	}
}

func TestFontFamilyFallback(t *testing.T) {
	cfg := Config{}
	if cfg.FontFamily() != "serif" {
		t.Errorf("empty family FontFamily() = %q, want serif", cfg.FontFamily())
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantErr  bool
	}{
		{input: "classic", wantName: "classic"},
		{input: "", wantName: "classic"},
		{input: "Classic", wantName: "classic"},
		{input: " minimal ", wantName: "minimal"},
		{input: "handdrawn", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := ByName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ByName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if pfgerrors.GetCode(err) != pfgerrors.ErrCodeInvalidStyle {
					t.Errorf("ByName(%q) code = %v", tt.input, pfgerrors.GetCode(err))
				}
				return
			}
			if s.Name() != tt.wantName {
				t.Errorf("ByName(%q).Name() = %q, want %q", tt.input, s.Name(), tt.wantName)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "classic" || names[1] != "minimal" {
		t.Errorf("Names() = %v", names)
	}
	for _, name := range names {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q) should resolve: %v", name, err)
		}
	}
}

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "plain", want: "plain"},
		{input: "a < b & c > d", want: "a &lt; b &amp; c &gt; d"},
		{input: `say "hi"`, want: "say &#34;hi&#34;"},
	}
	for _, tt := range tests {
		if got := EscapeXML(tt.input); got != tt.want {
			t.Errorf("EscapeXML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStylesRenderFrames(t *testing.T) {
	cfg := Default()
	frame := Frame{X: 10, Y: 10, W: 80, H: 60, Pt: 0.3528, Index: 0, Label: "(a)"}

	for _, s := range []Style{Classic{}, Minimal{}} {
		t.Run(s.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			s.RenderDefs(&buf, cfg)
			s.RenderFrame(&buf, cfg, frame)
			s.RenderTicks(&buf, cfg, frame)
			s.RenderLabel(&buf, cfg, frame)

			out := buf.String()
			if out == "" {
				t.Fatal("style rendered nothing")
			}
			if !strings.Contains(out, "(a)") {
				t.Error("output should contain the panel label")
			}
		})
	}
}

func TestFontFamilyCSS(t *testing.T) {
	css := fontFamilyCSS(Default())
	if !strings.Contains(css, "'Times New Roman'") {
		t.Errorf("names with spaces should be quoted, got %q", css)
	}
	if !strings.HasSuffix(css, "serif") {
		t.Errorf("stack should end with the generic family, got %q", css)
	}

	if got := fontFamilyCSS(Config{}); got != "serif" {
		t.Errorf("empty stack = %q, want serif", got)
	}
}

func TestClassicIsBoxed(t *testing.T) {
	var buf bytes.Buffer
	Classic{}.RenderFrame(&buf, Default(), Frame{X: 0, Y: 0, W: 50, H: 40, Pt: 0.35})
	if !strings.Contains(buf.String(), "<rect") {
		t.Error("classic frame should draw a full rectangle")
	}
}

func TestMinimalHasOpenSpines(t *testing.T) {
	var buf bytes.Buffer
	Minimal{}.RenderFrame(&buf, Default(), Frame{X: 0, Y: 0, W: 50, H: 40, Pt: 0.35})
	out := buf.String()
	if strings.Contains(out, "<rect") {
		t.Error("minimal frame should not draw a closed rectangle")
	}
	if !strings.Contains(out, "<line") {
		t.Error("minimal frame should draw spine lines")
	}
}
