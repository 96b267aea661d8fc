package page

import (
	"testing"

	pfgerrors "github.com/figtools/pubfig/pkg/errors"
)

func TestPreset(t *testing.T) {
	tests := []struct {
		name       string
		wantWidth  float64
		wantHeight float64
		wantMargin Margin
	}{
		{name: "a4", wantWidth: 210, wantHeight: 297, wantMargin: MarginNormal},
		{name: "letter", wantWidth: 215.9, wantHeight: 279.4, wantMargin: MarginNormal},
		{name: "slide4:3", wantWidth: 254, wantHeight: 190.5, wantMargin: MarginNone},
		{name: "slide16:9", wantWidth: 338.7, wantHeight: 190.5, wantMargin: MarginNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Preset(tt.name)
			if err != nil {
				t.Fatalf("Preset(%q) error: %v", tt.name, err)
			}
			if p.Width != tt.wantWidth || p.Height != tt.wantHeight {
				t.Errorf("Preset(%q) = %g x %g, want %g x %g",
					tt.name, p.Width, p.Height, tt.wantWidth, tt.wantHeight)
			}
			if p.Margin != tt.wantMargin {
				t.Errorf("Preset(%q) margin = %+v, want %+v", tt.name, p.Margin, tt.wantMargin)
			}
			if err := p.Validate(); err != nil {
				t.Errorf("Preset(%q) should validate: %v", tt.name, err)
			}
		})
	}
}

func TestPresetAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{alias: "slide", want: "slide4:3"},
		{alias: "slide43", want: "slide4:3"},
		{alias: "wide", want: "slide16:9"},
		{alias: "slide169", want: "slide16:9"},
		{alias: "A4", want: "a4"},
		{alias: " Letter ", want: "letter"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			got, err := Preset(tt.alias)
			if err != nil {
				t.Fatalf("Preset(%q) error: %v", tt.alias, err)
			}
			want, _ := Preset(tt.want)
			if got != want {
				t.Errorf("Preset(%q) != Preset(%q)", tt.alias, tt.want)
			}
		})
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("tabloid")
	if err == nil {
		t.Fatal("Preset(tabloid) expected error")
	}
	if pfgerrors.GetCode(err) != pfgerrors.ErrCodeInvalidPreset {
		t.Errorf("Preset(tabloid) code = %v, want INVALID_PRESET", pfgerrors.GetCode(err))
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	want := []string{"a4", "letter", "slide16:9", "slide4:3"}
	if len(names) != len(want) {
		t.Fatalf("PresetNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("PresetNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestMarginWord(t *testing.T) {
	// Word's default setup: 1 in top/bottom, 1.25 in left/right.
	if MarginWord.Top != 25.4 || MarginWord.Left != 31.75 {
		t.Errorf("MarginWord = %+v", MarginWord)
	}
}
