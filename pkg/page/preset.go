package page

import (
	"sort"
	"strings"

	pfgerrors "github.com/figtools/pubfig/pkg/errors"
	"github.com/figtools/pubfig/pkg/unit"
)

// Page presets, all in millimeters and portrait orientation unless the
// format is inherently landscape (slides).
var (
	// A4 is the ISO 216 A4 page (210 x 297 mm).
	A4 = Page{Width: 210, Height: 297, Unit: unit.Millimeter}

	// Letter is the US Letter page (8.5 x 11 in).
	Letter = Page{Width: 215.9, Height: 279.4, Unit: unit.Millimeter}

	// Slide43 is a 4:3 presentation slide (10 x 7.5 in).
	Slide43 = Page{Width: 254, Height: 190.5, Unit: unit.Millimeter}

	// Slide169 is a 16:9 presentation slide (13.33 x 7.5 in).
	Slide169 = Page{Width: 338.7, Height: 190.5, Unit: unit.Millimeter}
)

// Margin presets in millimeters.
var (
	// MarginNormal is 25 mm on each side, the common "normal" preset.
	MarginNormal = Uniform(25)

	// MarginWord matches the default Word document setup: 1 in top and
	// bottom, 1.25 in left and right.
	MarginWord = Margin{Top: 25.4, Bottom: 25.4, Left: 31.75, Right: 31.75}

	// MarginNone has no margins. Slides typically use this.
	MarginNone = Margin{}
)

// presets maps preset names to pages with their conventional margins applied.
var presets = map[string]Page{
	"a4":        withMargin(A4, MarginNormal),
	"letter":    withMargin(Letter, MarginNormal),
	"slide4:3":  withMargin(Slide43, MarginNone),
	"slide16:9": withMargin(Slide169, MarginNone),
}

// preset name aliases accepted by Preset.
var presetAliases = map[string]string{
	"slide43":  "slide4:3",
	"slide":    "slide4:3",
	"slide169": "slide16:9",
	"wide":     "slide16:9",
}

func withMargin(p Page, m Margin) Page {
	p.Margin = m
	return p
}

// Preset returns a named page preset with its conventional margins.
// Names are case-insensitive. Returns INVALID_PRESET for unknown names.
func Preset(name string) (Page, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := presetAliases[key]; ok {
		key = alias
	}
	p, ok := presets[key]
	if !ok {
		return Page{}, pfgerrors.New(pfgerrors.ErrCodeInvalidPreset,
			"unknown page preset %q (want one of %s)", name, strings.Join(PresetNames(), ", "))
	}
	return p, nil
}

// PresetNames returns the canonical preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
