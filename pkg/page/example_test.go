package page_test

import (
	"fmt"

	"github.com/figtools/pubfig/pkg/page"
	"github.com/figtools/pubfig/pkg/unit"
)

func ExamplePreset() {
	p, _ := page.Preset("a4")
	body := p.Body()

	fmt.Printf("Page: %g x %g %s\n", p.Width, p.Height, p.Unit)
	fmt.Printf("Content: %g x %g %s\n", body.Width, body.Height, body.Unit)
	// Output:
	// Page: 210 x 297 mm
	// Content: 160 x 247 mm
}

func ExamplePage_In() {
	// Work in inches while the preset is metric
	p, _ := page.Preset("letter")
	in := p.In(unit.Inch)

	fmt.Printf("%.1f x %.1f %s\n", in.Width, in.Height, in.Unit)
	// Output:
	// 8.5 x 11.0 in
}

func ExamplePage_Landscape() {
	p, _ := page.Preset("a4")
	l := p.Landscape()

	fmt.Printf("%g x %g\n", l.Width, l.Height)
	// Output:
	// 297 x 210
}
