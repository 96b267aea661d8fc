// Package unit provides the measurement units used for page and figure
// geometry, plus conversion between them.
//
// All conversions go through millimeters as the base unit:
//
//	mm := unit.Convert(8.27, unit.Inch, unit.Millimeter)
//
// The package also provides label helpers for common physical quantities
// (velocity, discharge, area) so axis labels stay consistent across figures.
package unit

import (
	"strings"

	pfgerrors "github.com/figtools/pubfig/pkg/errors"
)

// Unit is a physical length unit.
type Unit string

// Supported units.
const (
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Inch       Unit = "in"
	Point      Unit = "pt"
)

// Conversion constants. One inch is exactly 25.4 mm; one point is 1/72 inch.
const (
	MMPerInch     = 25.4
	PointsPerInch = 72.0
)

// toMM maps each unit to its size in millimeters.
var toMM = map[Unit]float64{
	Millimeter: 1,
	Centimeter: 10,
	Inch:       MMPerInch,
	Point:      MMPerInch / PointsPerInch,
}

// Valid reports whether u is a supported unit.
func (u Unit) Valid() bool {
	_, ok := toMM[u]
	return ok
}

// String returns the unit's short name ("mm", "cm", "in", "pt").
func (u Unit) String() string { return string(u) }

// Parse converts a unit name to a Unit. Names are case-insensitive and
// accept the common long forms ("millimeter", "inches", ...).
func Parse(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "millimeter", "millimeters", "millimetre", "millimetres":
		return Millimeter, nil
	case "cm", "centimeter", "centimeters", "centimetre", "centimetres":
		return Centimeter, nil
	case "in", "inch", "inches", `"`:
		return Inch, nil
	case "pt", "point", "points":
		return Point, nil
	}
	return "", pfgerrors.New(pfgerrors.ErrCodeInvalidUnit, "unknown unit %q (want mm, cm, in, or pt)", s)
}

// Convert converts a value from one unit to another.
// Unknown units convert as millimeters; validate with Valid or Parse first.
func Convert(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}
	f, ok := toMM[from]
	if !ok {
		f = 1
	}
	t, ok := toMM[to]
	if !ok {
		t = 1
	}
	return v * f / t
}

// ToMillimeters converts a value in u to millimeters.
func ToMillimeters(v float64, u Unit) float64 { return Convert(v, u, Millimeter) }

// ToPoints converts a value in u to points. PDF and font sizes use points.
func ToPoints(v float64, u Unit) float64 { return Convert(v, u, Point) }
