package unit

import (
	"fmt"
	"slices"

	pfgerrors "github.com/figtools/pubfig/pkg/errors"
)

// Recognized unit names for quantity labels. Length labels accept any of the
// SI length units; time and mass follow common engineering usage.
var (
	LengthOptions = []string{"mm", "cm", "m", "km"}
	TimeOptions   = []string{"s", "min", "h", "d"}
	MassOptions   = []string{"mg", "g", "kg"}
)

func checkOption(kind, name string, options []string) error {
	if !slices.Contains(options, name) {
		return pfgerrors.New(pfgerrors.ErrCodeInvalidUnit, "unknown %s unit %q (want one of %v)", kind, name, options)
	}
	return nil
}

// TimeLabel returns an axis label for a time quantity, e.g. "min".
func TimeLabel(t string) (string, error) {
	if err := checkOption("time", t, TimeOptions); err != nil {
		return "", err
	}
	return t, nil
}

// AreaLabel returns an axis label for an area quantity, e.g. "mm²".
func AreaLabel(length string) (string, error) {
	if err := checkOption("length", length, LengthOptions); err != nil {
		return "", err
	}
	return length + "²", nil
}

// VelocityLabel returns an axis label for a velocity quantity, e.g. "mm/s".
func VelocityLabel(length, t string) (string, error) {
	if err := checkOption("length", length, LengthOptions); err != nil {
		return "", err
	}
	if err := checkOption("time", t, TimeOptions); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", length, t), nil
}

// DischargeLabel returns an axis label for a volumetric discharge quantity,
// e.g. "m³/s".
func DischargeLabel(length, t string) (string, error) {
	if err := checkOption("length", length, LengthOptions); err != nil {
		return "", err
	}
	if err := checkOption("time", t, TimeOptions); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s³/%s", length, t), nil
}
