package errors

// ValidatePositive returns an INVALID_DIMENSION error when v is not strictly
// positive. The name identifies the offending parameter in the message.
func ValidatePositive(name string, v float64) error {
	if v <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateNonNegative returns an INVALID_DIMENSION error when v is negative.
func ValidateNonNegative(name string, v float64) error {
	if v < 0 {
		return New(ErrCodeInvalidDimension, "%s must not be negative, got %g", name, v)
	}
	return nil
}

// ValidateScale returns an INVALID_SCALE error unless 0 < scale <= 1.
// A scale of 1 fills the full content area; larger figures would overflow
// the page and be rescaled by the document layout engine.
func ValidateScale(scale float64) error {
	if scale <= 0 || scale > 1 {
		return New(ErrCodeInvalidScale, "scale must be in (0, 1], got %g", scale)
	}
	return nil
}

// ValidateFraction returns an INVALID_SCALE error unless 0 < f <= 1.
// Used for the per-axis width/height fractions.
func ValidateFraction(name string, f float64) error {
	if f <= 0 || f > 1 {
		return New(ErrCodeInvalidScale, "%s must be in (0, 1], got %g", name, f)
	}
	return nil
}
