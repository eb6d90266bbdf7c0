package numeric

import "errors"

var (
	// ErrInvalidConfiguration is returned by New when precision or scale are out of range.
	ErrInvalidConfiguration = errors.New("invalid number validator configuration")

	ErrMissingValue       = errors.New("value is missing")
	ErrEmptyInput         = errors.New("value is empty")
	ErrMalformedNumber    = errors.New("value is not a decimal number")
	ErrPrecisionExceeded  = errors.New("value has too many digits")
	ErrScaleExceeded      = errors.New("value has too many fractional digits")
	ErrNegativeNotAllowed = errors.New("negative values are not allowed")
)

// Reason codes returned by Reason.
const (
	ReasonMissing            = "missing"
	ReasonEmpty              = "empty"
	ReasonMalformed          = "malformed"
	ReasonPrecisionExceeded  = "precision_exceeded"
	ReasonScaleExceeded      = "scale_exceeded"
	ReasonNegativeNotAllowed = "negative_not_allowed"
	ReasonUnknown            = "unknown"
)

// Reason maps a Check error to its reason code. It returns an empty string
// for nil.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingValue):
		return ReasonMissing
	case errors.Is(err, ErrEmptyInput):
		return ReasonEmpty
	case errors.Is(err, ErrMalformedNumber):
		return ReasonMalformed
	case errors.Is(err, ErrPrecisionExceeded):
		return ReasonPrecisionExceeded
	case errors.Is(err, ErrScaleExceeded):
		return ReasonScaleExceeded
	case errors.Is(err, ErrNegativeNotAllowed):
		return ReasonNegativeNotAllowed
	default:
		return ReasonUnknown
	}
}
