package validator

import "errors"

// ErrValidationFailed is the generic cause matched by every ValidationErrors value.
var ErrValidationFailed = errors.New("validation failed")
