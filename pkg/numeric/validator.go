package numeric

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/numguard/pkg/validator"
)

// Config holds the limits applied by a Validator.
type Config struct {
	Precision    int  `env:"NUMBER_PRECISION" envDefault:"17"`
	Scale        int  `env:"NUMBER_SCALE" envDefault:"2"`
	OnlyPositive bool `env:"NUMBER_ONLY_POSITIVE" envDefault:"false"`
}

// Validate reports every limit that is out of range.
func (c Config) Validate() error {
	return validator.Apply(
		validator.MinNum("precision", c.Precision, 1),
		validator.MinNum("scale", c.Scale, 0),
		validator.LessThan("scale", c.Scale, c.Precision),
	)
}

func (c Config) String() string {
	return fmt.Sprintf("precision=%d scale=%d only_positive=%t", c.Precision, c.Scale, c.OnlyPositive)
}

// Validator checks decimal number strings against a fixed Config.
type Validator struct {
	cfg Config
}

// New returns a validator allowing at most precision digits in total, at
// most scale of them after the separator, and rejecting a leading '-' when
// onlyPositive is set. It fails with ErrInvalidConfiguration unless
// 0 <= scale < precision.
func New(precision, scale int, onlyPositive bool) (*Validator, error) {
	return NewFromConfig(Config{
		Precision:    precision,
		Scale:        scale,
		OnlyPositive: onlyPositive,
	})
}

// NewFromConfig is New for a loaded Config.
func NewFromConfig(cfg Config) (*Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidConfiguration, err)
	}
	return &Validator{cfg: cfg}, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(precision, scale int, onlyPositive bool) *Validator {
	v, err := New(precision, scale, onlyPositive)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Validator) Config() Config {
	return v.cfg
}

// IsValidNumber reports whether value is a valid number. A nil value is
// treated as absent and is never valid.
func (v *Validator) IsValidNumber(value *string) bool {
	return v.CheckPtr(value) == nil
}

// IsValid reports whether value is a valid number.
func (v *Validator) IsValid(value string) bool {
	return v.Check(value) == nil
}

// CheckPtr is Check for an optional value. It returns ErrMissingValue for nil.
func (v *Validator) CheckPtr(value *string) error {
	if value == nil {
		return ErrMissingValue
	}
	return v.Check(*value)
}

// Check returns nil for a valid number, or the first failed condition in
// the order: grammar, precision, scale, sign.
func (v *Validator) Check(value string) error {
	n, err := Parse(value)
	if err != nil {
		return err
	}
	if n.Digits() > v.cfg.Precision {
		return ErrPrecisionExceeded
	}
	if n.FractionDigits() > v.cfg.Scale {
		return ErrScaleExceeded
	}
	if v.cfg.OnlyPositive && n.Negative() {
		return ErrNegativeNotAllowed
	}
	return nil
}

// Rule adapts Check into a validation rule for field. The rule's error
// carries the translation key "numeric.<reason>".
func (v *Validator) Rule(field, value string) validator.Rule {
	err := v.Check(value)
	return validator.Rule{
		Check: func() bool {
			return err == nil
		},
		Error: v.ValidationError(field, err),
	}
}

// ValidationError describes a Check failure for field. A nil err yields the
// generic "numeric.invalid" entry.
func (v *Validator) ValidationError(field string, err error) validator.ValidationError {
	reason := Reason(err)
	if reason == "" {
		reason = "invalid"
	}
	return validator.ValidationError{
		Field:          field,
		Message:        v.message(reason),
		TranslationKey: "numeric." + reason,
		TranslationValues: map[string]any{
			"field":     field,
			"precision": v.cfg.Precision,
			"scale":     v.cfg.Scale,
		},
	}
}

func (v *Validator) message(reason string) string {
	switch reason {
	case ReasonMissing:
		return "value is required"
	case ReasonEmpty:
		return "value must not be empty"
	case ReasonMalformed:
		return "must be a decimal number"
	case ReasonPrecisionExceeded:
		return fmt.Sprintf("must have at most %d digits", v.cfg.Precision)
	case ReasonScaleExceeded:
		return fmt.Sprintf("must have at most %d digits after the separator", v.cfg.Scale)
	case ReasonNegativeNotAllowed:
		return "must not be negative"
	default:
		return "must be a valid number"
	}
}
