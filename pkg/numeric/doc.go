// Package numeric validates decimal number strings against a precision,
// scale and sign policy.
//
// A Validator is configured once and then queried any number of times. The
// check is structural: the input must match
//
//	number    := [sign] intpart [separator fracpart]
//	sign      := '+' | '-'
//	intpart   := digit+
//	fracpart  := digit+
//	separator := '.' | ','
//
// as a whole, its digit count (sign and separator excluded) must not exceed
// the precision, its fractional digit count must not exceed the scale, and a
// leading '-' is rejected when the validator only accepts positive numbers.
// Only ASCII digits count. Leading zeros are accepted and counted.
//
// # Usage
//
//	v, err := numeric.New(4, 2, true)
//	if err != nil {
//	    // errors.Is(err, numeric.ErrInvalidConfiguration)
//	}
//	v.IsValid("+1.23")  // true
//	v.IsValid("-1.23")  // false, negative numbers are rejected
//	v.IsValidNumber(nil) // false, absent value
//
// Check reports why an input was rejected using the sentinel errors of this
// package, and Reason converts such an error into a stable code suitable for
// translation keys and API responses.
//
// # Concurrency
//
// Validators hold no mutable state and are safe for concurrent use.
package numeric
