// Package validator provides small composable validation rules that carry
// translation-friendly error metadata.
//
// A Rule couples a boolean Check with the ValidationError reported when the
// check fails. Apply evaluates any number of rules and collects the failures
// into a ValidationErrors slice that satisfies the error interface, so a
// single error return can describe several field-level problems at once.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.MinNum("precision", precision, 1),
//	    validator.MinNum("scale", scale, 0),
//	    validator.LessThan("scale", scale, precision),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field) or translate verrs.GetErrors(field)
//	    }
//	}
//
// # Translations
//
// Every ValidationError carries a TranslationKey and TranslationValues. The
// Params method flattens the values into the key/value argument list
// accepted by the i18n translator, which keeps rule definitions free of any
// localisation concerns.
//
// # Error Handling
//
// ValidationErrors works with errors.As even when joined with other errors,
// which is how callers detect validation problems behind a package sentinel:
//
//	err := errors.Join(numeric.ErrInvalidConfiguration, verrs)
//	errors.Is(err, numeric.ErrInvalidConfiguration) // true
//	validator.IsValidationError(err)                // true
//
// The package holds no global state and all rules are goroutine-safe.
package validator
