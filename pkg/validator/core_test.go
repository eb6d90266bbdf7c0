package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numguard/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "precision", Message: "must be at least 1"})
		errs.Add(validator.ValidationError{Field: "scale", Message: "must be less than 3"})

		assert.Equal(t, "validation failed: precision: must be at least 1; scale: must be less than 3", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "scale", Message: "must be at least 0", TranslationKey: "validation.min"})
	errs.Add(validator.ValidationError{Field: "precision", Message: "must be at least 1"})
	errs.Add(validator.ValidationError{Field: "scale", Message: "must be less than 1", TranslationKey: "validation.less_than"})

	assert.True(t, errs.Has("scale"))
	assert.False(t, errs.Has("value"))
	assert.Equal(t, []string{"must be at least 0", "must be less than 1"}, errs.Get("scale"))
	assert.Empty(t, errs.Get("value"))
	assert.Equal(t, []string{"scale", "precision"}, errs.Fields())

	scaleErrs := errs.GetErrors("scale")
	require.Len(t, scaleErrs, 2)
	assert.Equal(t, "validation.min", scaleErrs[0].TranslationKey)
	assert.Equal(t, "validation.less_than", scaleErrs[1].TranslationKey)
	assert.False(t, errs.IsEmpty())
}

func TestValidationError_Params(t *testing.T) {
	t.Parallel()

	t.Run("sorted key value pairs", func(t *testing.T) {
		e := validator.ValidationError{
			TranslationValues: map[string]any{"scale": 2, "field": "amount", "precision": 5},
		}
		assert.Equal(t, []string{"field", "amount", "precision", "5", "scale", "2"}, e.Params())
	})

	t.Run("nil without values", func(t *testing.T) {
		assert.Nil(t, validator.ValidationError{}.Params())
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.MinNum("precision", 3, 1),
			validator.LessThan("scale", 2, 3),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure in order", func(t *testing.T) {
		err := validator.Apply(
			validator.MinNum("precision", 0, 1),
			validator.MinNum("scale", -1, 0),
			validator.LessThan("scale", -1, 0),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "precision", verrs[0].Field)
		assert.Equal(t, "scale", verrs[1].Field)
	})

	t.Run("rule without check fails", func(t *testing.T) {
		err := validator.Apply(validator.Rule{Error: validator.ValidationError{Field: "x", Message: "broken"}})
		assert.Error(t, err)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("invalid configuration")
	verrs := validator.ValidationErrors{{Field: "scale", Message: "must be less than 2"}}

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("joined with a sentinel", func(t *testing.T) {
		err := errors.Join(sentinel, verrs)
		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.True(t, validator.IsValidationError(err))
		assert.Equal(t, verrs, validator.ExtractValidationErrors(err))
	})

	t.Run("wrapped with fmt", func(t *testing.T) {
		err := fmt.Errorf("startup: %w", verrs)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(sentinel))
		assert.False(t, validator.IsValidationError(sentinel))
	})
}
