package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/numguard/pkg/validator"
)

func TestMinNum(t *testing.T) {
	t.Parallel()

	t.Run("passes when value equals minimum", func(t *testing.T) {
		rule := validator.MinNum("precision", 1, 1)
		assert.True(t, rule.Check())
		assert.Equal(t, "precision", rule.Error.Field)
		assert.Equal(t, "must be at least 1", rule.Error.Message)
		assert.Equal(t, "validation.min", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "precision", "min": 1}, rule.Error.TranslationValues)
	})

	t.Run("fails below minimum", func(t *testing.T) {
		assert.False(t, validator.MinNum("precision", 0, 1).Check())
		assert.False(t, validator.MinNum("scale", -1, 0).Check())
	})

	t.Run("works with floats", func(t *testing.T) {
		assert.True(t, validator.MinNum("rate", 1.5, 1.25).Check())
	})
}

func TestMaxNum(t *testing.T) {
	t.Parallel()

	rule := validator.MaxNum("batch", 1000, 1000)
	assert.True(t, rule.Check())
	assert.Equal(t, "must be at most 1000", rule.Error.Message)
	assert.Equal(t, "validation.max", rule.Error.TranslationKey)

	assert.False(t, validator.MaxNum("batch", 1001, 1000).Check())
}

func TestLessThan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value int
		bound int
		want  bool
	}{
		{"below bound", 2, 3, true},
		{"equal to bound", 3, 3, false},
		{"above bound", 4, 3, false},
		{"negative below zero bound", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.LessThan("scale", tt.value, tt.bound)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, "validation.less_than", rule.Error.TranslationKey)
			assert.Equal(t, tt.bound, rule.Error.TranslationValues["bound"])
		})
	}
}
