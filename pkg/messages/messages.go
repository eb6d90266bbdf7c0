// Package messages holds the bundled message catalogues for validation
// failures and renders validator errors in the requested language.
package messages

import (
	"context"
	"embed"

	"github.com/dmitrymomot/numguard/pkg/i18n"
	"github.com/dmitrymomot/numguard/pkg/validator"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewTranslator loads the bundled catalogues.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"), opts...)
}

// Localize renders e in lang. The untranslated message is used when the
// catalogue has no entry for e's key.
func Localize(tr *i18n.Translator, lang string, e validator.ValidationError) string {
	if tr == nil || e.TranslationKey == "" {
		return e.Message
	}
	return tr.Td(lang, e.TranslationKey, e.Message, e.Params()...)
}

// LocalizeAll renders every error in errs, preserving order.
func LocalizeAll(tr *i18n.Translator, lang string, errs validator.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, Localize(tr, lang, e))
	}
	return out
}
