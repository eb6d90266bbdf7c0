package i18n

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// MatchLanguage picks the supported language that best satisfies an
// Accept-Language header. It returns def when the header is empty,
// malformed or matches nothing.
func MatchLanguage(header string, supported []string, def string) string {
	if header == "" || len(supported) == 0 {
		return def
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return def
	}

	// the first candidate is what the matcher returns when nothing fits
	candidates := make([]language.Tag, 0, len(supported)+1)
	candidates = append(candidates, language.Make(def))
	for _, lang := range supported {
		candidates = append(candidates, language.Make(lang))
	}

	_, idx, conf := language.NewMatcher(candidates).Match(desired...)
	if conf == language.No || idx == 0 {
		return def
	}
	return supported[idx-1]
}

type localeContextKey struct{}

// SetLocale stores lang in ctx.
func SetLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, lang)
}

// GetLocale returns the language stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if lang, _ := ctx.Value(localeContextKey{}).(string); lang != "" {
		return lang
	}
	return DefaultLanguage
}

// Middleware resolves the request language and stores it with SetLocale. A
// supported "lang" query parameter wins over the Accept-Language header.
func Middleware(supported []string, def string) func(http.Handler) http.Handler {
	if def == "" {
		def = DefaultLanguage
	}
	known := make(map[string]bool, len(supported))
	for _, lang := range supported {
		known[lang] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := r.URL.Query().Get("lang")
			if !known[lang] {
				lang = MatchLanguage(r.Header.Get("Accept-Language"), supported, def)
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
