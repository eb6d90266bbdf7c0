// Package i18n translates message keys into localised strings.
//
// Translations are nested maps keyed by language code. A TranslationAdapter
// supplies them (MapAdapter for in-memory data, FSAdapter for an fs.FS such
// as an embed.FS) and a Parser decodes files (YAMLParser, backed by
// gopkg.in/yaml.v3). Keys use dot notation to reach nested entries and
// templates use named placeholders:
//
//	# en.yaml
//	en:
//	  numeric:
//	    scale_exceeded: "%{field} must have at most %{scale} digits after the separator"
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"))
//	tr.T("en", "numeric.scale_exceeded", "field", "amount", "scale", "2")
//
// A missing language or key falls back to the default language and then to
// the key itself, so a lookup never fails.
//
// MatchLanguage negotiates an Accept-Language header against the supported
// languages using golang.org/x/text/language, and Middleware stores the
// result in the request context for GetLocale.
//
// Translators are safe for concurrent use.
package i18n
