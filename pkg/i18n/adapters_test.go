package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numguard/pkg/i18n"
)

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	p := i18n.NewYAMLParser()

	t.Run("parses nested languages", func(t *testing.T) {
		out, err := p.Parse(context.Background(), "en:\n  numeric:\n    empty: \"is empty\"\nru:\n  numeric:\n    empty: \"пусто\"\n")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"empty": "is empty"}, out["en"]["numeric"])
		assert.Equal(t, map[string]any{"empty": "пусто"}, out["ru"]["numeric"])
	})

	t.Run("rejects scalar language", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "en: hello\n")
		assert.ErrorIs(t, err, i18n.ErrInvalidTranslations)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "en: [unclosed\n")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "")
		assert.ErrorIs(t, err, i18n.ErrInvalidTranslations)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, "en:\n  a: b\n")
		assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
	})

	t.Run("extensions", func(t *testing.T) {
		assert.True(t, p.SupportsFileExtension(".yaml"))
		assert.True(t, p.SupportsFileExtension("YML"))
		assert.False(t, p.SupportsFileExtension("json"))
	})
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en.yaml":   {Data: []byte("en:\n  hello: Hello\n  bye: Bye\n")},
		"locales/ru.yml":    {Data: []byte("ru:\n  hello: Привет\n")},
		"locales/extra.yml": {Data: []byte("en:\n  bye: Goodbye\n")},
		"locales/notes.txt": {Data: []byte("ignored")},
		"empty/readme.md":   {Data: []byte("nothing")},
		"broken/en.yaml":    {Data: []byte("en: [\n")},
	}

	t.Run("merges supported files", func(t *testing.T) {
		adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales")
		out, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", out["en"]["hello"])
		assert.Equal(t, "Привет", out["ru"]["hello"])
		// entries are read in name order, extra.yml after en.yaml
		assert.Equal(t, "Goodbye", out["en"]["bye"])
	})

	t.Run("no supported files", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "empty").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "nope").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})

	t.Run("broken file", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "broken").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("nil parser", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(nil, fsys, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNilParser)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingTranslationsCancelled)
	})
}

func TestMapAdapter_Nil(t *testing.T) {
	t.Parallel()

	out, err := (&i18n.MapAdapter{}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}
