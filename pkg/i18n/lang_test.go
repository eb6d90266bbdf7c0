package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/numguard/pkg/i18n"
)

func TestMatchLanguage(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "ru"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact match", "ru", "ru"},
		{"regional variant", "ru-RU,ru;q=0.9,en;q=0.8", "ru"},
		{"quality ordering", "en;q=0.4,ru;q=0.9", "ru"},
		{"unsupported language", "de", "en"},
		{"garbage", ";;;=", "en"},
		{"oversized header", strings.Repeat("x", 5000), "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.MatchLanguage(tt.header, supported, "en"))
		})
	}

	assert.Equal(t, "en", i18n.MatchLanguage("ru", nil, "en"))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := i18n.Middleware([]string{"en", "ru"}, "en")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	}))

	tests := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{"header", "/", "ru-RU", "ru"},
		{"query wins", "/?lang=en", "ru", "en"},
		{"unsupported query ignored", "/?lang=de", "ru", "ru"},
		{"nothing", "/", "", "en"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.target, nil)
		if tt.header != "" {
			req.Header.Set("Accept-Language", tt.header)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, tt.want, got, tt.name)
	}
}
