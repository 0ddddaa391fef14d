package middlewares_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/middlewares"
	"github.com/dmitrymomot/lexicon/pkg/logger"
)

func TestLocale(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t)

	handler := middlewares.Locale(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tr, ok := middlewares.TranslatorFromContext(r.Context())
		if !ok {
			http.Error(w, "no translator", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(tr.T(r.Context(), "message.hello")))
	}))

	tests := []struct {
		name     string
		target   string
		cookie   string
		accept   string
		expected string
		locale   string
	}{
		{"default", "/", "", "", "Hello", "en"},
		{"query", "/?locale=de", "", "", "Hallo", "de"},
		{"cookie", "/", "pl", "", "Cześć", "pl"},
		{"accept language", "/", "", "de-DE,de;q=0.9,en;q=0.5", "Hallo", "de"},
		{"query beats cookie", "/?locale=pl", "de", "en", "Cześć", "pl"},
		{"cookie beats header", "/", "de", "pl", "Hallo", "de"},
		{"unsupported query skipped", "/?locale=fr", "pl", "", "Cześć", "pl"},
		{"nothing supported", "/?locale=fr", "es", "ja", "Hello", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, tt.expected, rec.Body.String())
			require.Equal(t, tt.locale, rec.Header().Get("Content-Language"))
		})
	}

	require.Equal(t, "en", resolver.Locale())
}

func TestLocale_CustomSources(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t)
	handler := middlewares.Locale(resolver,
		middlewares.WithLocaleSources(middlewares.FromCookie("ui_lang")),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tr, _ := middlewares.TranslatorFromContext(r.Context())
		_, _ = w.Write([]byte(tr.Locale()))
	}))

	req := httptest.NewRequest(http.MethodGet, "/?locale=de", nil)
	req.AddCookie(&http.Cookie{Name: "ui_lang", Value: "pl"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, "pl", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/?locale=de", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, "en", rec.Body.String())
}

func TestTranslatorFromContext_Missing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middlewares.TranslatorFromContext(req.Context())
	require.False(t, ok)
}

func TestLocaleExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.Config{Format: logger.FormatText}, &buf,
		middlewares.RequestIDExtractor(),
		middlewares.LocaleExtractor(),
	)

	handler := middlewares.RequestID()(middlewares.Locale(newTestResolver(t))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.InfoContext(r.Context(), "handled", slog.String("path", r.URL.Path))
		}),
	))

	req := httptest.NewRequest(http.MethodGet, "/?locale=de", nil)
	req.Header.Set("X-Request-ID", "req-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Contains(t, buf.String(), "locale=de")
	require.Contains(t, buf.String(), "request_id=req-42")
}
