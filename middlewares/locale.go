package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
	"github.com/dmitrymomot/lexicon/pkg/logger"
)

type translatorKey struct{}

// LocaleSource reads a locale candidate from the request.
type LocaleSource func(r *http.Request) (string, bool)

// FromQuery reads the locale from a query parameter.
func FromQuery(name string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie reads the locale from a cookie.
func FromCookie(name string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromAcceptLanguage matches the Accept-Language header against available.
func FromAcceptLanguage(available []string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return "", false
		}
		v := i18n.MatchAcceptLanguage(header, available, "")
		return v, v != ""
	}
}

type localeConfig struct {
	sources    []LocaleSource
	sourcesSet bool
}

// LocaleOption configures Locale.
type LocaleOption func(*localeConfig)

// WithLocaleSources replaces the default negotiation chain.
func WithLocaleSources(sources ...LocaleSource) LocaleOption {
	return func(cfg *localeConfig) {
		cfg.sources = sources
		cfg.sourcesSet = true
	}
}

// Locale negotiates the request locale and stores a Translator for it in
// the request context. By default the "locale" query parameter wins over
// the "lang" cookie, which wins over Accept-Language. Candidates the
// resolver does not support are skipped; when none is left the resolver's
// fallback locale is used.
//
// The resolver's own current locale is never changed.
func Locale(resolver *i18n.Resolver, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &localeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.sourcesSet {
		cfg.sources = []LocaleSource{
			FromQuery("locale"),
			FromCookie("lang"),
			FromAcceptLanguage(resolver.Locales()),
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := resolver.FallbackLocale()
			for _, src := range cfg.sources {
				if v, ok := src(r); ok && resolver.Supports(v) {
					locale = v
					break
				}
			}

			w.Header().Set("Content-Language", locale)
			tr := i18n.NewTranslator(resolver, locale)
			next.ServeHTTP(w, r.WithContext(WithTranslator(r.Context(), tr)))
		})
	}
}

// WithTranslator returns a copy of ctx carrying tr.
func WithTranslator(ctx context.Context, tr *i18n.Translator) context.Context {
	return context.WithValue(ctx, translatorKey{}, tr)
}

// TranslatorFromContext returns the Translator stored by Locale.
func TranslatorFromContext(ctx context.Context) (*i18n.Translator, bool) {
	tr, ok := ctx.Value(translatorKey{}).(*i18n.Translator)
	return tr, ok && tr != nil
}

// LocaleExtractor adds "locale" to log records.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if tr, ok := TranslatorFromContext(ctx); ok {
			return slog.String("locale", tr.Locale()), true
		}
		return slog.Attr{}, false
	}
}
