// Package middlewares provides net/http middlewares for the translation API.
//
// They follow the func(http.Handler) http.Handler shape, so they plug into
// chi or any other router:
//
//	r := chi.NewRouter()
//	r.Use(
//		middlewares.RequestID(),
//		middlewares.Recover(log),
//		middlewares.Locale(resolver),
//	)
//
// Locale negotiates the request locale and stores an i18n.Translator in the
// request context; handlers retrieve it with TranslatorFromContext.
// RequestIDExtractor and LocaleExtractor add the request ID and locale to
// every record logged with the request context.
package middlewares
