// Package logger builds the service's slog.Logger.
//
// Records go to a text or JSON handler on the configured writer and, when a
// Sentry DSN is set, to Sentry as well. ContextExtractor functions add
// request-scoped attributes such as the request ID or the negotiated locale
// on every call:
//
//	log := logger.New(cfg, os.Stdout,
//		middlewares.RequestIDExtractor(),
//		middlewares.LocaleExtractor(),
//	)
//	log.InfoContext(ctx, "translated", slog.String("key", key))
//
// Discard returns a logger that drops everything and is the default for
// library code that was not given one.
package logger
