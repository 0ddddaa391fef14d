// Package server exposes an i18n.Resolver over HTTP.
//
// Routes:
//
//	GET /v1/translate/{key}   ?locale=de&n=3&count=3
//	GET /v1/locales
//	GET /health/live
//	GET /health/ready
//
// Query parameters other than locale and n become placeholder values.
// The locale is negotiated per request by middlewares.Locale.
package server
