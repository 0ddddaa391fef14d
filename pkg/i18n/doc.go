// Package i18n resolves dotted translation keys against lazily loaded,
// per-locale translation groups.
//
// A key such as "message.key.subkey" names the group "message" and the path
// "key.subkey" inside it. Groups are read from a Source the first time they
// are needed, decoded by the Loader registered for their format and kept in
// a Cache for the lifetime of the Resolver.
//
// # Basic Usage
//
// Translations live in a directory tree, one directory per locale:
//
//	locales/en/message.json    {"welcome": "Welcome, {name}!", "apples": "apple | apples"}
//	locales/de/message.yaml    welcome: "Willkommen, {name}!"
//
// Create a Resolver over it:
//
//	r, err := i18n.New(ctx,
//		i18n.WithFallbackLocale("en"),
//		i18n.WithSource(i18n.NewDirSource(os.DirFS("locales"))),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r.Trans(ctx, "message.welcome", i18n.M{"name": "Anna"})       // "Welcome, Anna!"
//	r.Trans(ctx, "message.welcome", i18n.M{"name": "Anna"}, "de") // "Willkommen, Anna!"
//	r.Trans(ctx, "message.unknown", nil)                          // "message.unknown"
//
// # Choices
//
// TransChoice picks a variant of a pipe-delimited message for a quantity,
// either by explicit expressions or by the plural rules of the locale
// (see package choice):
//
//	r.TransChoice(ctx, "message.apples", 1, nil) // "apple"
//	r.TransChoice(ctx, "message.apples", 5, nil) // "apples"
//
// # Fallback
//
// Resolution never fails on missing data. An unknown group, an unknown
// path, a path that ends on a nested group or a choice without an applicable
// variant all return the key itself. Has reports whether a key resolves to
// something else; a translation equal to its own key therefore reads as
// missing.
//
// Genuine source faults (permission denied, unreachable storage) and
// undecodable resources are reported by Get and GetChoice as
// ErrSourceFailed and ErrInvalidResource; Trans and TransChoice log them
// and return the key.
//
// # Locales
//
// The supported locales are discovered from the source once, in New.
// SetLocale switches the current locale and silently selects the fallback
// locale for unsupported values. Every lookup accepts an explicit locale
// that overrides the current one for that call only; Translator binds a
// locale for repeated use.
//
// # Formats and Sources
//
// JSON, YAML (.yaml, .yml) and TOML loaders are registered by default.
// WithLoader adds or replaces the loader for a format. Besides DirSource,
// pkg/storage reads the same layout from S3 and pkg/db from PostgreSQL.
//
// # Caching
//
// MemoryCache (the default) keeps groups in process. RedisCache shares
// them between processes. Resources that do not exist are not cached, so a
// group added later is picked up on the next lookup.
package i18n
