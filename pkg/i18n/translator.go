package i18n

import "context"

// Translator binds a Resolver to one locale. It is cheap to create, which
// makes it the value to hand to request handlers and templates instead of
// mutating the Resolver's current locale.
type Translator struct {
	resolver *Resolver
	locale   string
}

// NewTranslator creates a Translator for locale. Unsupported or empty
// locales use the resolver's fallback locale.
func NewTranslator(resolver *Resolver, locale string) *Translator {
	if resolver == nil {
		panic("i18n: resolver is not provided")
	}
	if !resolver.Supports(locale) {
		locale = resolver.FallbackLocale()
	}
	return &Translator{
		resolver: resolver,
		locale:   locale,
	}
}

// T translates key.
func (t *Translator) T(ctx context.Context, key string, placeholders ...M) string {
	return t.resolver.Trans(ctx, key, merge(placeholders), t.locale)
}

// Tn translates key, picking the variant for n.
func (t *Translator) Tn(ctx context.Context, key string, n float64, placeholders ...M) string {
	return t.resolver.TransChoice(ctx, key, n, merge(placeholders), t.locale)
}

// Has reports whether key has a translation in the translator's locale.
func (t *Translator) Has(ctx context.Context, key string) bool {
	return t.resolver.Has(ctx, key, t.locale)
}

// Locale returns the translator's locale.
func (t *Translator) Locale() string {
	return t.locale
}

func merge(placeholders []M) M {
	switch len(placeholders) {
	case 0:
		return nil
	case 1:
		return placeholders[0]
	}

	merged := make(M)
	for _, p := range placeholders {
		for k, v := range p {
			merged[k] = v
		}
	}
	return merged
}
