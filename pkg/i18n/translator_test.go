package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

func TestTranslator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newResolver(t)

	t.Run("bound locale", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(r, "de")

		require.Equal(t, "de", tr.Locale())
		require.Equal(t, "Eins", tr.T(ctx, "message.one"))
		require.Equal(t, "Plural", tr.Tn(ctx, "message.simple_choice", 3))
		require.True(t, tr.Has(ctx, "message.one"))
		require.False(t, tr.Has(ctx, "message.unknown"))
		require.Equal(t, "en", r.Locale())
	})

	t.Run("unsupported locale uses fallback", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(r, "fr")

		require.Equal(t, "en", tr.Locale())
		require.Equal(t, "One", tr.T(ctx, "message.one"))
	})

	t.Run("merges placeholders", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(r, "en")

		require.Equal(t, "Hello World!", tr.T(ctx, "message.multiple_placeholders",
			i18n.M{"placeholderOne": "Hello"},
			i18n.M{"placeholderTwo": "World"},
		))
		require.Equal(t, "7 apples", tr.Tn(ctx, "message.apples", 7, i18n.M{"count": 7}))
	})

	t.Run("nil resolver panics", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() { i18n.NewTranslator(nil, "en") })
	})
}
