package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	available := []string{"en", "de", "pt_BR"}

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"exact", "de", "de"},
		{"quality order", "fr;q=0.9,de;q=0.8,en;q=0.1", "de"},
		{"regional variant", "de-AT", "de"},
		{"underscore locale", "pt-BR", "pt_BR"},
		{"empty header", "", "en"},
		{"unparseable header", ";;;=", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, i18n.MatchAcceptLanguage(tt.header, available, "en"))
		})
	}

	t.Run("nothing available", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "en", i18n.MatchAcceptLanguage("de", nil, "en"))
	})

	t.Run("oversized header", func(t *testing.T) {
		t.Parallel()
		header := "de," + strings.Repeat("x", 5000)
		require.NotPanics(t, func() {
			i18n.MatchAcceptLanguage(header, available, "en")
		})
	})
}
