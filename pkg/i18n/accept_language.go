package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// MatchAcceptLanguage returns the available locale that best fits an
// Accept-Language header such as "de-AT,de;q=0.9,en;q=0.5". Locales may use
// either '_' or '-' as region separator ("pt_BR" and "pt-BR" are equal).
// Returns fallback when nothing matches or the header is unusable.
func MatchAcceptLanguage(header string, available []string, fallback string) string {
	if len(available) == 0 || header == "" {
		return fallback
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(available))
	candidates := make([]string, 0, len(available))
	for _, locale := range available {
		tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		candidates = append(candidates, locale)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(prefs...)
	if confidence == language.No {
		return fallback
	}
	return candidates[idx]
}
