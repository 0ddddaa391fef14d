package choice

import "strings"

// pluralRule maps a quantity to a plural category index.
type pluralRule func(n float64) int

// brazilianPortuguese is the internal code pt_BR is normalized to; it
// follows the French zero-or-one rule while pt keeps the is-one rule.
const brazilianPortuguese = "xbr"

// Plural rule families. The conditions follow the classic table shipped
// with Symfony's translation component (derived from Zend Framework).
var (
	ruleSingle pluralRule = func(float64) int { return 0 }

	ruleIsOne pluralRule = func(n float64) int {
		if n == 1 {
			return 0
		}
		return 1
	}

	ruleZeroOrOne pluralRule = func(n float64) int {
		if n == 0 || n == 1 {
			return 0
		}
		return 1
	}

	ruleEastSlavic pluralRule = func(n float64) int {
		m10, m100 := mod(n, 10), mod(n, 100)
		switch {
		case m10 == 1 && m100 != 11:
			return 0
		case m10 >= 2 && m10 <= 4 && (m100 < 10 || m100 >= 20):
			return 1
		default:
			return 2
		}
	}

	ruleCzech pluralRule = func(n float64) int {
		switch {
		case n == 1:
			return 0
		case n >= 2 && n <= 4:
			return 1
		default:
			return 2
		}
	}

	ruleIrish pluralRule = func(n float64) int {
		switch n {
		case 1:
			return 0
		case 2:
			return 1
		default:
			return 2
		}
	}

	ruleLithuanian pluralRule = func(n float64) int {
		m10, m100 := mod(n, 10), mod(n, 100)
		switch {
		case m10 == 1 && m100 != 11:
			return 0
		case m10 >= 2 && (m100 < 10 || m100 >= 20):
			return 1
		default:
			return 2
		}
	}

	ruleSlovenian pluralRule = func(n float64) int {
		switch mod(n, 100) {
		case 1:
			return 0
		case 2:
			return 1
		case 3, 4:
			return 2
		default:
			return 3
		}
	}

	ruleMacedonian pluralRule = func(n float64) int {
		if mod(n, 10) == 1 {
			return 0
		}
		return 1
	}

	ruleMaltese pluralRule = func(n float64) int {
		m100 := mod(n, 100)
		switch {
		case n == 1:
			return 0
		case n == 0 || (m100 > 1 && m100 < 11):
			return 1
		case m100 > 10 && m100 < 20:
			return 2
		default:
			return 3
		}
	}

	ruleLatvian pluralRule = func(n float64) int {
		switch {
		case n == 0:
			return 0
		case mod(n, 10) == 1 && mod(n, 100) != 11:
			return 1
		default:
			return 2
		}
	}

	rulePolish pluralRule = func(n float64) int {
		m10, m100 := mod(n, 10), mod(n, 100)
		switch {
		case n == 1:
			return 0
		case m10 >= 2 && m10 <= 4 && (m100 < 12 || m100 > 14):
			return 1
		default:
			return 2
		}
	}

	ruleWelsh pluralRule = func(n float64) int {
		switch n {
		case 1:
			return 0
		case 2:
			return 1
		case 8, 11:
			return 2
		default:
			return 3
		}
	}

	ruleRomanian pluralRule = func(n float64) int {
		m100 := mod(n, 100)
		switch {
		case n == 1:
			return 0
		case n == 0 || (m100 > 0 && m100 < 20):
			return 1
		default:
			return 2
		}
	}

	ruleArabic pluralRule = func(n float64) int {
		m100 := mod(n, 100)
		switch {
		case n == 0:
			return 0
		case n == 1:
			return 1
		case n == 2:
			return 2
		case m100 >= 3 && m100 <= 10:
			return 3
		case m100 >= 11 && m100 <= 99:
			return 4
		default:
			return 5
		}
	}
)

// pluralFamilies lists the language codes of every rule family.
var pluralFamilies = []struct {
	rule  pluralRule
	langs []string
}{
	{ruleSingle, []string{
		"az", "bo", "dz", "id", "ja", "jv", "ka", "km", "kn", "ko", "ms", "th", "tr", "vi", "zh",
	}},
	{ruleIsOne, []string{
		"af", "bn", "bg", "ca", "da", "de", "el", "en", "eo", "es", "et", "eu", "fa", "fi",
		"fo", "fur", "fy", "gl", "gu", "ha", "he", "hu", "is", "it", "ku", "lb", "ml", "mn",
		"mr", "nah", "nb", "ne", "nl", "nn", "no", "om", "or", "pa", "pap", "ps", "pt", "so",
		"sq", "sv", "sw", "ta", "te", "tk", "ur", "zu",
	}},
	{ruleZeroOrOne, []string{
		"am", "bh", "fil", "fr", "gun", "hi", "hy", "ln", "mg", "nso", brazilianPortuguese, "ti", "wa",
	}},
	{ruleEastSlavic, []string{"be", "bs", "hr", "ru", "sr", "uk"}},
	{ruleCzech, []string{"cs", "sk"}},
	{ruleIrish, []string{"ga"}},
	{ruleLithuanian, []string{"lt"}},
	{ruleSlovenian, []string{"sl"}},
	{ruleMacedonian, []string{"mk"}},
	{ruleMaltese, []string{"mt"}},
	{ruleLatvian, []string{"lv"}},
	{rulePolish, []string{"pl"}},
	{ruleWelsh, []string{"cy"}},
	{ruleRomanian, []string{"ro"}},
	{ruleArabic, []string{"ar"}},
}

// pluralRules is the flattened language -> rule lookup.
var pluralRules = func() map[string]pluralRule {
	rules := make(map[string]pluralRule)
	for _, family := range pluralFamilies {
		for _, lang := range family.langs {
			rules[lang] = family.rule
		}
	}
	return rules
}()

// PluralIndex returns the plural category index (0..5) of n for locale.
// Regional variants fall back to their base language ("de_AT" uses "de"),
// except pt_BR which has its own rule. Unknown locales always yield 0.
//
// Equality and range conditions use n as given; modulo conditions use its
// integer part. Negative quantities are not defined.
func PluralIndex(locale string, n float64) int {
	rule, ok := pluralRules[normalizeLocale(locale)]
	if !ok {
		return 0
	}
	return rule(n)
}

func normalizeLocale(locale string) string {
	if locale == "pt_BR" {
		return brazilianPortuguese
	}
	if len(locale) > 3 {
		if i := strings.LastIndexByte(locale, '_'); i >= 0 {
			return locale[:i]
		}
	}
	return locale
}

func mod(n float64, m int64) int64 {
	return int64(n) % m
}
