package i18n

import (
	"fmt"
	"regexp"
)

// M maps placeholder names to replacement values.
type M map[string]any

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z]+)\}`)

// ReplacePlaceholders substitutes {name} tokens in template with values
// from placeholders. Names consist of ASCII letters only. Tokens without a
// value are left untouched, and replaced text is not scanned again.
//
// Example:
//
//	ReplacePlaceholders("Hello, {name}! {unknown}", M{"name": "John"})
//	// "Hello, John! {unknown}"
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 {
		return template
	}

	return placeholderRe.ReplaceAllStringFunc(template, func(token string) string {
		value, ok := placeholders[token[1:len(token)-1]]
		if !ok {
			return token
		}
		return fmt.Sprint(value)
	})
}
