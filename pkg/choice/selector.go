package choice

// Select picks the variant of message that applies to n in locale.
// It returns false when no variant applies: the message mixes expression
// and plain candidates, no expression matches, or the plural category has
// no corresponding variant.
func Select(message string, n float64, locale string) (string, bool) {
	set := Classify(message)

	switch ChooseRule(set) {
	case RuleExpression:
		return FromExpressions(set.Expressions, n)
	case RuleSingularPlural:
		idx := PluralIndex(locale, n)
		if idx < 0 || idx >= len(set.Plain) {
			return "", false
		}
		return set.Plain[idx], true
	default:
		return "", false
	}
}

// FromExpressions returns the text of the first candidate whose expression
// matches n. Candidates with malformed expressions are skipped.
func FromExpressions(candidates []Candidate, n float64) (string, bool) {
	for _, c := range candidates {
		if Matches(c.Expression, n) {
			return c.Text, true
		}
	}
	return "", false
}
