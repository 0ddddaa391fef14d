package choice

import "strings"

// Rule identifies how a candidate set picks its result.
type Rule int

const (
	// RuleExpression: every candidate carries an expression, "{0} none | [1,*] some".
	RuleExpression Rule = iota
	// RuleSingularPlural: no candidate carries an expression, "item | items".
	RuleSingularPlural
	// RuleBroken: expressions and plain candidates are mixed. Unsupported.
	RuleBroken
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case RuleExpression:
		return "expression"
	case RuleSingularPlural:
		return "singular_plural"
	case RuleBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// Candidate is a message variant guarded by an expression.
type Candidate struct {
	Expression string
	Text       string
}

// CandidateSet is a classified pipe-delimited message.
type CandidateSet struct {
	// Expressions are ordered by first appearance. A repeated expression
	// overwrites the text of the earlier one in place.
	Expressions []Candidate
	// Plain holds untagged variants in message order.
	Plain []string
}

// Classify splits message on '|' and sorts the segments into expression
// tagged and plain candidates.
func Classify(message string) CandidateSet {
	var (
		set   CandidateSet
		index map[string]int
	)

	for segment := range strings.SplitSeq(message, "|") {
		expr := expressionRe.FindString(segment)
		text := strings.TrimSpace(expressionRe.ReplaceAllString(segment, ""))

		if expr == "" {
			set.Plain = append(set.Plain, text)
			continue
		}

		if index == nil {
			index = make(map[string]int)
		}
		if i, ok := index[expr]; ok {
			set.Expressions[i].Text = text
			continue
		}
		index[expr] = len(set.Expressions)
		set.Expressions = append(set.Expressions, Candidate{Expression: expr, Text: text})
	}

	return set
}

// ChooseRule decides which rule applies to set.
func ChooseRule(set CandidateSet) Rule {
	if len(set.Plain) == 0 {
		return RuleExpression
	}
	if len(set.Expressions) == 0 {
		return RuleSingularPlural
	}
	return RuleBroken
}
