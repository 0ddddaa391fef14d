// Package choice selects the variant of a pipe-delimited message that
// applies to a quantity.
//
// A message is a list of variants separated by '|'. Either every variant is
// guarded by an expression:
//
//	{0} No apples | [1,10] Some apples | [11,*] Many apples
//
// or none is, in which case the variant is picked by the plural category of
// the quantity in the given locale:
//
//	apple | apples                   (en: 1 -> apple, 2 -> apples)
//	jabłko | jabłka | jabłek         (pl: 1, 2..4, 5..)
//
// Messages mixing both forms are rejected.
//
// # Expressions
//
//	{N}       matches exactly N (fractions allowed)
//	[A,B]     A <= n <= B
//	[A,B[     A <= n < B
//	[A,*]     n >= A
//	]A,B]     n > B && n <= B (the exclusive left bracket tests the upper literal)
//
// Usage:
//
//	text, ok := choice.Select("{0} None | [1,10] Some | [11,*] Many", 15, "en")
//	// text == "Many", ok == true
//
//	idx := choice.PluralIndex("ru", 22) // 1
package choice
