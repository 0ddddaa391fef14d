package choice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/choice"
)

func TestMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr     string
		n        float64
		expected bool
	}{
		{"{5}", 5, true},
		{"{5}", 5.0, true},
		{"{5}", 4, false},
		{"{ 5 }", 5, true},
		{"{2.5}", 2.5, true},
		{"{2.5}", 2, false},
		{"[1,10]", 1, true},
		{"[1,10]", 10, true},
		{"[1,10]", 0, false},
		{"[1,10]", 11, false},
		{"[1, 10]", 5, true},
		{" [ 1 , 10 ] ", 5, true},
		{"[1,10[", 10, false},
		{"[1,10[", 9.99, true},
		{"[11,*]", 1000, true},
		{"[11,*]", 11, true},
		{"[11,*]", 10, false},
		{"[0,*[", 0, true},
		{"]10,*]", 10, false},
		{"]10,*]", 10.5, true},
		{"invalid", 10, false},
		{"", 0, false},
		{"{}", 0, false},
		{"[a,b]", 1, false},
		{"{-1}", -1, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%v", tt.expr, tt.n), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, choice.Matches(tt.expr, tt.n))
		})
	}
}

// The exclusive left bracket compares against the upper literal. These
// cases pin the shipped behavior; changing it must update them on purpose.
func TestMatchesExclusiveLowerBoundUsesUpperLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr     string
		n        float64
		expected bool
	}{
		{"]10,11[", 11, false},
		{"]10,11[", 10.5, false},
		{"]10,11[", 10, false},
		{"]10,11]", 11, false},
		{"]10,11]", 12, false},
		{"]1,5[", 3, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%v", tt.expr, tt.n), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, choice.Matches(tt.expr, tt.n))
		})
	}
}
