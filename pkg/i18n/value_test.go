package i18n_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

func TestNodeFromMap(t *testing.T) {
	t.Parallel()

	node := i18n.NodeFromMap(map[string]any{
		"title":  "Title",
		"count":  42,
		"flag":   true,
		"list":   []any{"a", "b"},
		"absent": nil,
		"nested": map[string]any{"deep": map[string]any{"leaf": "Leaf"}},
		"flat":   map[string]string{"a": "A"},
		"yaml":   map[any]any{"b": "B", 404: "Not found", true: "Yes", 1.5: "Half", nil: "dropped", [2]int{1, 2}: "dropped"},
	})

	require.Equal(t, i18n.Node{
		"title":  i18n.Leaf("Title"),
		"nested": i18n.Node{"deep": i18n.Node{"leaf": i18n.Leaf("Leaf")}},
		"flat":   i18n.Node{"a": i18n.Leaf("A")},
		"yaml": i18n.Node{
			"b":    i18n.Leaf("B"),
			"404":  i18n.Leaf("Not found"),
			"true": i18n.Leaf("Yes"),
			"1.5":  i18n.Leaf("Half"),
		},
	}, node)
}

func TestNode_Lookup(t *testing.T) {
	t.Parallel()

	node := i18n.Node{
		"one": i18n.Leaf("One"),
		"key": i18n.Node{"subkey": i18n.Leaf("Subkey")},
	}

	tests := []struct {
		name     string
		path     []string
		expected string
		found    bool
	}{
		{"leaf", []string{"one"}, "One", true},
		{"nested leaf", []string{"key", "subkey"}, "Subkey", true},
		{"ends on node", []string{"key"}, "", false},
		{"empty path", nil, "", false},
		{"missing segment", []string{"two"}, "", false},
		{"past a leaf", []string{"one", "more"}, "", false},
		{"missing nested segment", []string{"key", "other"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			value, found := node.Lookup(tt.path)
			require.Equal(t, tt.found, found)
			require.Equal(t, tt.expected, value)
		})
	}
}

func TestNode_JSON(t *testing.T) {
	t.Parallel()

	node := i18n.Node{
		"one": i18n.Leaf("One"),
		"key": i18n.Node{"subkey": i18n.Leaf("Subkey")},
	}

	raw, err := json.Marshal(node)
	require.NoError(t, err)
	require.JSONEq(t, `{"one":"One","key":{"subkey":"Subkey"}}`, string(raw))

	var decoded i18n.Node
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, node, decoded)

	require.Error(t, json.Unmarshal([]byte(`["not", "an", "object"]`), &decoded))
}
