package i18n

import (
	"encoding/json"
	"fmt"
)

// Value is a node of a translation group: either a Leaf or a Node.
type Value interface {
	value()
}

// Leaf is a translated string.
type Leaf string

// Node maps key segments to nested values. A loaded translation group is
// a Node.
type Node map[string]Value

func (Leaf) value() {}
func (Node) value() {}

// NodeFromMap converts decoded resource data into a Node. Strings become
// leaves, string-keyed maps become nested nodes; anything else (numbers,
// booleans, lists, nulls) is dropped.
func NodeFromMap(data map[string]any) Node {
	node := make(Node, len(data))
	for key, raw := range data {
		if v, ok := toValue(raw); ok {
			node[key] = v
		}
	}
	return node
}

func toValue(raw any) (Value, bool) {
	switch v := raw.(type) {
	case string:
		return Leaf(v), true
	case map[string]any:
		return NodeFromMap(v), true
	case map[string]string:
		node := make(Node, len(v))
		for key, s := range v {
			node[key] = Leaf(s)
		}
		return node, true
	case map[any]any:
		converted := make(map[string]any, len(v))
		for key, item := range v {
			if s, ok := scalarKey(key); ok {
				converted[s] = item
			}
		}
		return NodeFromMap(converted), true
	default:
		return nil, false
	}
}

// scalarKey renders a decoded mapping key as a path segment. YAML keys
// such as 404 or true address the same entry as "404" or "true".
func scalarKey(key any) (string, bool) {
	switch k := key.(type) {
	case string:
		return k, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
		return fmt.Sprint(k), true
	default:
		return "", false
	}
}

// Lookup descends the node along path and returns the string found at its
// end. It reports false when a segment is missing, when a leaf is reached
// before the path is exhausted, or when the path ends on a node.
func (n Node) Lookup(path []string) (string, bool) {
	var current Value = n
	for _, segment := range path {
		node, ok := current.(Node)
		if !ok {
			return "", false
		}
		if current, ok = node[segment]; !ok {
			return "", false
		}
	}

	switch v := current.(type) {
	case Leaf:
		return string(v), true
	default:
		return "", false
	}
}

// ToMap converts the node back into plain maps and strings.
func (n Node) ToMap() map[string]any {
	out := make(map[string]any, len(n))
	for key, v := range n {
		switch v := v.(type) {
		case Leaf:
			out[key] = string(v)
		case Node:
			out[key] = v.ToMap()
		}
	}
	return out
}

// MarshalJSON encodes the node as a nested JSON object.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.ToMap())
}

// UnmarshalJSON decodes a nested JSON object into the node.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding node: %w", err)
	}
	*n = NodeFromMap(raw)
	return nil
}
