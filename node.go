package liskvalidator

import (
	"encoding/json"
	"math"
	"math/big"
	"sort"
)

// Node is one schema object: a keyword map as decoded from JSON or YAML.
type Node map[string]any

// AsNode converts decoded schema values into a Node.
func AsNode(v any) (Node, bool) {
	switch t := v.(type) {
	case Node:
		return t, t != nil
	case map[string]any:
		return Node(t), t != nil
	default:
		return nil, false
	}
}

// Has reports whether the keyword is declared, whatever its value.
func (n Node) Has(keyword string) bool {
	_, ok := n[keyword]
	return ok
}

// Child returns the subschema stored under keyword.
func (n Node) Child(keyword string) (Node, bool) { return AsNode(n[keyword]) }

// Int reads an integral numeric keyword such as minLength.
func (n Node) Int(keyword string) (int, bool) {
	v, ok := n[keyword]
	if !ok {
		return 0, false
	}
	return schemaInt(v)
}

// PropertyNames returns the keys of the properties keyword in sorted order.
func (n Node) PropertyNames() []string {
	props, ok := n.Child("properties")
	if !ok {
		return nil
	}
	return sortedKeys(props)
}

// schemaInt converts a schema number (json.Number from JSON, int from YAML,
// float64 from Go literals) to int when it is integral.
func schemaInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		if t < math.MinInt || t > math.MaxInt {
			return 0, false
		}
		return int(t), true
	case uint64:
		if t > math.MaxInt {
			return 0, false
		}
		return int(t), true
	case json.Number:
		i, err := t.Int64()
		if err == nil {
			return schemaInt(i)
		}
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return schemaInt(f)
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) || t < math.MinInt64 || t >= math.MaxInt64 {
			return 0, false
		}
		return schemaInt(int64(t))
	case *big.Int:
		if t == nil || !t.IsInt64() {
			return 0, false
		}
		return schemaInt(t.Int64())
	default:
		if i, ok := toBigInt(v, true); ok && i.IsInt64() {
			return schemaInt(i.Int64())
		}
		return 0, false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
