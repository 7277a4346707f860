package yaml

import (
	"strconv"

	"github.com/KingKiller100/yaml/pkg/ast"
)

// NodeToInterface converts a document tree into plain Go values: mappings
// become map[string]interface{}, sequences []interface{}, and scalars are
// coerced to bool, int64, float64, nil, or string.
//
// Mapping conversion drops document order (Go maps are unordered); use the
// node's Pairs directly when order matters. Non-scalar mapping keys are
// rendered through the node's debug form.
func NodeToInterface(n *ast.Node) interface{} {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case ast.ScalarNode:
		return scalarValue(n)
	case ast.SequenceNode:
		items := make([]interface{}, 0, len(n.Items))
		for _, item := range n.Items {
			items = append(items, NodeToInterface(item))
		}
		return items
	case ast.MappingNode:
		m := make(map[string]interface{}, len(n.Pairs))
		for _, p := range n.Pairs {
			key := p.Key.Value
			if p.Key.Kind != ast.ScalarNode {
				key = p.Key.String()
			}
			m[key] = NodeToInterface(p.Value)
		}
		return m
	}
	return nil
}

// scalarValue coerces an unquoted scalar to its natural Go type. Quoted
// scalars are always strings.
func scalarValue(n *ast.Node) interface{} {
	if n.Quoted {
		return n.Value
	}
	switch n.Value {
	case "", "~", "null", "Null", "NULL":
		return nil
	case "true", "True", "TRUE":
		return true
	case "false", "False", "FALSE":
		return false
	}
	if i, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
		return f
	}
	return n.Value
}
