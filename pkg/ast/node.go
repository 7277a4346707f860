// Package ast defines the document tree built from a scanned token stream.
package ast

import (
	"fmt"
	"strings"
)

// Kind discriminates the node variants.
type Kind int

const (
	ScalarNode Kind = iota + 1
	SequenceNode
	MappingNode
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case ScalarNode:
		return "Scalar"
	case SequenceNode:
		return "Sequence"
	case MappingNode:
		return "Mapping"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Pair is one mapping entry. Mappings hold an explicit ordered pair list so
// that entry order is document order, not an artifact of allocation.
type Pair struct {
	Key   *Node
	Value *Node
}

// Node is one node of a document tree: a scalar, a sequence, or a mapping.
// Exactly one of Value/Items/Pairs is meaningful, per Kind.
type Node struct {
	Kind   Kind
	Value  string  // scalar text
	Quoted bool    // scalar came from a quoted token
	Items  []*Node // sequence entries
	Pairs  []Pair  // mapping entries, in document order
}

// Scalar returns a plain scalar node.
func Scalar(value string) *Node {
	return &Node{Kind: ScalarNode, Value: value}
}

// IsNull reports whether the node is an empty unquoted scalar, the
// representation of an absent key or value.
func (n *Node) IsNull() bool {
	return n.Kind == ScalarNode && !n.Quoted && n.Value == ""
}

// Len returns the entry count of a sequence or mapping, and 0 for scalars.
func (n *Node) Len() int {
	switch n.Kind {
	case SequenceNode:
		return len(n.Items)
	case MappingNode:
		return len(n.Pairs)
	}
	return 0
}

// Get returns the value of the first mapping entry whose key is a scalar
// equal to key, or nil if the node is not a mapping or has no such entry.
func (n *Node) Get(key string) *Node {
	if n.Kind != MappingNode {
		return nil
	}
	for _, p := range n.Pairs {
		if p.Key.Kind == ScalarNode && p.Key.Value == key {
			return p.Value
		}
	}
	return nil
}

// String renders an indented debug dump of the tree.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, indent int) {
	pad := strings.Repeat("  ", indent)
	switch n.Kind {
	case ScalarNode:
		fmt.Fprintf(sb, "%s%q\n", pad, n.Value)
	case SequenceNode:
		fmt.Fprintf(sb, "%s{sequence}\n", pad)
		for _, item := range n.Items {
			item.write(sb, indent+1)
		}
	case MappingNode:
		fmt.Fprintf(sb, "%s{mapping}\n", pad)
		for _, p := range n.Pairs {
			fmt.Fprintf(sb, "%s{key}\n", pad+"  ")
			p.Key.write(sb, indent+2)
			fmt.Fprintf(sb, "%s{value}\n", pad+"  ")
			p.Value.write(sb, indent+2)
		}
	}
}
