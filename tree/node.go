package tree

import (
	"errors"
	"slices"
)

// ErrNotTable is returned when a child operation is applied to a value node.
var ErrNotTable = errors.New("node is not a table")

// ErrDuplicateChild is returned when inserting a child under a name that is already taken.
var ErrDuplicateChild = errors.New("child already exists")

// Kind identifies the shape of a Node: a table of children or one of the
// four primitive value kinds.
type Kind int

const (
	KindTable Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindString
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "<unknown kind>"
	}
}

// Node is the atomic unit of the configuration tree. A table node owns a
// mapping from segment names to children; a value node owns exactly one
// primitive. The zero Node is not usable; use the constructors.
type Node struct {
	kind     Kind
	children map[string]*Node
	value    any // *int64, *float64, *bool or *string; nil for tables
}

// NewTable creates an empty table node.
func NewTable() *Node {
	return &Node{kind: KindTable, children: make(map[string]*Node)}
}

// NewInteger creates an integer value node.
func NewInteger(v int64) *Node {
	return &Node{kind: KindInteger, value: &v}
}

// NewFloat creates a float value node.
func NewFloat(v float64) *Node {
	return &Node{kind: KindFloat, value: &v}
}

// NewBool creates a bool value node.
func NewBool(v bool) *Node {
	return &Node{kind: KindBool, value: &v}
}

// NewString creates a string value node.
func NewString(v string) *Node {
	return &Node{kind: KindString, value: &v}
}

// Kind returns the node's shape tag.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsTable reports whether the node is a table.
func (n *Node) IsTable() bool {
	return n.kind == KindTable
}

// Child returns the named child of a table node. It reports false for a
// missing name and for value nodes, which have no children.
func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.children[name]

	return child, ok
}

// PutChild inserts a child under the given name. The receiver must be a
// table and the name must be free; the child's shape is never inspected.
func (n *Node) PutChild(name string, child *Node) error {
	if !n.IsTable() {
		return ErrNotTable
	}

	if _, ok := n.children[name]; ok {
		return ErrDuplicateChild
	}

	n.children[name] = child

	return nil
}

// Len returns the number of direct children. It is zero for value nodes.
func (n *Node) Len() int {
	return len(n.children)
}

// Names returns the names of all direct children in sorted order.
func (n *Node) Names() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Value returns the pointer box holding the node's primitive: *int64,
// *float64, *bool or *string depending on the kind. Tables return nil.
// Writes through the pointer persist in the tree.
func (n *Node) Value() any {
	return n.value
}
