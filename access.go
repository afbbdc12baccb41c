package conf

import (
	"fmt"

	"github.com/0xalexb/hjarta-conf/tree"
)

// Value constrains typed access to the four primitive types a leaf node can
// hold. The set is closed; there is no coercion between members.
type Value interface {
	int64 | float64 | bool | string
}

// Get returns the value stored at the key. The key must resolve to an
// existing value node of exactly type T: a missing segment or a table at
// the final segment fails with ErrInvalidAccess, a value of a different
// type fails with ErrTypeConflict. Get never mutates the tree.
func Get[T Value](c *Config, key string) (T, error) {
	var zero T

	node, err := c.lookup(key)
	if err != nil {
		return zero, err
	}

	ptr, ok := node.Value().(*T)
	if !ok {
		if node.IsTable() {
			return zero, fmt.Errorf("%w: %q is a table, not a value", ErrInvalidAccess, key)
		}

		return zero, fmt.Errorf("%w: %q holds %s, requested %s",
			ErrTypeConflict, key, node.Kind(), kindOf[T]())
	}

	return *ptr, nil
}

// At returns a mutable reference to the value stored at the key, creating
// it if necessary. Missing intermediate tables are created on the way down
// and a missing leaf is created with the zero value of T. An existing node
// of a different shape or type, at any segment, fails with ErrTypeConflict;
// a node's type is fixed at creation and At never changes it.
//
// Writes through the returned pointer persist in the tree.
//
// Creation proceeds segment by segment and stops at the first failure, so
// tables created for segments before the failing one remain in the tree.
func At[T Value](c *Config, key string) (*T, error) {
	segments, err := splitKey(key)
	if err != nil {
		return nil, err
	}

	last := len(segments) - 1

	parent, err := c.ensure(key, segments[:last])
	if err != nil {
		return nil, err
	}

	node, ok := parent.Child(segments[last])
	if !ok {
		var zero T

		node = newLeaf(zero)

		err = parent.PutChild(segments[last], node)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: inserting value: %w", ErrInvalidAccess, key, err)
		}
	}

	ptr, ok := node.Value().(*T)
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %s, requested %s",
			ErrTypeConflict, key, node.Kind(), kindOf[T]())
	}

	return ptr, nil
}

// Set stores a value at the key, creating the node as At does. It fails
// under exactly the conditions At fails under and leaves an existing
// value's content untouched on failure.
func Set[T Value](c *Config, key string, value T) error {
	ptr, err := At[T](c, key)
	if err != nil {
		return err
	}

	*ptr = value

	return nil
}

// kindOf maps a type parameter to the tree kind a leaf of that type has.
func kindOf[T Value]() tree.Kind {
	switch any(*new(T)).(type) {
	case int64:
		return tree.KindInteger
	case float64:
		return tree.KindFloat
	case bool:
		return tree.KindBool
	default:
		return tree.KindString
	}
}

func newLeaf[T Value](value T) *tree.Node {
	switch v := any(value).(type) {
	case int64:
		return tree.NewInteger(v)
	case float64:
		return tree.NewFloat(v)
	case bool:
		return tree.NewBool(v)
	default:
		return tree.NewString(any(value).(string))
	}
}
