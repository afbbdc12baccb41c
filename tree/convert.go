package tree

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnsupportedValue is returned when a generic document contains a value
// outside the {table, integer, float, bool, string} model, such as an array
// or a datetime.
var ErrUnsupportedValue = errors.New("unsupported value")

// FromMap converts a generic decoded document into a table node. Nested
// maps become tables; Go integer, float, bool and string values become the
// matching leaf kinds. Anything else fails with ErrUnsupportedValue naming
// the offending path, and no partial result is returned.
func FromMap(m map[string]any) (*Node, error) {
	return fromMap(m, nil)
}

func fromMap(m map[string]any, path []string) (*Node, error) {
	table := NewTable()

	for name, value := range m {
		child, err := fromValue(value, append(path, name))
		if err != nil {
			return nil, err
		}

		table.children[name] = child
	}

	return table, nil
}

func fromValue(value any, path []string) (*Node, error) {
	switch v := value.(type) {
	case map[string]any:
		return fromMap(v, path)
	case map[any]any:
		return fromKeyedMap(v, path)
	case int:
		return NewInteger(int64(v)), nil
	case int64:
		return NewInteger(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %q: integer overflows int64", ErrUnsupportedValue, joinPath(path))
		}

		return NewInteger(int64(v)), nil
	case float64:
		return NewFloat(v), nil
	case bool:
		return NewBool(v), nil
	case string:
		return NewString(v), nil
	default:
		return nil, fmt.Errorf("%w: %q: %T", ErrUnsupportedValue, joinPath(path), value)
	}
}

// fromKeyedMap handles decoders that produce map[any]any for mappings.
// Non-string keys have no representation in the tree.
func fromKeyedMap(m map[any]any, path []string) (*Node, error) {
	table := NewTable()

	for key, value := range m {
		name, ok := key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q: non-string key %v", ErrUnsupportedValue, joinPath(path), key)
		}

		child, err := fromValue(value, append(path, name))
		if err != nil {
			return nil, err
		}

		table.children[name] = child
	}

	return table, nil
}

func joinPath(path []string) string {
	return strings.Join(path, ".")
}
