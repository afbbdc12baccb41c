package conf

import (
	"fmt"
	"strings"
)

// keyDelimiter separates the segments of a hierarchical key. There is no
// escaping mechanism; a segment name cannot contain the delimiter.
const keyDelimiter = "."

// splitKey decomposes a dotted key into its ordered segment names. An empty
// key, or a key with a leading, trailing or doubled delimiter, fails with
// ErrMalformedKey before any tree walk takes place.
func splitKey(key string) ([]string, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrMalformedKey)
	}

	segments := strings.Split(key, keyDelimiter)

	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: %q contains an empty segment", ErrMalformedKey, key)
		}
	}

	return segments, nil
}

func joinSegments(segments []string) string {
	return strings.Join(segments, keyDelimiter)
}
