package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitKey_Valid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		key      string
		segments []string
	}{
		{key: "a", segments: []string{"a"}},
		{key: "a.b", segments: []string{"a", "b"}},
		{key: "table.nested.value", segments: []string{"table", "nested", "value"}},
		{key: "with space.x", segments: []string{"with space", "x"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.key, func(t *testing.T) {
			t.Parallel()

			segments, err := splitKey(tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.segments, segments)

			// Splitting and rejoining reproduces the original key.
			assert.Equal(t, tc.key, joinSegments(segments))
		})
	}
}

func TestSplitKey_Malformed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		key  string
	}{
		{name: "empty key", key: ""},
		{name: "leading delimiter", key: ".a"},
		{name: "trailing delimiter", key: "a."},
		{name: "doubled delimiter", key: "a..b"},
		{name: "only delimiter", key: "."},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			segments, err := splitKey(tc.key)
			require.ErrorIs(t, err, ErrMalformedKey)
			assert.Nil(t, segments)
		})
	}
}
