package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromMap(t *testing.T, m map[string]any) *Node {
	t.Helper()

	node, err := FromMap(m)
	require.NoError(t, err)

	return node
}

func TestMerge_IntoEmpty(t *testing.T) {
	t.Parallel()

	dst := NewTable()
	src := mustFromMap(t, map[string]any{
		"server": map[string]any{"port": int64(8080), "host": "localhost"},
		"debug":  true,
	})

	err := Merge(dst, src)
	require.NoError(t, err)

	server, ok := dst.Child("server")
	require.True(t, ok)
	assert.True(t, server.IsTable())
	assert.Equal(t, 2, server.Len())

	port, ok := server.Child("port")
	require.True(t, ok)
	assert.Equal(t, int64(8080), *port.Value().(*int64))
}

func TestMerge_DisjointTopLevel(t *testing.T) {
	t.Parallel()

	dst := mustFromMap(t, map[string]any{"a": int64(1)})
	src := mustFromMap(t, map[string]any{"b": int64(2)})

	err := Merge(dst, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, dst.Names())
}

func TestMerge_RecursiveTables(t *testing.T) {
	t.Parallel()

	dst := mustFromMap(t, map[string]any{"a": map[string]any{"b": int64(1)}})
	src := mustFromMap(t, map[string]any{"a": map[string]any{"c": int64(2)}})

	err := Merge(dst, src)
	require.NoError(t, err)

	a, ok := dst.Child("a")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "c"}, a.Names())
}

func TestMerge_ValueCollision(t *testing.T) {
	t.Parallel()

	dst := mustFromMap(t, map[string]any{"a": map[string]any{"b": int64(1)}})
	src := mustFromMap(t, map[string]any{"a": map[string]any{"b": int64(2)}})

	err := Merge(dst, src)
	require.ErrorIs(t, err, ErrTypeConflict)
	assert.Contains(t, err.Error(), `"a.b"`)

	// The existing value survives the failed merge.
	a, _ := dst.Child("a")
	b, _ := a.Child("b")
	assert.Equal(t, int64(1), *b.Value().(*int64))
}

func TestMerge_ShapeCollision(t *testing.T) {
	t.Parallel()

	dst := mustFromMap(t, map[string]any{"a": int64(1)})
	src := mustFromMap(t, map[string]any{"a": map[string]any{"b": int64(2)}})

	err := Merge(dst, src)
	require.ErrorIs(t, err, ErrTypeConflict)

	a, _ := dst.Child("a")
	assert.False(t, a.IsTable())
}

func TestMerge_StopsAtFirstConflict(t *testing.T) {
	t.Parallel()

	dst := mustFromMap(t, map[string]any{"b": int64(1)})
	src := mustFromMap(t, map[string]any{
		"a": int64(10),
		"b": int64(2),
		"c": int64(30),
	})

	err := Merge(dst, src)
	require.ErrorIs(t, err, ErrTypeConflict)

	// Names merge in sorted order: "a" lands before the conflict on "b",
	// "c" is never reached.
	_, ok := dst.Child("a")
	assert.True(t, ok)
	_, ok = dst.Child("c")
	assert.False(t, ok)
}

func TestMerge_NonTableArguments(t *testing.T) {
	t.Parallel()

	err := Merge(NewInteger(1), NewTable())
	require.ErrorIs(t, err, ErrNotTable)

	err = Merge(NewTable(), NewString("x"))
	require.ErrorIs(t, err, ErrNotTable)
}
