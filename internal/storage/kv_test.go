package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	st, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	_, ok, err := st.Get(ctx, "habits")
	require.NoError(t, err)
	assert.False(t, ok, "missing key should report absent")

	require.NoError(t, st.Set(ctx, "habits", `[]`))
	v, ok, err := st.Get(ctx, "habits")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)

	require.NoError(t, st.Set(ctx, "habits", `[{"id":"x"}]`))
	v, _, err = st.Get(ctx, "habits")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"x"}]`, v, "set should replace the previous value")
}

func TestSQLiteRemoveMany(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	require.NoError(t, st.Set(ctx, "a", "1"))
	require.NoError(t, st.Set(ctx, "b", "2"))

	require.NoError(t, st.RemoveMany(ctx, []string{"a", "b", "never-existed"}))

	_, ok, err := st.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = st.Get(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	_, ok, err := st.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.Set(ctx, "k", "v"))
	v, ok, err := st.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, st.RemoveMany(ctx, []string{"k"}))
	_, ok, err = st.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
