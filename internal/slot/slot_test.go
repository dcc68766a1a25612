package slot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runKVContract exercises the behaviour every backend must share.
func runKVContract(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := kv.Get(ctx, "absent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "k", []byte(`[1,2]`)))
		got, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[1,2]`), got)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "k", []byte(`first`)))
		require.NoError(t, kv.Set(ctx, "k", []byte(`second`)))
		got, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte(`second`), got)
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "app:a", []byte(`a`)))
		require.NoError(t, kv.Set(ctx, "app:b", []byte(`b`)))
		got, err := kv.Get(ctx, "app:a")
		require.NoError(t, err)
		assert.Equal(t, []byte(`a`), got)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, kv.Ping(ctx))
	})
}

func TestMemorySlot(t *testing.T) {
	runKVContract(t, NewMemorySlot())
}

func TestMemorySlot_CopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemorySlot()

	value := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestFileSlot(t *testing.T) {
	f, err := NewFileSlot(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	runKVContract(t, f)
}

func TestFileSlot_FileNameAndNoLeftovers(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFileSlot(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set(context.Background(), DefaultKey, []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "booktracker_books.json", entries[0].Name())
}

func TestFileSlot_CancelledContext(t *testing.T) {
	f, err := NewFileSlot(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, f.Set(ctx, "k", []byte("v")), context.Canceled)
}

func TestSQLiteSlot(t *testing.T) {
	s, err := OpenSQLiteSlot(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	runKVContract(t, s)
}

func TestSQLiteSlot_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "books.db")

	s, err := OpenSQLiteSlot(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, DefaultKey, []byte(`[]`)))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLiteSlot(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}
