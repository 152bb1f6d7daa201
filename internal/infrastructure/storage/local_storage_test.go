package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLogoStorage_PutAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalLogoStorage(dir, "/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := store.Put(ctx, "1700000000000-abc123.png", "image/png", strings.NewReader("png-bytes"), 9)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1700000000000-abc123.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "1700000000000-abc123.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(dir, "1700000000000-abc123.png"))
	assert.True(t, os.IsNotExist(err))

	t.Run("deleting twice is fine", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, url))
	})
}

func TestLocalLogoStorage_RejectsUnsafeNames(t *testing.T) {
	store, err := NewLocalLogoStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{"", "../escape.png", "a/b.png", ".hidden"} {
		_, err := store.Put(ctx, name, "image/png", strings.NewReader("x"), 1)
		assert.Error(t, err, name)
	}
}

func TestLocalLogoStorage_SizeMismatch(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalLogoStorage(dir, "/uploads")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "short.png", "image/png", strings.NewReader("abc"), 10)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "partial file must be removed")
}

func TestLocalLogoStorage_DeleteIgnoresForeignURLs(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "keep.png")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o644))

	store, err := NewLocalLogoStorage(dir, "/uploads")
	require.NoError(t, err)

	for _, url := range []string{"https://cdn.example.com/keep.png", "/other/keep.png", "/uploads/../keep.png"} {
		assert.NoError(t, store.Delete(context.Background(), url))
	}
	_, err = os.Stat(keep)
	assert.NoError(t, err)
}
