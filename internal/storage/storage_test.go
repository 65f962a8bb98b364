package storage

import (
	"bytes"
	"context"
	"io"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey_FreshPerCall(t *testing.T) {
	a := NewKey("albums", "cover.JPG")
	b := NewKey("albums", "cover.JPG")

	assert.NotEqual(t, a, b, "keys are never reused")
	assert.True(t, strings.HasPrefix(a, "albums/"))
	assert.Equal(t, ".jpg", path.Ext(a), "extension is kept, lowercased")
}

func TestNewStorage_UnknownTypeFails(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	require.Error(t, err)
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(Config{BasePath: dir})
	require.NoError(t, err)
	ctx := context.Background()

	key := NewKey("gallery", "photo.png")
	require.NoError(t, store.Save(ctx, key, bytes.NewReader([]byte("png-bytes")), "image/png"))

	exists, err := store.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := store.GetSize(ctx, key)
	require.NoError(t, err)
	assert.EqualValues(t, 9, size)

	rc, err := store.Get(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Delete(ctx, key))
	exists, err = store.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_DeleteMissingIsNoError(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "gallery/never-stored.png"))
}

func TestLocalStorage_URLRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "https://cdn.example.com/files"})
	require.NoError(t, err)

	key := "albums/abc.jpg"
	url, err := store.GetURL(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/files/albums/abc.jpg", url)

	got, ok := store.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, key, got)

	_, ok = store.KeyFromURL("https://elsewhere.example.com/albums/abc.jpg")
	assert.False(t, ok, "foreign URLs must not map to keys")
}

func TestMemoryStorage_URLRoundTrip(t *testing.T) {
	store := NewMemoryStorage("https://cdn.test")
	ctx := context.Background()

	key := NewKey("settings", "banner.webp")
	require.NoError(t, store.Save(ctx, key, bytes.NewReader([]byte("x")), "image/webp"))

	url, err := store.GetURL(ctx, key)
	require.NoError(t, err)

	got, ok := store.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, key, got)
	assert.Equal(t, 1, store.Len())
}
