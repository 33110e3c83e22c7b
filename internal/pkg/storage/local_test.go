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

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	key, err := store.Upload(ctx, strings.NewReader("jpeg-bytes"), "attendance/EMP-1/photo.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "attendance/EMP-1/photo.jpg", key)

	content, err := os.ReadFile(filepath.Join(dir, "attendance", "EMP-1", "photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))

	assert.Equal(t, "http://localhost:8080/uploads/attendance/EMP-1/photo.jpg", store.URL(key))

	back, err := store.Key(store.URL(key))
	require.NoError(t, err)
	assert.Equal(t, key, back)

	_, err = store.Key("http://elsewhere/attendance/EMP-1/photo.jpg")
	assert.ErrorIs(t, err, ErrInvalidPath)

	require.NoError(t, store.Delete(ctx, key))
	_, err = os.Stat(filepath.Join(dir, key))
	assert.True(t, os.IsNotExist(err))

	// Deleting twice is fine.
	assert.NoError(t, store.Delete(ctx, key))
}

func TestLocalStorage_TraversalStaysInsideBase(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewLocalStorage(filepath.Join(dir, "uploads"), "http://localhost/uploads")
	require.NoError(t, err)

	key, err := store.Upload(ctx, strings.NewReader("x"), "../../escape.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "escape.txt", key)

	_, err = os.Stat(filepath.Join(dir, "uploads", "escape.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "escape.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_EmptyPath(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), strings.NewReader("x"), "", "text/plain")
	assert.ErrorIs(t, err, ErrInvalidPath)
}
