package archive

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFetchRoundTrip(t *testing.T) {
	store, err := NewDirStore(t.TempDir())
	require.NoError(t, err)

	payload := []byte("packed entrants image")
	uri, err := store.Upload(context.Background(), payload)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "archive://"))

	fetched, err := store.Fetch(context.Background(), uri)
	require.NoError(t, err)
	assert.Equal(t, payload, fetched)
}

func TestUploadIsContentAddressed(t *testing.T) {
	store, err := NewDirStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Upload(context.Background(), []byte("same"))
	require.NoError(t, err)
	second, err := store.Upload(context.Background(), []byte("same"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := store.Upload(context.Background(), []byte("different"))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestFetchRejectsBadURI(t *testing.T) {
	store, err := NewDirStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Fetch(context.Background(), "http://elsewhere/thing")
	assert.Error(t, err)

	_, err = store.Fetch(context.Background(), "archive://../escape")
	assert.Error(t, err)

	_, err = store.Fetch(context.Background(), "archive://0000000000000000000000000000000000000000000000000000000000000000")
	assert.Error(t, err)
}

func TestFetchDetectsTampering(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDirStore(dir)
	require.NoError(t, err)

	uri, err := store.Upload(context.Background(), []byte("authentic"))
	require.NoError(t, err)

	name := strings.TrimPrefix(uri, "archive://")
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("forged"), 0644))

	_, err = store.Fetch(context.Background(), uri)
	assert.ErrorContains(t, err, "content verification")
}
