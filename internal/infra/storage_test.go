package infra

import (
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStore_RoundTrip(t *testing.T) {
	store, err := NewDocumentStore(t.TempDir())
	require.NoError(t, err)

	assetID := uuid.New()
	rel, size, err := store.Save(assetID, "Invoice.PDF", strings.NewReader("hello world"))
	require.NoError(t, err)
	assert.Equal(t, int64(11), size)
	assert.True(t, strings.HasPrefix(rel, assetID.String()))
	assert.True(t, strings.HasSuffix(rel, ".pdf"), "extension lowercased: %s", rel)

	rc, err := store.Open(rel)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	require.NoError(t, store.Remove(rel))
	_, err = store.Open(rel)
	assert.Error(t, err)

	// Removing twice is fine.
	assert.NoError(t, store.Remove(rel))
}

func TestDocumentStore_UniquePathsPerUpload(t *testing.T) {
	store, err := NewDocumentStore(t.TempDir())
	require.NoError(t, err)

	assetID := uuid.New()
	relA, _, err := store.Save(assetID, "photo.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	relB, _, err := store.Save(assetID, "photo.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, relA, relB)
}
