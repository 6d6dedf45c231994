package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFileStore_UnsupportedExtension tests rejection of unknown file formats
func TestFileStore_UnsupportedExtension(t *testing.T) {
	_, err := NewFileStore(filepath.Join(t.TempDir(), "settings.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported settings file extension")
}

// TestFileStore_MissingFile tests that a missing file starts an empty store
func TestFileStore_MissingFile(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get("anything")
	assert.Equal(t, ErrNotFound, err)
}

// TestFileStore_JSONRoundTrip tests persisting and reloading a JSON document
func TestFileStore_JSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set("ui/main/lineWidth", []byte("2.5")))
	require.NoError(t, store.Set("net/proxy.host", []byte("localhost")))
	require.NoError(t, store.Set("application/language", []byte("en")))
	require.NoError(t, store.Close())

	// Reopen and verify all keys survived, including the dotted one
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get("ui/main/lineWidth")
	require.NoError(t, err)
	assert.Equal(t, []byte("2.5"), value)

	value, err = reopened.Get("net/proxy.host")
	require.NoError(t, err)
	assert.Equal(t, []byte("localhost"), value)

	value, err = reopened.Get("application/language")
	require.NoError(t, err)
	assert.Equal(t, []byte("en"), value)
}

// TestFileStore_YAMLRoundTrip tests persisting and reloading a YAML document
func TestFileStore_YAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set("mesh/showEdges", []byte("true")))
	require.NoError(t, store.Set("mesh/edgeCount", []byte("42")))
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get("mesh/showEdges")
	require.NoError(t, err)
	assert.Equal(t, []byte("true"), value)

	value, err = reopened.Get("mesh/edgeCount")
	require.NoError(t, err)
	assert.Equal(t, []byte("42"), value)
}

// TestFileStore_YAMLScalarCoercion tests loading hand-edited YAML scalars
func TestFileStore_YAMLScalarCoercion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	require.NoError(t, os.WriteFile(path, []byte("count: 42\nenabled: true\n"), 0644))

	store, err := NewFileStore(path)
	require.NoError(t, err)
	defer store.Close()

	value, err := store.Get("count")
	require.NoError(t, err)
	assert.Equal(t, []byte("42"), value)

	value, err = store.Get("enabled")
	require.NoError(t, err)
	assert.Equal(t, []byte("true"), value)
}

// TestFileStore_InvalidJSON tests rejection of a corrupt document
func TestFileStore_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewFileStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

// TestFileStore_DeletePersists tests that deletions survive a reopen
func TestFileStore_DeletePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("keep", []byte("1")))
	require.NoError(t, store.Set("drop", []byte("2")))
	require.NoError(t, store.Sync())

	require.NoError(t, store.Delete("drop"))
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	_, err = reopened.Get("drop")
	assert.Equal(t, ErrNotFound, err)

	value, err := reopened.Get("keep")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), value)
}

// TestFileStore_SyncWithoutChanges tests that a clean store skips the rewrite
func TestFileStore_SyncWithoutChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	defer store.Close()

	// No writes happened, so no file should appear
	require.NoError(t, store.Sync())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

// TestFileStore_DeterministicOutput tests that saving the same state twice
// produces identical documents
func TestFileStore_DeterministicOutput(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")

	for _, path := range []string{first, second} {
		store, err := NewFileStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Set("b", []byte("2")))
		require.NoError(t, store.Set("a", []byte("1")))
		require.NoError(t, store.Set("c", []byte("3")))
		require.NoError(t, store.Close())
	}

	firstRaw, err := os.ReadFile(first)
	require.NoError(t, err)
	secondRaw, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, firstRaw, secondRaw)
}
