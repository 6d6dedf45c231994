package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemoryStore_SetGet tests basic set and get operations
func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	key := "test_key"
	value := []byte("test_value")

	// Set value
	err := store.Set(key, value)
	require.NoError(t, err)

	// Get value
	retrieved, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, value, retrieved)
}

// TestMemoryStore_GetNonExistent tests getting a non-existent key
func TestMemoryStore_GetNonExistent(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	_, err := store.Get("non_existent")
	assert.Equal(t, ErrNotFound, err)
}

// TestMemoryStore_Overwrite tests overwriting an existing key
func TestMemoryStore_Overwrite(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	key := "overwrite_key"

	err := store.Set(key, []byte("first"))
	require.NoError(t, err)
	err = store.Set(key, []byte("second"))
	require.NoError(t, err)

	retrieved, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), retrieved)
}

// TestMemoryStore_Delete tests delete operation
func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	key := "delete_key"

	// Set value
	err := store.Set(key, []byte("delete_value"))
	require.NoError(t, err)

	// Delete
	err = store.Delete(key)
	require.NoError(t, err)

	// Verify deleted
	_, err = store.Get(key)
	assert.Equal(t, ErrNotFound, err)

	// Deleting again is not an error
	err = store.Delete(key)
	assert.NoError(t, err)
}

// TestMemoryStore_Exists tests exists operation
func TestMemoryStore_Exists(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	key := "exists_key"

	// Check non-existent
	exists, err := store.Exists(key)
	require.NoError(t, err)
	assert.False(t, exists)

	// Set value
	err = store.Set(key, []byte("exists_value"))
	require.NoError(t, err)

	// Check existing
	exists, err = store.Exists(key)
	require.NoError(t, err)
	assert.True(t, exists)
}

// TestMemoryStore_Clear tests clearing all entries
func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	for _, key := range []string{"key1", "key2", "key3"} {
		err := store.Set(key, []byte(key+"_value"))
		require.NoError(t, err)
	}

	err := store.Clear()
	require.NoError(t, err)

	for _, key := range []string{"key1", "key2", "key3"} {
		_, err := store.Get(key)
		assert.Equal(t, ErrNotFound, err)
	}
}

// TestMemoryStore_Sync tests that sync is a no-op
func TestMemoryStore_Sync(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	err := store.Set("key", []byte("value"))
	require.NoError(t, err)

	err = store.Sync()
	require.NoError(t, err)

	retrieved, err := store.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), retrieved)
}
