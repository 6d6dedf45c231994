package main

import (
	"bytes"
	"testing"

	"propkit/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunCommand_SetGet verifies a value written by set is printed by get
func TestRunCommand_SetGet(t *testing.T) {
	t.Parallel()
	st := store.NewMemoryStore()
	var out bytes.Buffer

	err := runCommand(st, &out, "set", []string{"application/language", "de"})
	require.NoError(t, err)

	err = runCommand(st, &out, "get", []string{"application/language"})
	require.NoError(t, err)
	assert.Equal(t, "de\n", out.String())
}

func TestRunCommand_GetMissing(t *testing.T) {
	t.Parallel()
	st := store.NewMemoryStore()
	var out bytes.Buffer

	err := runCommand(st, &out, "get", []string{"application/language"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, out.String())
}

func TestRunCommand_Delete(t *testing.T) {
	t.Parallel()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set("application/language", []byte("de")))

	err := runCommand(st, &bytes.Buffer{}, "delete", []string{"application/language"})
	require.NoError(t, err)

	exists, err := st.Exists("application/language")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunCommand_Clear(t *testing.T) {
	t.Parallel()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set("application/language", []byte("de")))
	require.NoError(t, st.Set("graphics/showGrid", []byte("true")))

	err := runCommand(st, &bytes.Buffer{}, "clear", nil)
	require.NoError(t, err)

	exists, err := st.Exists("application/language")
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestRunCommand_Usage verifies commands reject wrong argument counts
func TestRunCommand_Usage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		command string
		args    []string
	}{
		{"get without key", "get", nil},
		{"get with extra args", "get", []string{"a", "b"}},
		{"set without value", "set", []string{"a"}},
		{"delete without key", "delete", nil},
		{"clear with args", "clear", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := runCommand(store.NewMemoryStore(), &bytes.Buffer{}, tt.command, tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "usage:")
		})
	}
}

func TestRunCommand_Unknown(t *testing.T) {
	t.Parallel()
	err := runCommand(store.NewMemoryStore(), &bytes.Buffer{}, "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
