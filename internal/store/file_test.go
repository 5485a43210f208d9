package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosplitz/cosplitz-client/internal/logger"
)

func TestFileStore_SetGetRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	_, ok := s.Get("auth-storage")
	assert.False(t, ok)

	s.Set("auth-storage", []byte(`{"token":"abc"}`))

	value, ok := s.Get("auth-storage")
	require.True(t, ok)
	assert.JSONEq(t, `{"token":"abc"}`, string(value))

	s.Remove("auth-storage")

	_, ok = s.Get("auth-storage")
	assert.False(t, ok)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)
	s.Set("auth-storage", []byte(`{"isAuthenticated":true}`))

	reopened, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	value, ok := reopened.Get("auth-storage")
	require.True(t, ok)
	assert.JSONEq(t, `{"isAuthenticated":true}`, string(value))
}

func TestFileStore_RemovePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)
	s.Set("auth-storage", []byte(`{}`))
	s.Remove("auth-storage")

	reopened, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	_, ok := reopened.Get("auth-storage")
	assert.False(t, ok)
}

func TestFileStore_InMemory(t *testing.T) {
	s, err := NewFileStore(":memory:", logger.Nop())
	require.NoError(t, err)

	s.Set("auth-storage", []byte(`{}`))

	_, ok := s.Get("auth-storage")
	assert.True(t, ok)

	// nothing written to disk
	_, statErr := os.Stat(":memory:")
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileStore_EmptyPathDefaultsToMemory(t *testing.T) {
	s, err := NewFileStore("", logger.Nop())
	require.NoError(t, err)

	s.Set("auth-storage", []byte(`{}`))

	_, ok := s.Get("auth-storage")
	assert.True(t, ok)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := NewFileStore(path, logger.Nop())
	assert.Error(t, err)
}

func TestFileStore_GetReturnsCopy(t *testing.T) {
	s, err := NewFileStore(":memory:", logger.Nop())
	require.NoError(t, err)
	s.Set("auth-storage", []byte(`{"token":"abc"}`))

	value, ok := s.Get("auth-storage")
	require.True(t, ok)
	value[0] = 'X'

	fresh, ok := s.Get("auth-storage")
	require.True(t, ok)
	assert.JSONEq(t, `{"token":"abc"}`, string(fresh))
}
