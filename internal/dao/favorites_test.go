package dao

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteStoreToggle(t *testing.T) {
	s := NewFavoriteStore("")

	assert.True(t, s.Toggle("LND-10"))
	assert.True(t, s.Toggle("LND-9"))
	assert.True(t, s.Has("LND-10"))
	assert.Equal(t, []string{"LND-9", "LND-10"}, s.IDs())

	assert.False(t, s.Toggle("LND-10"))
	assert.False(t, s.Has("LND-10"))
	assert.NoError(t, s.Save())
}

func TestFavoriteStorePersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "share", "favorites.yaml")
	s, err := LoadFavorites(path)
	require.NoError(t, err)
	assert.Empty(t, s.IDs())

	s.Toggle("d1")
	s.Toggle("d2")
	require.NoError(t, s.Save())

	s2, err := LoadFavorites(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2"}, s2.IDs())
}

func TestFavoriteStoreBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.yaml")
	require.NoError(t, os.WriteFile(path, []byte("devices: {"), 0o600))

	_, err := LoadFavorites(path)
	assert.Error(t, err)
}
