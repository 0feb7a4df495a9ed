package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default([]string{"A", "B", "C"})
	cfg.Storage.Backend = BackendSQLite
	cfg.Group.Currency = "$"

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, got.Storage.Backend)
	assert.Equal(t, "$", got.Group.Currency)
	assert.Equal(t, []string{"A", "B", "C"}, got.Group.Members)
}

func TestDefaults(t *testing.T) {
	cfg := Default([]string{"A"})

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "₹", cfg.Group.Currency)
	assert.Equal(t, []string{"A"}, cfg.Group.Members)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}
