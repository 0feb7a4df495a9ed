package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSet(t *testing.T) {
	m := NewMemory()

	_, ok, err := m.Get("pg_members")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set("pg_members", `["A"]`))
	v, ok, err := m.Get("pg_members")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["A"]`, v)

	require.NoError(t, m.Set("pg_members", `["A","B"]`))
	v, _, _ = m.Get("pg_members")
	assert.Equal(t, `["A","B"]`, v)
}

func TestFile_MissingKeyIsAbsent(t *testing.T) {
	f := NewFile(t.TempDir())

	_, ok, err := f.Get("pg_expenses")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(dir)

	require.NoError(t, f.Set("pg_members", `["Darshan"]`))

	v, ok, err := f.Get("pg_members")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["Darshan"]`, v)

	// One file per key.
	data, err := os.ReadFile(filepath.Join(dir, "pg_members.json"))
	require.NoError(t, err)
	assert.Equal(t, `["Darshan"]`, string(data))
}

func TestFile_CreatesDataDirOnWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	f := NewFile(dir)

	require.NoError(t, f.Set("pg_expenses", "[]"))

	_, err := os.Stat(dir)
	require.NoError(t, err)
}

func TestSQLite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splittab.db")
	s, err := NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get("pg_members")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("pg_members", `["A"]`))
	require.NoError(t, s.Set("pg_members", `["A","B"]`))

	v, ok, err := s.Get("pg_members")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["A","B"]`, v)
}

func TestSQLite_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splittab.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("pg_expenses", "[]"))
	require.NoError(t, s.Close())

	s2, err := NewSQLite(path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.Get("pg_expenses")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}
