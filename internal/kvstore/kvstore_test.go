package kvstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/dayledger/internal/db"
	"github.com/saadjs/dayledger/internal/kvstore"
)

func newSQLiteStore(t *testing.T) *kvstore.SQLite {
	t.Helper()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "dayledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })
	require.NoError(t, db.ApplyMigrations(sqldb))
	return kvstore.NewSQLite(sqldb)
}

func TestStores(t *testing.T) {
	stores := map[string]kvstore.Store{
		"memory": kvstore.NewMemory(),
		"sqlite": newSQLiteStore(t),
	}
	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set("greeting", []byte("hello")))
			require.NoError(t, s.Set("greeting", []byte("hi")))
			v, ok, err := s.Get("greeting")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "hi", string(v))
		})
	}
}

func TestJSONHelpers(t *testing.T) {
	s := kvstore.NewMemory()
	type day struct {
		Date  string  `json:"date"`
		Total float64 `json:"total"`
	}

	var got day
	ok, err := kvstore.GetJSON(s, "day", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kvstore.SetJSON(s, "day", day{Date: "2024-01-15", Total: 500}))
	ok, err = kvstore.GetJSON(s, "day", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, day{Date: "2024-01-15", Total: 500}, got)

	require.NoError(t, s.Set("day", []byte("{not json")))
	_, err = kvstore.GetJSON(s, "day", &got)
	assert.Error(t, err)
}

func TestSQLiteKeys(t *testing.T) {
	s := newSQLiteStore(t)
	require.NoError(t, s.Set("b", []byte("2")))
	require.NoError(t, s.Set("a", []byte("1")))
	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	_, _, err = s.Get("  ")
	assert.Error(t, err)
}
