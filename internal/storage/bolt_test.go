package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestBolt(t *testing.T) *BoltStorage {
	t.Helper()

	db, err := OpenBolt(filepath.Join(t.TempDir(), "test.bolt"))
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})

	return db
}

func TestBolt_GetItemMissing(t *testing.T) {
	db := setupTestBolt(t)

	value, ok, err := db.GetItem("missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestBolt_SetAndGetItem(t *testing.T) {
	db := setupTestBolt(t)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "catalog slot", key: "@GitCollection:repositories", value: `[{"full_name":"facebook/react"}]`},
		{name: "unicode value", key: "msg", value: "Informe o username/repositório"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, db.SetItem(tt.key, tt.value))

			got, ok, err := db.GetItem(tt.key)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestBolt_ReopenKeepsValues(t *testing.T) {
	dir := t.TempDir()

	first, err := NewBoltStorage(dir)
	require.NoError(t, err)
	require.NoError(t, first.SetItem("slot", "[]"))
	require.NoError(t, first.Close())

	second, err := NewBoltStorage(dir)
	require.NoError(t, err)
	defer second.Close()

	value, ok, err := second.GetItem("slot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
	assert.Equal(t, filepath.Join(dir, boltFile), second.Path())
}
