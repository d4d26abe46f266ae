package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-catalog/internal/model"
)

func TestNew_InMemory(t *testing.T) {
	db, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	assert.True(t, db.Migrator().HasTable(&model.KVEntry{}))
	assert.NoError(t, HealthCheck(context.Background(), db))
}

func TestNew_FilePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.db")

	db, err := New(path)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.KVEntry{Key: "recipes", Value: "[]"}).Error)
	require.NoError(t, Close(db))

	db, err = New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var entry model.KVEntry
	require.NoError(t, db.First(&entry, "entry_key = ?", "recipes").Error)
	assert.Equal(t, "[]", entry.Value)
}
