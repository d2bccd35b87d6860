package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/realwage/internal/models"
)

func TestSQLiteSource(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "cpi.db")

	records := []models.CPIRecord{
		{Year: 2020, IndexValue: 108.7},
		{Year: 2015, IndexValue: 100.0},
		{Year: 2022, IndexValue: 121.7},
	}
	require.NoError(t, Create(ctx, dbPath, records))

	t.Run("Load returns records ordered by year", func(t *testing.T) {
		src, err := New(dbPath)
		require.NoError(t, err)
		defer src.Close()

		got, err := src.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.CPIRecord{
			{Year: 2015, IndexValue: 100.0},
			{Year: 2020, IndexValue: 108.7},
			{Year: 2022, IndexValue: 121.7},
		}, got)
		assert.Equal(t, dbPath, src.Name())
	})

	t.Run("source is read-only", func(t *testing.T) {
		src, err := New(dbPath)
		require.NoError(t, err)
		defer src.Close()

		_, err = src.db.ExecContext(ctx, "INSERT INTO cpi (year, index_value) VALUES (2030, 150)")
		assert.Error(t, err)
	})

	t.Run("Create refuses existing database", func(t *testing.T) {
		err := Create(ctx, dbPath, records)
		assert.Error(t, err)
	})
}

func TestCreateRejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate year", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "dup.db")
		err := Create(ctx, dbPath, []models.CPIRecord{
			{Year: 2015, IndexValue: 100},
			{Year: 2015, IndexValue: 101},
		})
		assert.Error(t, err)
	})

	t.Run("non-positive index", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "zero.db")
		err := Create(ctx, dbPath, []models.CPIRecord{{Year: 2015, IndexValue: 0}})
		assert.Error(t, err)
	})
}

func TestNewMissingFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing.db")

	_, err := New(dbPath)
	require.Error(t, err)

	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr), "New must not create the database file")
}

func TestLoadWithoutCPITable(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "empty.db")
	require.NoError(t, os.WriteFile(dbPath, nil, 0o644))

	src, err := New(dbPath)
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Load(ctx)
	assert.Error(t, err)
}
