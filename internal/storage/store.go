// Package storage provides abstractions for loading the static CPI dataset.
package storage

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/mmynk/realwage/internal/models"
)

// Source defines the interface for reading CPI records.
// This abstraction allows swapping the dataset backend (CSV, SQLite)
// without changing the service layer. Sources are read once at startup.
type Source interface {
	// Load returns every CPI record in the dataset.
	// Records are not required to be sorted; validation happens in the calculator.
	Load(ctx context.Context) ([]models.CPIRecord, error)

	// Name describes the source for logs.
	Name() string

	// Close releases any resources held by the source.
	Close() error
}

// Kind identifies a Source backend.
type Kind string

const (
	KindEmbedded Kind = "embedded"
	KindCSV      Kind = "csv"
	KindSQLite   Kind = "sqlite"
)

// KindForPath picks a backend from a dataset path.
// An empty path selects the embedded dataset.
func KindForPath(path string) Kind {
	if path == "" {
		return KindEmbedded
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	default:
		return KindCSV
	}
}
