// Package sqlite provides a SQLite-backed implementation of the storage.Source interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/realwage/internal/models"
	"github.com/mmynk/realwage/internal/storage"
)

// Ensure SQLiteSource implements storage.Source
var _ storage.Source = (*SQLiteSource)(nil)

// SQLiteSource reads CPI records from the cpi table of a SQLite database.
type SQLiteSource struct {
	db   *sql.DB
	path string
}

// New opens the database at dbPath read-only.
// The file must already exist; a missing file is an error rather than a new empty database.
func New(dbPath string) (*SQLiteSource, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("failed to open CPI database: %w", err)
	}

	db, err := sql.Open("sqlite", readOnlyDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SQLiteSource{db: db, path: dbPath}, nil
}

// Name returns the database path.
func (s *SQLiteSource) Name() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Load retrieves all CPI records ordered by year.
func (s *SQLiteSource) Load(ctx context.Context) ([]models.CPIRecord, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT year, index_value FROM cpi ORDER BY year")
	if err != nil {
		return nil, fmt.Errorf("failed to query cpi table: %w", err)
	}
	defer rows.Close()

	var records []models.CPIRecord
	for rows.Next() {
		var r models.CPIRecord
		if err := rows.Scan(&r.Year, &r.IndexValue); err != nil {
			return nil, fmt.Errorf("failed to scan cpi row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cpi rows: %w", err)
	}

	return records, nil
}

// Create writes records into a new database at dbPath.
// It creates the parent directories and refuses to touch an existing file.
func Create(ctx context.Context, dbPath string, records []models.CPIRecord) error {
	if _, err := os.Stat(dbPath); err == nil {
		return fmt.Errorf("database already exists: %s", dbPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat database: %w", err)
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := runMigrations(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, r := range records {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO cpi (year, index_value) VALUES (?, ?)",
			r.Year, r.IndexValue,
		)
		if err != nil {
			return fmt.Errorf("failed to insert cpi for year %d: %w", r.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// readOnlyDSN builds a SQLite URI that opens path without write access.
func readOnlyDSN(path string) string {
	u := url.URL{Scheme: "file", Path: path, RawQuery: "mode=ro"}
	return u.String()
}
