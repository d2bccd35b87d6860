package sqlite

import (
	"context"
	"database/sql"
)

// schema contains the SQL statements to set up a CPI dataset.
// The table is only written by Create; New opens databases read-only.
const schema = `
CREATE TABLE IF NOT EXISTS cpi (
    year INTEGER PRIMARY KEY,
    index_value REAL NOT NULL CHECK (index_value > 0)
);
`

// runMigrations executes the schema setup.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
