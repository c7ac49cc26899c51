package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate applies the schema. The store is a single kv table; the
// record shapes live in the JSON values, so schema evolution happens in
// the repo layer, not here.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
