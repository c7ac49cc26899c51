// Package storage provides the durable key-value store behind the habit
// repository. Each Get/Set is individually atomic; there is no cross-key
// transaction, matching the single-caller model of the app.
package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Store is the persistence contract consumed by the repo layer.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes the value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// RemoveMany deletes the given keys. Missing keys are not an error.
	RemoveMany(ctx context.Context, keys []string) error
}

// SQLite is the Store implementation backed by a local SQLite file.
type SQLite struct {
	db *sql.DB
}

func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

func (s *SQLite) RemoveMany(ctx context.Context, keys []string) error {
	for _, key := range keys {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
			return fmt.Errorf("kv remove %q: %w", key, err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
