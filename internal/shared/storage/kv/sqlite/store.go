package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"resume-builder/internal/shared/storage/kv"
)

// Store implements kv.Store on an embedded SQLite file. The schema comes
// from the sqlite migration set.
type Store struct {
	DB *sql.DB
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM resume_slots WHERE slot_key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", kv.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	const query = `
INSERT INTO resume_slots (slot_key, value, updated_at)
VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
ON CONFLICT (slot_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := s.DB.ExecContext(ctx, query, key, value)
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM resume_slots WHERE slot_key = ?`, key)
	return err
}

var _ kv.Store = (*Store)(nil)
