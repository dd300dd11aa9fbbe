package postgres

import (
	"context"
	"database/sql"
	"errors"

	"resume-builder/internal/shared/storage/kv"
)

// Store implements kv.Store on the resume_slots table.
type Store struct {
	DB *sql.DB
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM resume_slots WHERE slot_key = $1`
	var value string
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&value)
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
VALUES ($1, $2, now())
ON CONFLICT (slot_key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	_, err := s.DB.ExecContext(ctx, query, key, value)
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM resume_slots WHERE slot_key = $1`
	_, err := s.DB.ExecContext(ctx, query, key)
	return err
}

var _ kv.Store = (*Store)(nil)
