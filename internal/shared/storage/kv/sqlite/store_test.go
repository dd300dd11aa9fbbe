package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/kv"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	conn, err := db.ConnectSQLite(ctx, filepath.Join(t.TempDir(), "kv.db"), db.DefaultSQLiteOptions())
	if err != nil {
		t.Fatalf("ConnectSQLite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if err := db.RunMigrations(ctx, conn, db.SQLite); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	return &Store{DB: conn}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	if _, err := s.Get(ctx, "resumeData:a"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Set(ctx, "resumeData:a", "first"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "resumeData:a", "second"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if err := s.Set(ctx, "resumeData:b", "other"); err != nil {
		t.Fatalf("Set other: %v", err)
	}

	got, err := s.Get(ctx, "resumeData:a")
	if err != nil || got != "second" {
		t.Fatalf("expected second, got %q (%v)", got, err)
	}

	if err := s.Delete(ctx, "resumeData:a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "resumeData:a"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if got, _ := s.Get(ctx, "resumeData:b"); got != "other" {
		t.Fatalf("unrelated key changed: %q", got)
	}
}
