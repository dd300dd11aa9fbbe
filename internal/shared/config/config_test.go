package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "dev" {
		t.Fatalf("unexpected defaults: port=%q env=%q", cfg.Port, cfg.Env)
	}
	if cfg.StorageBackend != "memory" || cfg.ObjectStoreType != "local" {
		t.Fatalf("unexpected backends: %q %q", cfg.StorageBackend, cfg.ObjectStoreType)
	}
	if cfg.PersistSlot != "resumeData" {
		t.Fatalf("expected default slot, got %q", cfg.PersistSlot)
	}
	if cfg.ExportTimeout != 60*time.Second {
		t.Fatalf("expected 60s export timeout, got %v", cfg.ExportTimeout)
	}
}

func TestLoadNormalizesValues(t *testing.T) {
	t.Setenv("ENV", "PROD")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORAGE_BACKEND", " SQLite3 ")
	t.Setenv("OBJECT_STORE", "S3")
	t.Setenv("S3_BUCKET", "exports")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("EXPORT_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected production, got %q", cfg.Env)
	}
	if cfg.StorageBackend != "sqlite" || cfg.ObjectStoreType != "s3" {
		t.Fatalf("unexpected backends: %q %q", cfg.StorageBackend, cfg.ObjectStoreType)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %#v", cfg.CORSAllowOrigin)
	}
	if cfg.ExportTimeout != 5*time.Second {
		t.Fatalf("expected 5s, got %v", cfg.ExportTimeout)
	}
}

func TestLoadValidatesBackends(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for postgres without DATABASE_URL")
	}
}

func TestLoadEnvFilesDoesNotOverrideProcessEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PERSIST_SLOT=fromfile\nRESUME_TEST_ONLY=\"quoted\"\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("PERSIST_SLOT", "fromenv")
	t.Setenv("RESUME_TEST_ONLY", "")
	os.Unsetenv("RESUME_TEST_ONLY")

	loadEnvFiles(path, filepath.Join(dir, "missing.env"))

	if got := os.Getenv("PERSIST_SLOT"); got != "fromenv" {
		t.Fatalf("process env should win, got %q", got)
	}
	if got := os.Getenv("RESUME_TEST_ONLY"); got != "quoted" {
		t.Fatalf("expected value from file, got %q", got)
	}
}
