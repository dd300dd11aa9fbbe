package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration.
type Config struct {
	Port            string   `env:"PORT" envDefault:"8080"`
	CORSAllowOrigin []string `env:"CORS_ALLOW_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`
	Env             string   `env:"ENV" envDefault:"dev"`

	// Resume persistence (key-value slot per identity).
	StorageBackend string        `env:"STORAGE_BACKEND" envDefault:"memory"`
	SQLitePath     string        `env:"SQLITE_PATH" envDefault:"./data/resume.db"`
	PersistSlot    string        `env:"PERSIST_SLOT" envDefault:"resumeData"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	SessionTTL     time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`

	// Exported PDFs.
	ObjectStoreType string        `env:"OBJECT_STORE" envDefault:"local"`
	LocalStoreDir   string        `env:"LOCAL_STORE_DIR" envDefault:"./data"`
	AWSRegion       string        `env:"AWS_REGION"`
	S3Bucket        string        `env:"S3_BUCKET"`
	S3Prefix        string        `env:"S3_PREFIX"`
	SSEKMSKeyID     string        `env:"SSE_KMS_KEY_ID"`
	ChromePath      string        `env:"CHROME_PATH"`
	ExportTimeout   time.Duration `env:"EXPORT_TIMEOUT" envDefault:"60s"`
	ExportRateLimit int           `env:"EXPORT_RATE_LIMIT_PER_MIN" envDefault:"10"`

	JWTSecret string `env:"JWT_SECRET"`
	JWTIssuer string `env:"JWT_ISSUER" envDefault:"resume-builder"`
}

// Load reads configuration from environment variables with sensible defaults.
// Local env files are loaded first; variables already set in the process
// environment win.
func Load() (Config, error) {
	loadEnvFiles(".env", "cmd/.env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.StorageBackend = normalizeStorageBackend(cfg.StorageBackend)
	cfg.ObjectStoreType = normalizeStoreType(cfg.ObjectStoreType)
	cfg.CORSAllowOrigin = trimAll(cfg.CORSAllowOrigin)
	if strings.TrimSpace(cfg.PersistSlot) == "" {
		cfg.PersistSlot = "resumeData"
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.StorageBackend == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=postgres")
	}
	if c.ObjectStoreType == "s3" && c.S3Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required when OBJECT_STORE=s3")
	}
	if c.Env == "production" && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	return nil
}

func trimAll(in []string) []string {
	var out []string
	for _, p := range in {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStorageBackend(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "postgres", "postgresql", "pg":
		return "postgres"
	case "sqlite", "sqlite3":
		return "sqlite"
	default:
		return "memory"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
