package main

// Run database migrations:
//   go run ./cmd/migrate
//   go run ./cmd/migrate -dialect sqlite3

import (
	"context"
	"database/sql"
	"flag"
	"os"

	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/telemetry"
)

func main() {
	dialect := flag.String("dialect", string(db.Postgres), "migration set: postgres or sqlite3")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		telemetry.Error("config.invalid", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	ctx := context.Background()
	d := db.Dialect(*dialect)

	var sqlDB *sql.DB
	if d == db.SQLite {
		sqlDB, err = db.ConnectSQLite(ctx, cfg.SQLitePath, db.DefaultSQLiteOptions())
	} else {
		d = db.Postgres
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	}
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB, d); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"dialect": string(d), "error": err.Error()})
		sqlDB.Close()
		os.Exit(1)
	}
	telemetry.Info("migrate.done", map[string]any{"dialect": string(d)})
}
