package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/account"
	"resume-builder/internal/exports"
	"resume-builder/internal/resumes"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/auth"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/kv"
	kvmemory "resume-builder/internal/shared/storage/kv/memory"
	kvpostgres "resume-builder/internal/shared/storage/kv/postgres"
	kvsqlite "resume-builder/internal/shared/storage/kv/sqlite"
	"resume-builder/internal/shared/storage/object"
	localstore "resume-builder/internal/shared/storage/object/local"
	s3store "resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/render"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	KV             kv.Store
	Store          object.ObjectStore
	Exporter       render.Exporter
	ExportsRepo    exports.Repo
	Signer         *auth.Signer
	ResumesService *resumes.Service
	ExportsService *exports.Service
	ResumesHandler *resumes.Handler
	ExportsHandler *exports.Handler
	AccountHandler *account.Handler
}

// Close releases the database handle, if any. The Lambda singleton is left
// open for the next invocation.
func (a *App) Close() error {
	if a == nil || a.DB == nil || (a.Config.StorageBackend == "postgres" && db.IsLambdaRuntime()) {
		return nil
	}
	return a.DB.Close()
}

// Option overrides a dependency before services are built.
type Option func(*App)

// WithExporter replaces the headless Chrome exporter.
func WithExporter(e render.Exporter) Option {
	return func(a *App) { a.Exporter = e }
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.StorageBackend) == "" {
		cfg.StorageBackend = "memory"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	app := &App{Config: cfg}
	for _, opt := range opts {
		opt(app)
	}

	sqlDB, store, err := buildKV(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.DB = sqlDB
	app.KV = store

	objects, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.Store = objects

	signer, err := auth.NewSigner(cfg.JWTSecret, cfg.Env, cfg.JWTIssuer)
	if err != nil {
		return nil, err
	}
	app.Signer = signer

	if err := buildServices(app); err != nil {
		return nil, err
	}

	var pinger health.Pinger
	if app.DB != nil {
		pinger = app.DB
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:   app.Config,
		Verifier: app.Signer,
		Health:   health.NewService(cfg.StorageBackend, cfg.ObjectStoreType, pinger),
		Handlers: []server.RouteRegistrar{app.ResumesHandler, app.ExportsHandler, app.AccountHandler},
	})

	return app, nil
}

func buildKV(ctx context.Context, cfg config.Config) (*sql.DB, kv.Store, error) {
	switch cfg.StorageBackend {
	case "sqlite":
		sqlDB, err := db.ConnectSQLite(ctx, cfg.SQLitePath, db.DefaultSQLiteOptions())
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := db.RunMigrations(ctx, sqlDB, db.SQLite); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		return sqlDB, &kvsqlite.Store{DB: sqlDB}, nil
	case "postgres":
		sqlDB, err := connectPostgres(ctx, cfg)
		if err != nil {
			if isDevLike(cfg.Env) {
				telemetry.Warn("bootstrap.db_fallback", map[string]any{"error": err.Error()})
				return nil, kvmemory.New(), nil
			}
			return nil, nil, err
		}
		if err := db.RunMigrations(ctx, sqlDB, db.Postgres); err != nil {
			if !db.IsLambdaRuntime() {
				_ = sqlDB.Close()
			}
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return sqlDB, &kvpostgres.Store{DB: sqlDB}, nil
	default:
		telemetry.Info("bootstrap.storage", map[string]any{"backend": "memory"})
		return nil, kvmemory.New(), nil
	}
}

func connectPostgres(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if db.IsLambdaRuntime() {
		return db.GetSingleton(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultLambdaOptions()))
	}
	return db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	// the sqlite file only holds slots; export history stays in memory there
	if app.DB != nil && app.Config.StorageBackend == "postgres" {
		app.ExportsRepo = &exports.PGRepo{DB: app.DB}
	} else {
		app.ExportsRepo = exports.NewMemoryRepo()
	}
	if app.Exporter == nil {
		app.Exporter = render.NewChromedpExporter(app.Config.ChromePath, app.Config.ExportTimeout)
	}

	app.ResumesService = resumes.NewService(app.KV, app.Config.PersistSlot)
	app.ResumesService.Sessions = resumes.NewRegistry(app.Config.SessionTTL, nil)
	app.ExportsService = &exports.Service{
		Docs:     app.ResumesService,
		Exporter: app.Exporter,
		Store:    app.Store,
		Repo:     app.ExportsRepo,
	}
	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	app.ExportsHandler = exports.NewHandler(app.ExportsService)
	app.AccountHandler = account.NewHandler(account.NewService(app.KV, app.Config.PersistSlot, app.ExportsRepo))
	return nil
}
