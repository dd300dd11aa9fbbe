package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

// useMockOpen routes openDB to sqlmock and resets the process singleton.
func useMockOpen(t *testing.T, open func(driverName, dsn string) (*sql.DB, error)) {
	t.Helper()
	prev := openDB
	openDB = open
	shared.mu.Lock()
	shared.db = nil
	shared.mu.Unlock()
	t.Cleanup(func() {
		openDB = prev
		shared.mu.Lock()
		shared.db = nil
		shared.mu.Unlock()
	})
}

func mockOpener(t *testing.T, drivers *[]string) func(string, string) (*sql.DB, error) {
	return func(driverName, dsn string) (*sql.DB, error) {
		if drivers != nil {
			*drivers = append(*drivers, driverName)
		}
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		return db, nil
	}
}

func TestConnectRejectsEmptyURL(t *testing.T) {
	if _, err := Connect(context.Background(), "  ", DefaultServerOptions()); err == nil {
		t.Fatalf("expected error for empty DATABASE_URL")
	}
}

func TestConnectUsesPgxAndFailsOnPing(t *testing.T) {
	var drivers []string
	useMockOpen(t, func(driverName, dsn string) (*sql.DB, error) {
		drivers = append(drivers, driverName)
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		mock.ExpectPing().WillReturnError(errors.New("refused"))
		return db, nil
	})

	_, err := Connect(context.Background(), "postgres://resume@localhost/resume", DefaultServerOptions())
	if err == nil {
		t.Fatalf("expected ping failure")
	}
	if len(drivers) != 1 || drivers[0] != "pgx" {
		t.Fatalf("expected pgx driver, got %v", drivers)
	}
}

func TestGetSingletonSharesOneHandle(t *testing.T) {
	var drivers []string
	useMockOpen(t, mockOpener(t, &drivers))

	first, err := GetSingleton(context.Background(), "postgres://x", DefaultLambdaOptions())
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := GetSingleton(context.Background(), "postgres://x", DefaultLambdaOptions())
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first != second || len(drivers) != 1 {
		t.Fatalf("expected one shared handle, opened %d", len(drivers))
	}
	if got := first.Stats().MaxOpenConnections; got != DefaultLambdaOptions().MaxOpenConns {
		t.Fatalf("expected lambda pool size, got %d", got)
	}
}

func TestGetSingletonRetriesAfterOpenFailure(t *testing.T) {
	var calls int32
	ok := mockOpener(t, nil)
	useMockOpen(t, func(driverName, dsn string) (*sql.DB, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, errors.New("dns not ready")
		}
		return ok(driverName, dsn)
	})

	if _, err := GetSingleton(context.Background(), "postgres://x", DefaultLambdaOptions()); err == nil {
		t.Fatalf("expected first call to fail")
	}
	db, err := GetSingleton(context.Background(), "postgres://x", DefaultLambdaOptions())
	if err != nil || db == nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
}

func TestOptionsFromEnvOverridesDefaults(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_MAX_IDLE_CONNS", "3")
	t.Setenv("DB_CONN_MAX_LIFETIME", "20m")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "45s")
	t.Setenv("DB_PING_TIMEOUT", "not-a-duration")

	opts := OptionsFromEnv(DefaultServerOptions())
	if opts.MaxOpenConns != 7 || opts.MaxIdleConns != 3 {
		t.Fatalf("unexpected pool sizes: %+v", opts)
	}
	if opts.ConnMaxLifetime != 20*time.Minute || opts.ConnMaxIdleTime != 45*time.Second {
		t.Fatalf("unexpected lifetimes: %+v", opts)
	}
	if opts.PingTimeout != DefaultServerOptions().PingTimeout {
		t.Fatalf("invalid value should keep default, got %s", opts.PingTimeout)
	}
}

func TestConnectSQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "resume.db")
	db, err := ConnectSQLite(context.Background(), path, DefaultSQLiteOptions())
	if err != nil {
		t.Fatalf("connect sqlite: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE t (v TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if got := db.Stats().MaxOpenConnections; got != 1 {
		t.Fatalf("expected single connection pool, got %d", got)
	}
	if _, err := ConnectSQLite(context.Background(), " ", DefaultSQLiteOptions()); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
