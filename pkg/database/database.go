// Package database opens the relational store backing the API.
//
// Two drivers are supported: PostgreSQL through pgx's database/sql adapter and
// an embedded SQLite file through modernc.org/sqlite. Both are exposed as a
// *sqlx.DB so repositories can write `?` placeholders and call Rebind.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/ghuser/shoppinglist/pkg/config"
	"github.com/ghuser/shoppinglist/pkg/logger"
)

const (
	pgxDriverName    = "pgx"
	sqliteDriverName = "sqlite"
)

func init() {
	// sqlx does not know the modernc driver name.
	sqlx.BindDriver(sqliteDriverName, sqlx.QUESTION)
}

// Database wraps a *sqlx.DB together with the dialect it speaks.
type Database struct {
	db     *sqlx.DB
	driver string
	log    logger.Logger
}

// NewPool opens and pings a connection pool for driver ("postgres" or "sqlite").
// For sqlite, url is a file path or ":memory:"; parent directories are created.
func NewPool(ctx context.Context, driver, url string, log logger.Logger) (*Database, error) {
	var (
		db  *sqlx.DB
		err error
	)
	switch driver {
	case config.DriverPostgres:
		db, err = sqlx.Open(pgxDriverName, url)
		if err != nil {
			return nil, fmt.Errorf("database: open postgres: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	case config.DriverSQLite:
		if err := ensureDir(url); err != nil {
			return nil, err
		}
		db, err = sqlx.Open(sqliteDriverName, SQLiteDSN(url))
		if err != nil {
			return nil, fmt.Errorf("database: open sqlite: %w", err)
		}
		// A single connection serialises writers and keeps :memory: databases alive.
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
	default:
		return nil, fmt.Errorf("database: unsupported driver %q", driver)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database: ping %s: %w", driver, err)
	}

	log.Debug("database opened", "driver", driver)
	return &Database{db: db, driver: driver, log: log}, nil
}

// New wraps an already opened handle. Used by tests that bring their own *sqlx.DB.
func New(db *sqlx.DB, driver string, log logger.Logger) *Database {
	return &Database{db: db, driver: driver, log: log}
}

// SQLiteDSN appends the connection pragmas every SQLite handle needs:
// foreign key enforcement and a sortable text encoding for timestamps.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
}

func ensureDir(path string) error {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("database: create directory %s: %w", dir, err)
	}
	return nil
}

// DB returns the pool for non-transactional queries.
func (d *Database) DB() *sqlx.DB {
	return d.db
}

// Driver returns "postgres" or "sqlite".
func (d *Database) Driver() string {
	return d.driver
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise; a panic in fn also rolls back.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("database: begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				d.log.ErrorContext(ctx, "database: rollback failed", "error", rbErr)
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("database: commit tx: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

// Close closes the pool.
func (d *Database) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}
