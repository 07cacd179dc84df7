package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/ghuser/shoppinglist/pkg/config"
	"github.com/ghuser/shoppinglist/pkg/logger"
)

// goose keeps its base FS and dialect in package globals.
var mu sync.Mutex

// RunMigrations applies every pending goose migration in files to db.
// driver selects the goose dialect ("postgres" or "sqlite").
func RunMigrations(ctx context.Context, db *sql.DB, driver string, files fs.FS, log logger.Logger) error {
	return withGoose(driver, files, log, func() error {
		if err := goose.UpContext(ctx, db, "."); err != nil {
			return fmt.Errorf("failed to up migrations: %w", err)
		}
		version, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("failed to read migration version: %w", err)
		}
		log.Info("database migrated", "driver", driver, "version", version)
		return nil
	})
}

// Status logs the applied state of every migration in files.
func Status(ctx context.Context, db *sql.DB, driver string, files fs.FS, log logger.Logger) error {
	return withGoose(driver, files, log, func() error {
		if err := goose.StatusContext(ctx, db, "."); err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}
		return nil
	})
}

func withGoose(driver string, files fs.FS, log logger.Logger, fn func() error) error {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(files)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(&gooseLogger{log: log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return fn()
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", nil
	case config.DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("migrator: unsupported driver %q", driver)
	}
}

// gooseLogger routes goose output through the application logger.
type gooseLogger struct{ log logger.Logger }

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Debug(fmt.Sprintf(format, v...))
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	// goose only calls Fatalf from its CLI helpers; surface it without exiting.
	g.log.Error(fmt.Sprintf(format, v...))
}
