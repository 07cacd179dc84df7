package migrator_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ghuser/shoppinglist/migrations"
	"github.com/ghuser/shoppinglist/pkg/config"
	"github.com/ghuser/shoppinglist/pkg/database"
	"github.com/ghuser/shoppinglist/pkg/logger"
	"github.com/ghuser/shoppinglist/pkg/migrator"
)

func TestRunMigrations_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewPool(ctx, config.DriverSQLite, ":memory:", logger.Nop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close() //nolint:errcheck

	files, err := migrations.FS(config.DriverSQLite)
	if err != nil {
		t.Fatalf("migrations fs: %v", err)
	}

	if err := migrator.RunMigrations(ctx, db.DB().DB, config.DriverSQLite, files, logger.Nop()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	// Re-running is a no-op.
	if err := migrator.RunMigrations(ctx, db.DB().DB, config.DriverSQLite, files, logger.Nop()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	for _, table := range []string{"shopping_lists", "shopping_list_items", "reminders"} {
		var n int
		err := db.DB().Get(&n, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table)
		if err != nil {
			t.Fatalf("lookup %s: %v", table, err)
		}
		if n != 1 {
			t.Errorf("table %s missing", table)
		}
	}
}

func TestRunMigrations_UnsupportedDriver(t *testing.T) {
	if err := migrator.RunMigrations(context.Background(), nil, "mysql", nil, logger.Nop()); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestMigrationsFS_UnknownDriver(t *testing.T) {
	if _, err := migrations.FS("oracle"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestStatus_ReportsAppliedMigrations(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewPool(ctx, config.DriverSQLite, ":memory:", logger.Nop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close() //nolint:errcheck

	files, err := migrations.FS(config.DriverSQLite)
	if err != nil {
		t.Fatalf("migrations fs: %v", err)
	}
	if err := migrator.RunMigrations(ctx, db.DB().DB, config.DriverSQLite, files, logger.Nop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	var buf bytes.Buffer
	if err := migrator.Status(ctx, db.DB().DB, config.DriverSQLite, files, logger.NewWithWriter(&buf, "debug")); err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(buf.String(), "00003_create_reminders.sql") {
		t.Errorf("status output missing the reminders migration: %s", buf.String())
	}
}
