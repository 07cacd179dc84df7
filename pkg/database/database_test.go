package database_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/ghuser/shoppinglist/pkg/config"
	"github.com/ghuser/shoppinglist/pkg/database"
	"github.com/ghuser/shoppinglist/pkg/logger"
)

func newMockDatabase(t *testing.T) (*database.Database, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { _ = raw.Close() })
	return database.New(sqlx.NewDb(raw, "sqlmock"), config.DriverPostgres, logger.Nop()), mock
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM shopping_list_items").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := db.WithTx(context.Background(), func(tx *sqlx.Tx) error {
		_, err := tx.Exec("DELETE FROM shopping_list_items WHERE shopping_list_id = $1", "x")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db, mock := newMockDatabase(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := db.WithTx(context.Background(), func(_ *sqlx.Tx) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error to be returned, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = db.WithTx(context.Background(), func(_ *sqlx.Tx) error { panic("kaboom") })
	}()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestWithTx_BeginError(t *testing.T) {
	db, mock := newMockDatabase(t)
	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	called := false
	err := db.WithTx(context.Background(), func(_ *sqlx.Tx) error {
		called = true
		return nil
	})
	if err == nil || called {
		t.Fatalf("expected begin error without calling fn, err=%v called=%v", err, called)
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in         string
		wantPrefix string
	}{
		{"data/shopping-list.db", "data/shopping-list.db?_pragma=foreign_keys(1)"},
		{":memory:", ":memory:?_pragma=foreign_keys(1)"},
		{"file:test.db?cache=shared", "file:test.db?cache=shared&_pragma=foreign_keys(1)"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := database.SQLiteDSN(tt.in)
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("SQLiteDSN(%q) = %q, want prefix %q", tt.in, got, tt.wantPrefix)
			}
			if !strings.Contains(got, "_time_format=sqlite") {
				t.Errorf("SQLiteDSN(%q) = %q, missing time format", tt.in, got)
			}
		})
	}
}

func TestNewPool_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lists.db")
	db, err := database.NewPool(context.Background(), config.DriverSQLite, path, logger.Nop())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer db.Close() //nolint:errcheck

	if db.Driver() != config.DriverSQLite {
		t.Errorf("driver: got %q", db.Driver())
	}
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	var fk int
	if err := db.DB().Get(&fk, "PRAGMA foreign_keys"); err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys pragma: got %d, want 1", fk)
	}
}

func TestNewPool_UnsupportedDriver(t *testing.T) {
	if _, err := database.NewPool(context.Background(), "mysql", "x", logger.Nop()); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
