// Package sqlstore implements repositories.Gateway on top of pkg/database.
// Queries are written with `?` placeholders and rebound for the active driver,
// so the same code serves PostgreSQL and SQLite.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/ghuser/shoppinglist/pkg/database"
	"github.com/ghuser/shoppinglist/pkg/events"
	"github.com/ghuser/shoppinglist/pkg/logger"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain"
	domainevents "github.com/ghuser/shoppinglist/services/shoppinglist/domain/events"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/repositories"
)

// Store implements repositories.Gateway. A Store returned by WithinTx is bound
// to that transaction; the root Store runs each call on the pool.
type Store struct {
	db    *database.Database
	ext   sqlx.ExtContext
	tx    *sqlx.Tx
	bus   *events.EventBus
	log   logger.Logger
	clock *clock
}

var _ repositories.Gateway = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of created/updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.clock.now = now }
}

// WithEventBus enables Publish. Without it Publish does nothing.
func WithEventBus(bus *events.EventBus) Option {
	return func(s *Store) { s.bus = bus }
}

// New returns a Store backed by db.
func New(db *database.Database, log logger.Logger, opts ...Option) *Store {
	s := &Store{
		db:    db,
		ext:   db.DB(),
		log:   log,
		clock: &clock{now: time.Now},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) bound(tx *sqlx.Tx) *Store {
	cp := *s
	cp.ext = tx
	cp.tx = tx
	return &cp
}

// WithinTx runs fn against a transaction-bound Store. Nested calls reuse the
// outer transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(tx repositories.Gateway) error) error {
	if s.tx != nil {
		return fn(s)
	}
	return s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		return fn(s.bound(tx))
	})
}

// atomic runs fn in the current transaction, or in a fresh one.
func (s *Store) atomic(ctx context.Context, fn func(ext sqlx.ExtContext) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	return s.db.WithTx(ctx, func(tx *sqlx.Tx) error { return fn(tx) })
}

// Publish writes event to the outbox. Inside WithinTx it shares the transaction.
func (s *Store) Publish(ctx context.Context, topic string, event any) error {
	if s.bus == nil {
		return nil
	}
	var err error
	if s.tx != nil {
		err = s.bus.PublishTx(ctx, s.tx.Tx, topic, event, domainevents.SchemaVersion)
	} else {
		err = s.bus.PublishEvent(ctx, topic, event, domainevents.SchemaVersion)
	}
	if err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	s.log.DebugContext(ctx, "event published", "topic", topic)
	return nil
}

func (s *Store) rebind(query string) string {
	return s.ext.Rebind(query)
}

// clock hands out strictly increasing UTC timestamps at microsecond precision,
// the finest resolution both drivers store. Rows written within the same
// microsecond still sort in insertion order.
type clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func (c *clock) stamp() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}

// isForeignKeyViolation reports whether err is an FK failure from either driver.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
			return true
		}
		return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "FOREIGN KEY")
	}
	return false
}

// mapInsertError turns a missing parent row into domain.ErrListNotFound.
func mapInsertError(op string, err error) error {
	if isForeignKeyViolation(err) {
		return domain.ErrListNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func rowsAffected(op string, res interface{ RowsAffected() (int64, error) }) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: rows affected: %w", op, err)
	}
	return n > 0, nil
}
