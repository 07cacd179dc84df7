package sqlstore

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/migrations"
	"github.com/ghuser/shoppinglist/pkg/config"
	"github.com/ghuser/shoppinglist/pkg/database"
	"github.com/ghuser/shoppinglist/pkg/events"
	"github.com/ghuser/shoppinglist/pkg/logger"
	"github.com/ghuser/shoppinglist/pkg/migrator"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain"
	domainevents "github.com/ghuser/shoppinglist/services/shoppinglist/domain/events"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/repositories"
)

// Integration tests: skipped unless TEST_DATABASE_URL points at a disposable Postgres.
func newPostgresStore(t *testing.T) (*Store, *config.Config) {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres integration tests")
	}
	ctx := context.Background()

	db, err := database.NewPool(ctx, config.DriverPostgres, url, logger.Nop())
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	files, err := migrations.FS(config.DriverPostgres)
	if err != nil {
		t.Fatalf("migrations: %v", err)
	}
	if err := migrator.RunMigrations(ctx, db.DB().DB, config.DriverPostgres, files, logger.Nop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		DatabaseDriver: config.DriverPostgres,
		DatabaseURL:    url,
		ServiceName:    "sqlstore-test-" + uuid.NewString()[:8],
	}
	return New(db, logger.Nop()), cfg
}

func TestPostgres_ForeignKeyAndCascade(t *testing.T) {
	s, _ := newPostgresStore(t)
	ctx := context.Background()

	if _, err := s.InsertItem(ctx, uuid.New(), models.ItemDraft{Name: "orphan"}); !errors.Is(err, domain.ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}

	l := mustInsertList(t, s, "pg", models.ListStatusActive)
	it, err := s.InsertItem(ctx, l.ID, models.ItemDraft{Name: "bread", Quantity: ptr("1")})
	if err != nil {
		t.Fatalf("InsertItem: %v", err)
	}
	got, err := s.GetItemByID(ctx, l.ID, it.ID)
	if err != nil {
		t.Fatalf("GetItemByID: %v", err)
	}
	if !got.CreatedAt.Equal(it.CreatedAt) {
		t.Errorf("timestamp changed across the round trip: %v vs %v", got.CreatedAt, it.CreatedAt)
	}

	if ok, err := s.DeleteList(ctx, l.ID); err != nil || !ok {
		t.Fatalf("DeleteList: ok=%v err=%v", ok, err)
	}
	if _, err := s.GetItemByID(ctx, l.ID, it.ID); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected item removed with its list, got %v", err)
	}
}

func TestPostgres_PublishCommitsWithTransaction(t *testing.T) {
	s, cfg := newPostgresStore(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bus, err := events.NewEventBus(cfg, logger.Nop())
	if err != nil {
		t.Fatalf("event bus: %v", err)
	}
	defer bus.Close() //nolint:errcheck
	s.bus = bus

	received := make(chan domainevents.ListCreatedEvent, 16)
	errCh, err := bus.Subscribe(ctx, domainevents.TopicListCreated, func(_ context.Context, msg *message.Message) error {
		var evt domainevents.ListCreatedEvent
		if err := events.Decode(msg, &evt); err != nil {
			return err
		}
		received <- evt
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	go func() {
		for range errCh {
		}
	}()

	// rolled back: no event must surface for this list
	rolledBack := uuid.Nil
	_ = s.WithinTx(ctx, func(tx repositories.Gateway) error {
		l, err := tx.InsertList(ctx, models.ListDraft{Name: "discarded", Status: models.ListStatusActive})
		if err != nil {
			return err
		}
		rolledBack = l.ID
		if err := tx.Publish(ctx, domainevents.TopicListCreated, domainevents.NewListCreated(&models.ShoppingListWithItems{ShoppingList: *l})); err != nil {
			return err
		}
		return errors.New("abort")
	})

	var committed *models.ShoppingList
	err = s.WithinTx(ctx, func(tx repositories.Gateway) error {
		l, err := tx.InsertList(ctx, models.ListDraft{Name: "kept", Status: models.ListStatusActive})
		if err != nil {
			return err
		}
		committed = l
		return tx.Publish(ctx, domainevents.TopicListCreated, domainevents.NewListCreated(&models.ShoppingListWithItems{ShoppingList: *l}))
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	for {
		select {
		case evt := <-received:
			if evt.ListID == rolledBack {
				t.Fatal("event of a rolled back transaction was delivered")
			}
			if evt.ListID == committed.ID {
				if evt.Name != "kept" {
					t.Errorf("unexpected payload: %+v", evt)
				}
				return
			}
		case <-ctx.Done():
			t.Fatal("committed event not delivered")
		}
	}
}
