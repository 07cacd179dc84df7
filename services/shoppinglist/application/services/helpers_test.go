package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/migrations"
	"github.com/ghuser/shoppinglist/pkg/cache"
	"github.com/ghuser/shoppinglist/pkg/config"
	"github.com/ghuser/shoppinglist/pkg/database"
	"github.com/ghuser/shoppinglist/pkg/logger"
	"github.com/ghuser/shoppinglist/pkg/migrator"
	"github.com/ghuser/shoppinglist/services/shoppinglist/application/services"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/repositories"
	"github.com/ghuser/shoppinglist/services/shoppinglist/infrastructure/persistence/sqlstore"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewPool(ctx, config.DriverSQLite, ":memory:", logger.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	files, err := migrations.FS(config.DriverSQLite)
	if err != nil {
		t.Fatalf("migrations: %v", err)
	}
	if err := migrator.RunMigrations(ctx, db.DB().DB, config.DriverSQLite, files, logger.Nop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return sqlstore.New(db, logger.Nop())
}

func newServices(t *testing.T, store repositories.Gateway, lc services.ListCache) *services.Services {
	t.Helper()
	return services.NewServices(store, lc, logger.Nop(), services.WithClock(func() time.Time { return testNow }))
}

func ptr[T any](v T) *T { return &v }

// memCache is an in-process ListCache.
type memCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]cache.CachedList
	gets    int
	hits    int
	failGet error
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[uuid.UUID]cache.CachedList)}
}

func (c *memCache) Get(_ context.Context, id uuid.UUID) (*cache.CachedList, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failGet != nil {
		return nil, c.failGet
	}
	l, ok := c.entries[id]
	if !ok {
		return nil, cache.ErrMiss
	}
	c.hits++
	return &l, nil
}

func (c *memCache) Set(_ context.Context, l *cache.CachedList) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[l.ID] = *l
	return nil
}

func (c *memCache) Delete(_ context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}

func (c *memCache) has(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[id]
	return ok
}

var errInjected = errors.New("injected failure")

// spyGateway records published topics and can fail item inserts after a
// number of successful ones. Transaction-bound copies share the counters.
type spyGateway struct {
	repositories.Gateway
	state *spyState
}

type spyState struct {
	mu             sync.Mutex
	published      []string
	itemInserts    int
	failItemsAfter int // -1 disables
	listLookups    int
}

func newSpy(g repositories.Gateway) *spyGateway {
	return &spyGateway{Gateway: g, state: &spyState{failItemsAfter: -1}}
}

func (g *spyGateway) WithinTx(ctx context.Context, fn func(tx repositories.Gateway) error) error {
	return g.Gateway.WithinTx(ctx, func(tx repositories.Gateway) error {
		return fn(&spyGateway{Gateway: tx, state: g.state})
	})
}

func (g *spyGateway) Publish(ctx context.Context, topic string, event any) error {
	g.state.mu.Lock()
	g.state.published = append(g.state.published, topic)
	g.state.mu.Unlock()
	return g.Gateway.Publish(ctx, topic, event)
}

func (g *spyGateway) InsertItem(ctx context.Context, listID uuid.UUID, d models.ItemDraft) (*models.ShoppingListItem, error) {
	g.state.mu.Lock()
	if g.state.failItemsAfter >= 0 && g.state.itemInserts >= g.state.failItemsAfter {
		g.state.mu.Unlock()
		return nil, errInjected
	}
	g.state.itemInserts++
	g.state.mu.Unlock()
	return g.Gateway.InsertItem(ctx, listID, d)
}

func (g *spyGateway) GetListByID(ctx context.Context, id uuid.UUID) (*models.ShoppingList, error) {
	g.state.mu.Lock()
	g.state.listLookups++
	g.state.mu.Unlock()
	return g.Gateway.GetListByID(ctx, id)
}

func (g *spyGateway) topics() []string {
	g.state.mu.Lock()
	defer g.state.mu.Unlock()
	return append([]string(nil), g.state.published...)
}
