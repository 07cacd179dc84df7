package services

import (
	"time"

	"github.com/ghuser/shoppinglist/pkg/app"
	"github.com/ghuser/shoppinglist/pkg/cache"
	"github.com/ghuser/shoppinglist/pkg/logger"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/repositories"
	"github.com/ghuser/shoppinglist/services/shoppinglist/infrastructure/persistence/sqlstore"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	List     *ListService
	Item     *ItemService
	Reminder *ReminderService
}

// Option configures the services built by NewServices.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now as the services' notion of the current instant.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New wires all shopping list services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	var storeOpts []sqlstore.Option
	if a.EventBus != nil {
		storeOpts = append(storeOpts, sqlstore.WithEventBus(a.EventBus))
	}
	store := sqlstore.New(a.Db, a.Logger, storeOpts...)

	var lc ListCache
	if a.Redis != nil {
		ttl := cache.DefaultListCacheTTL
		if a.Config != nil {
			ttl = a.Config.ListCacheTTL
		}
		lc = cache.NewListCache(a.Redis, ttl)
	}
	return NewServices(store, lc, a.Logger)
}

// NewServices builds the services over an arbitrary gateway. lc may be nil.
func NewServices(store repositories.Gateway, lc ListCache, log logger.Logger, opts ...Option) *Services {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	m := newMetrics()
	rc := &readCache{c: lc, log: log, m: m}
	return &Services{
		List:     &ListService{store: store, cache: rc, log: log, m: m, now: o.now},
		Item:     &ItemService{store: store, cache: rc, log: log, m: m},
		Reminder: &ReminderService{store: store, log: log, m: m, now: o.now},
	}
}
