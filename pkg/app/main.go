package app

import (
	"github.com/ghuser/shoppinglist/pkg/cache"
	"github.com/ghuser/shoppinglist/pkg/config"
	"github.com/ghuser/shoppinglist/pkg/database"
	"github.com/ghuser/shoppinglist/pkg/events"
	"github.com/ghuser/shoppinglist/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to every service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "list created", "list_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config *config.Config
	Db     *database.Database
	Logger logger.Logger
	// EventBus is nil unless the store is PostgreSQL.
	EventBus *events.EventBus
	// Redis is nil when REDIS_URL is empty; reads then go straight to the store.
	Redis *cache.RedisClient
}
