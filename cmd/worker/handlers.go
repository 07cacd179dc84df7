package main

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/shoppinglist/pkg/events"
	"github.com/ghuser/shoppinglist/pkg/logger"
	domainevents "github.com/ghuser/shoppinglist/services/shoppinglist/domain/events"
)

// listEvicter drops a cached list. *cache.ListCache satisfies it.
type listEvicter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type consumer struct {
	log      logger.Logger
	evicter  listEvicter
	consumed metric.Int64Counter
}

func newConsumer(log logger.Logger, evicter listEvicter) *consumer {
	consumed, _ := otel.Meter("github.com/ghuser/shoppinglist/cmd/worker").Int64Counter(
		"shopping_list.events.consumed",
		metric.WithDescription("Outbox events handled by the worker"),
		metric.WithUnit("{event}"),
	)
	return &consumer{log: log, evicter: evicter, consumed: consumed}
}

// handlers maps every topic in domainevents.Topics to its handler.
// Handlers must be idempotent: the EventBus retries up to 3× on failure.
func (c *consumer) handlers() map[string]events.Handler {
	return map[string]events.Handler{
		domainevents.TopicListCreated:       c.onListCreated,
		domainevents.TopicListSent:          c.onListSent,
		domainevents.TopicListDeleted:       c.onListDeleted,
		domainevents.TopicReminderScheduled: c.onReminderScheduled,
	}
}

func (c *consumer) onListCreated(ctx context.Context, msg *message.Message) error {
	var evt domainevents.ListCreatedEvent
	if err := events.Decode(msg, &evt); err != nil {
		return err
	}
	c.log.InfoContext(ctx, "shopping list created",
		"list_id", evt.ListID, "name", evt.Name, "item_count", evt.ItemCount)
	c.count(ctx, domainevents.TopicListCreated)
	return nil
}

func (c *consumer) onListSent(ctx context.Context, msg *message.Message) error {
	var evt domainevents.ListSentEvent
	if err := events.Decode(msg, &evt); err != nil {
		return err
	}
	c.log.InfoContext(ctx, "shopping list sent", "list_id", evt.ListID, "status", evt.Status)
	c.evict(ctx, evt.ListID)
	c.count(ctx, domainevents.TopicListSent)
	return nil
}

func (c *consumer) onListDeleted(ctx context.Context, msg *message.Message) error {
	var evt domainevents.ListDeletedEvent
	if err := events.Decode(msg, &evt); err != nil {
		return err
	}
	c.log.InfoContext(ctx, "shopping list deleted", "list_id", evt.ListID)
	c.evict(ctx, evt.ListID)
	c.count(ctx, domainevents.TopicListDeleted)
	return nil
}

// onReminderScheduled only records the reminder; nothing is delivered.
func (c *consumer) onReminderScheduled(ctx context.Context, msg *message.Message) error {
	var evt domainevents.ReminderScheduledEvent
	if err := events.Decode(msg, &evt); err != nil {
		return err
	}
	c.log.InfoContext(ctx, "reminder scheduled",
		"reminder_id", evt.ReminderID, "list_id", evt.ListID, "scheduled_at", evt.ScheduledAt)
	c.count(ctx, domainevents.TopicReminderScheduled)
	return nil
}

// evict is best-effort; a stale entry expires with the cache TTL anyway.
func (c *consumer) evict(ctx context.Context, id uuid.UUID) {
	if c.evicter == nil {
		return
	}
	if err := c.evicter.Delete(ctx, id); err != nil {
		c.log.WarnContext(ctx, "cache evict failed", "list_id", id, "error", err)
	}
}

func (c *consumer) count(ctx context.Context, topic string) {
	c.consumed.Add(ctx, 1, metric.WithAttributes(attribute.String("topic", topic)))
}
