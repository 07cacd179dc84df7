package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
)

// Watermill topics written to the outbox by the shopping list store.
const (
	TopicListCreated       = "shopping_list.created"
	TopicListSent          = "shopping_list.sent"
	TopicListDeleted       = "shopping_list.deleted"
	TopicReminderScheduled = "reminder.scheduled"
)

// Topics is every topic the worker subscribes to.
var Topics = []string{TopicListCreated, TopicListSent, TopicListDeleted, TopicReminderScheduled}

// SchemaVersion is stamped on every event; bump it on breaking payload changes.
const SchemaVersion = 1

// ListCreatedEvent is published after a list and its nested items are stored.
type ListCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ListID     uuid.UUID `json:"list_id"`
	Name       string    `json:"name"`
	ItemCount  int       `json:"item_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ListSentEvent is published when a list goes through the send transition.
type ListSentEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ListID     uuid.UUID `json:"list_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ListDeletedEvent is published after a list and its dependents are removed.
type ListDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ListID     uuid.UUID `json:"list_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ReminderScheduledEvent is published after a reminder is created.
type ReminderScheduledEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	ReminderID  uuid.UUID `json:"reminder_id"`
	ListID      uuid.UUID `json:"list_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewListCreated(l *models.ShoppingListWithItems) ListCreatedEvent {
	return ListCreatedEvent{
		EventID:    uuid.New(),
		Version:    SchemaVersion,
		ListID:     l.ID,
		Name:       l.Name,
		ItemCount:  len(l.Items),
		OccurredAt: l.CreatedAt,
	}
}

func NewListSent(l *models.ShoppingList) ListSentEvent {
	return ListSentEvent{
		EventID:    uuid.New(),
		Version:    SchemaVersion,
		ListID:     l.ID,
		Status:     l.Status.String(),
		OccurredAt: l.UpdatedAt,
	}
}

func NewListDeleted(id uuid.UUID, at time.Time) ListDeletedEvent {
	return ListDeletedEvent{
		EventID:    uuid.New(),
		Version:    SchemaVersion,
		ListID:     id,
		OccurredAt: at,
	}
}

func NewReminderScheduled(r *models.Reminder) ReminderScheduledEvent {
	return ReminderScheduledEvent{
		EventID:     uuid.New(),
		Version:     SchemaVersion,
		ReminderID:  r.ID,
		ListID:      r.ShoppingListID,
		ScheduledAt: r.ScheduledAt,
		OccurredAt:  r.CreatedAt,
	}
}
