package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/events"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
)

func TestNewListCreated(t *testing.T) {
	created := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	list := &models.ShoppingListWithItems{
		ShoppingList: models.ShoppingList{ID: uuid.New(), Name: "Weekly Order", CreatedAt: created},
		Items:        []*models.ShoppingListItem{{Name: "tomatoes"}, {Name: "basil"}},
	}

	evt := events.NewListCreated(list)
	if evt.EventID == uuid.Nil {
		t.Fatal("expected generated event id")
	}
	if evt.Version != events.SchemaVersion || evt.ListID != list.ID || evt.ItemCount != 2 {
		t.Errorf("unexpected event: %+v", evt)
	}
	if !evt.OccurredAt.Equal(created) {
		t.Errorf("OccurredAt: got %v, want %v", evt.OccurredAt, created)
	}
}

func TestNewReminderScheduled(t *testing.T) {
	r := &models.Reminder{
		ID:             uuid.New(),
		ShoppingListID: uuid.New(),
		ScheduledAt:    time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	evt := events.NewReminderScheduled(r)
	if evt.ReminderID != r.ID || evt.ListID != r.ShoppingListID || !evt.ScheduledAt.Equal(r.ScheduledAt) {
		t.Errorf("unexpected event: %+v", evt)
	}
}

func TestEvents_JSONFieldNames(t *testing.T) {
	tests := []struct {
		name   string
		event  any
		fields []string
	}{
		{"created", events.NewListCreated(&models.ShoppingListWithItems{}), []string{"event_id", "version", "list_id", "name", "item_count", "occurred_at"}},
		{"sent", events.NewListSent(&models.ShoppingList{Status: models.ListStatusSent}), []string{"event_id", "version", "list_id", "status", "occurred_at"}},
		{"deleted", events.NewListDeleted(uuid.New(), time.Now()), []string{"event_id", "version", "list_id", "occurred_at"}},
		{"scheduled", events.NewReminderScheduled(&models.Reminder{}), []string{"event_id", "reminder_id", "list_id", "scheduled_at"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.event)
			if err != nil {
				t.Fatalf("json.Marshal failed: %v", err)
			}
			var raw map[string]any
			if err := json.Unmarshal(data, &raw); err != nil {
				t.Fatalf("unmarshal to map failed: %v", err)
			}
			for _, f := range tt.fields {
				if _, ok := raw[f]; !ok {
					t.Errorf("expected JSON field %q not found in: %s", f, data)
				}
			}
		})
	}
}

func TestTopics(t *testing.T) {
	want := map[string]bool{
		"shopping_list.created": true,
		"shopping_list.sent":    true,
		"shopping_list.deleted": true,
		"reminder.scheduled":    true,
	}
	if len(events.Topics) != len(want) {
		t.Fatalf("expected %d topics, got %v", len(want), events.Topics)
	}
	for _, topic := range events.Topics {
		if !want[topic] {
			t.Errorf("unexpected topic %q", topic)
		}
	}
}
