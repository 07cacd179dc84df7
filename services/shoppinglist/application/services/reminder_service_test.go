package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/services/shoppinglist/application/services"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/events"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
)

func TestReminderService_CreateSchedule(t *testing.T) {
	svc := newServices(t, newStore(t), nil)
	ctx := context.Background()
	l, _ := svc.List.Create(ctx, services.CreateListInput{Name: "x"})

	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{"exactly now", testNow, domain.ErrReminderInPast},
		{"in the past", testNow.Add(-time.Hour), domain.ErrReminderInPast},
		{"sub-microsecond ahead", testNow.Add(500 * time.Nanosecond), domain.ErrReminderInPast},
		{"one microsecond ahead", testNow.Add(time.Microsecond), nil},
		{"tomorrow", testNow.Add(24 * time.Hour), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := svc.Reminder.Create(ctx, services.CreateReminderInput{ShoppingListID: l.ID, ScheduledAt: tt.at})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if r.Status != models.ReminderStatusPending || !r.ScheduledAt.Equal(tt.at) || r.ShoppingListID != l.ID {
				t.Errorf("unexpected reminder: %+v", r)
			}
		})
	}
}

func TestReminderService_CreateMissingList(t *testing.T) {
	svc := newServices(t, newStore(t), nil)
	ctx := context.Background()

	for _, at := range []time.Time{testNow.Add(time.Hour), testNow.Add(-time.Hour)} {
		_, err := svc.Reminder.Create(ctx, services.CreateReminderInput{ShoppingListID: uuid.New(), ScheduledAt: at})
		if !errors.Is(err, domain.ErrListNotFound) {
			t.Fatalf("expected ErrListNotFound for %v, got %v", at, err)
		}
	}
}

func TestReminderService_Lifecycle(t *testing.T) {
	spy := newSpy(newStore(t))
	svc := newServices(t, spy, nil)
	ctx := context.Background()
	l, _ := svc.List.Create(ctx, services.CreateListInput{Name: "x"})

	r, err := svc.Reminder.Create(ctx, services.CreateReminderInput{ShoppingListID: l.ID, ScheduledAt: testNow.Add(2 * time.Hour)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := spy.topics(); got[len(got)-1] != events.TopicReminderScheduled {
		t.Errorf("expected reminder.scheduled, got %v", got)
	}

	got, found, err := svc.Reminder.GetByID(ctx, r.ID)
	if err != nil || !found {
		t.Fatalf("GetByID: found=%v err=%v", found, err)
	}
	if !got.ScheduledAt.Equal(r.ScheduledAt) || !got.CreatedAt.Equal(r.CreatedAt) || got.Status != r.Status {
		t.Errorf("round trip mismatch: %+v vs %+v", got, r)
	}

	// Past schedules are accepted on update.
	past := testNow.Add(-48 * time.Hour)
	moved, found, err := svc.Reminder.Update(ctx, r.ID, models.ReminderPatch{ScheduledAt: &past})
	if err != nil || !found {
		t.Fatalf("Update: found=%v err=%v", found, err)
	}
	if !moved.ScheduledAt.Equal(past) || moved.Status != models.ReminderStatusPending {
		t.Errorf("unexpected reminder after reschedule: %+v", moved)
	}

	cancelled, _, err := svc.Reminder.Update(ctx, r.ID, models.ReminderPatch{Status: ptr(models.ReminderStatusCancelled)})
	if err != nil || cancelled.Status != models.ReminderStatusCancelled || !cancelled.ScheduledAt.Equal(past) {
		t.Fatalf("unexpected cancel result: %+v err=%v", cancelled, err)
	}
	if cancelled.UpdatedAt.Before(moved.UpdatedAt) {
		t.Error("updatedAt went backwards")
	}

	touched, found, err := svc.Reminder.Update(ctx, r.ID, models.ReminderPatch{})
	if err != nil || !found {
		t.Fatalf("empty patch: found=%v err=%v", found, err)
	}
	if touched.Status != cancelled.Status || !touched.ScheduledAt.Equal(past) || !touched.UpdatedAt.After(cancelled.UpdatedAt) {
		t.Errorf("empty patch must only refresh updatedAt: %+v", touched)
	}
	if _, found, err := svc.Reminder.Update(ctx, uuid.New(), models.ReminderPatch{Status: ptr(models.ReminderStatusSent)}); err != nil || found {
		t.Errorf("update of missing reminder: found=%v err=%v", found, err)
	}

	if deleted, err := svc.Reminder.Delete(ctx, r.ID); err != nil || !deleted {
		t.Fatalf("Delete: deleted=%v err=%v", deleted, err)
	}
	if deleted, err := svc.Reminder.Delete(ctx, r.ID); err != nil || deleted {
		t.Fatalf("second Delete: deleted=%v err=%v", deleted, err)
	}
	if _, found, _ := svc.Reminder.GetByID(ctx, r.ID); found {
		t.Fatal("deleted reminder still reachable")
	}
}

func TestReminderService_ListForList(t *testing.T) {
	svc := newServices(t, newStore(t), nil)
	ctx := context.Background()
	l, _ := svc.List.Create(ctx, services.CreateListInput{Name: "x"})

	late, _ := svc.Reminder.Create(ctx, services.CreateReminderInput{ShoppingListID: l.ID, ScheduledAt: testNow.Add(3 * time.Hour)})
	early, _ := svc.Reminder.Create(ctx, services.CreateReminderInput{ShoppingListID: l.ID, ScheduledAt: testNow.Add(time.Hour)})

	rs, found, err := svc.Reminder.ListForList(ctx, l.ID)
	if err != nil || !found {
		t.Fatalf("ListForList: found=%v err=%v", found, err)
	}
	if len(rs) != 2 || rs[0].ID != early.ID || rs[1].ID != late.ID {
		t.Fatalf("expected earliest first, got %+v", rs)
	}

	if _, found, err := svc.Reminder.ListForList(ctx, uuid.New()); err != nil || found {
		t.Errorf("missing list: found=%v err=%v", found, err)
	}

	if _, err := svc.List.Delete(ctx, l.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := svc.Reminder.GetByID(ctx, early.ID); found {
		t.Error("reminder survived list deletion")
	}
}
