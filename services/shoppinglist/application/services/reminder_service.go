package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/pkg/logger"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/events"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/repositories"
	domainsvcs "github.com/ghuser/shoppinglist/services/shoppinglist/domain/services"
)

// CreateReminderInput schedules a reminder for a list.
type CreateReminderInput struct {
	ShoppingListID uuid.UUID
	ScheduledAt    time.Time
}

// ReminderService manages reminders. Reminders are records only; nothing is
// delivered when they come due.
type ReminderService struct {
	store repositories.Gateway
	log   logger.Logger
	m     *metrics
	now   func() time.Time
}

// Create schedules a pending reminder. The list must exist and scheduledAt
// must be strictly after the current instant.
func (s *ReminderService) Create(ctx context.Context, in CreateReminderInput) (*models.Reminder, error) {
	if _, err := s.store.GetListByID(ctx, in.ShoppingListID); err != nil {
		if errors.Is(err, domain.ErrListNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("check list: %w", err)
	}
	// Storage keeps microseconds; compare at that precision.
	at := in.ScheduledAt.UTC().Truncate(time.Microsecond)
	if err := domainsvcs.ValidateSchedule(at, s.now().UTC().Truncate(time.Microsecond)); err != nil {
		return nil, err
	}

	var out *models.Reminder
	err := s.store.WithinTx(ctx, func(tx repositories.Gateway) error {
		r, err := tx.InsertReminder(ctx, models.ReminderDraft{
			ShoppingListID: in.ShoppingListID,
			ScheduledAt:    at,
			Status:         models.ReminderStatusPending,
		})
		if err != nil {
			return err
		}
		out = r
		return tx.Publish(ctx, events.TopicReminderScheduled, events.NewReminderScheduled(r))
	})
	if err != nil {
		if errors.Is(err, domain.ErrListNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create reminder: %w", err)
	}
	s.m.mutated(ctx, "reminder", "create")
	s.log.InfoContext(ctx, "reminder scheduled",
		"reminder_id", out.ID, "list_id", out.ShoppingListID, "scheduled_at", out.ScheduledAt)
	return out, nil
}

// GetByID returns found=false when the reminder does not exist.
func (s *ReminderService) GetByID(ctx context.Context, id uuid.UUID) (*models.Reminder, bool, error) {
	r, err := s.store.GetReminderByID(ctx, id)
	if errors.Is(err, domain.ErrReminderNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get reminder: %w", err)
	}
	return r, true, nil
}

// ListForList returns the reminders of a list, earliest first. found is false
// when the list does not exist.
func (s *ReminderService) ListForList(ctx context.Context, listID uuid.UUID) ([]*models.Reminder, bool, error) {
	if _, err := s.store.GetListByID(ctx, listID); err != nil {
		if errors.Is(err, domain.ErrListNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("check list: %w", err)
	}
	rs, err := s.store.FindRemindersByListID(ctx, listID)
	if err != nil {
		return nil, false, fmt.Errorf("list reminders: %w", err)
	}
	if rs == nil {
		rs = []*models.Reminder{}
	}
	return rs, true, nil
}

// Update applies p without re-checking that a new schedule lies in the future.
func (s *ReminderService) Update(ctx context.Context, id uuid.UUID, p models.ReminderPatch) (*models.Reminder, bool, error) {
	if err := domainsvcs.ValidateReminderPatch(p); err != nil {
		return nil, false, err
	}
	ok, err := s.store.UpdateReminder(ctx, id, p)
	if err != nil {
		return nil, false, fmt.Errorf("update reminder: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	s.m.mutated(ctx, "reminder", "update")
	s.log.InfoContext(ctx, "reminder updated", "reminder_id", id)
	return s.GetByID(ctx, id)
}

// Delete reports false when the reminder does not exist.
func (s *ReminderService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.store.DeleteReminder(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete reminder: %w", err)
	}
	if deleted {
		s.m.mutated(ctx, "reminder", "delete")
		s.log.InfoContext(ctx, "reminder deleted", "reminder_id", id)
	}
	return deleted, nil
}
