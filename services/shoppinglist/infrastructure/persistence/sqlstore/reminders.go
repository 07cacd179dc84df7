package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ghuser/shoppinglist/services/shoppinglist/domain"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
)

const reminderColumns = "id, shopping_list_id, scheduled_at, status, created_at, updated_at"

// InsertReminder stores a new reminder. The schedule is kept at microsecond precision.
func (s *Store) InsertReminder(ctx context.Context, d models.ReminderDraft) (*models.Reminder, error) {
	now := s.clock.stamp()
	r := &models.Reminder{
		ID:             uuid.New(),
		ShoppingListID: d.ShoppingListID,
		ScheduledAt:    normalizeTime(d.ScheduledAt),
		Status:         d.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	_, err := s.ext.ExecContext(ctx, s.rebind(`
		INSERT INTO reminders (id, shopping_list_id, scheduled_at, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`),
		r.ID, r.ShoppingListID, r.ScheduledAt, string(r.Status), r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return nil, mapInsertError("insert reminder", err)
	}
	return r, nil
}

// GetReminderByID returns domain.ErrReminderNotFound if no reminder has id.
func (s *Store) GetReminderByID(ctx context.Context, id uuid.UUID) (*models.Reminder, error) {
	var row reminderRow
	err := sqlx.GetContext(ctx, s.ext, &row,
		s.rebind("SELECT "+reminderColumns+" FROM reminders WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReminderNotFound
		}
		return nil, fmt.Errorf("query reminder: %w", err)
	}
	return row.toModel(), nil
}

// FindRemindersByListID returns the reminders of a list, earliest schedule first.
func (s *Store) FindRemindersByListID(ctx context.Context, listID uuid.UUID) ([]*models.Reminder, error) {
	var rows []reminderRow
	err := sqlx.SelectContext(ctx, s.ext, &rows,
		s.rebind("SELECT "+reminderColumns+" FROM reminders WHERE shopping_list_id = ? ORDER BY scheduled_at ASC, created_at ASC"),
		listID)
	if err != nil {
		return nil, fmt.Errorf("query reminders: %w", err)
	}
	out := make([]*models.Reminder, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// UpdateReminder applies p and refreshes updated_at.
func (s *Store) UpdateReminder(ctx context.Context, id uuid.UUID, p models.ReminderPatch) (bool, error) {
	var set setClause
	if p.ScheduledAt != nil {
		set.add("scheduled_at", normalizeTime(*p.ScheduledAt))
	}
	if p.Status != nil {
		set.add("status", string(*p.Status))
	}
	set.add("updated_at", s.clock.stamp())

	query := fmt.Sprintf("UPDATE reminders SET %s WHERE id = ?", strings.Join(set.cols, ", "))
	res, err := s.ext.ExecContext(ctx, s.rebind(query), append(set.args, id)...)
	if err != nil {
		return false, fmt.Errorf("update reminder: %w", err)
	}
	return rowsAffected("update reminder", res)
}

// DeleteReminder removes a reminder.
func (s *Store) DeleteReminder(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.ext.ExecContext(ctx, s.rebind("DELETE FROM reminders WHERE id = ?"), id)
	if err != nil {
		return false, fmt.Errorf("delete reminder: %w", err)
	}
	return rowsAffected("delete reminder", res)
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
