package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ghuser/shoppinglist/services/shoppinglist/domain"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
)

const listColumns = "id, name, status, created_at, updated_at"

const listSummarySelect = `
SELECT l.id, l.name, l.status, l.created_at, l.updated_at, COUNT(i.id) AS item_count
FROM shopping_lists l
LEFT JOIN shopping_list_items i ON i.shopping_list_id = l.id`

const listSummaryGroup = `
GROUP BY l.id, l.name, l.status, l.created_at, l.updated_at`

// InsertList stores a new list with a generated id.
func (s *Store) InsertList(ctx context.Context, d models.ListDraft) (*models.ShoppingList, error) {
	now := s.clock.stamp()
	list := &models.ShoppingList{
		ID:        uuid.New(),
		Name:      d.Name,
		Status:    d.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := s.ext.ExecContext(ctx, s.rebind(`
		INSERT INTO shopping_lists (id, name, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`),
		list.ID, list.Name, string(list.Status), list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert list: %w", err)
	}
	return list, nil
}

// GetListByID returns domain.ErrListNotFound if no list has id.
func (s *Store) GetListByID(ctx context.Context, id uuid.UUID) (*models.ShoppingList, error) {
	var row listRow
	err := sqlx.GetContext(ctx, s.ext, &row,
		s.rebind("SELECT "+listColumns+" FROM shopping_lists WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListNotFound
		}
		return nil, fmt.Errorf("query list: %w", err)
	}
	return row.toModel(), nil
}

// FindLists returns lists newest first, optionally filtered by status.
func (s *Store) FindLists(ctx context.Context, f models.ListFilter) ([]*models.ShoppingList, error) {
	query := "SELECT " + listColumns + " FROM shopping_lists"
	var args []any
	if f.Status != nil {
		query += " WHERE status = ?"
		args = append(args, string(*f.Status))
	}
	query += " ORDER BY created_at DESC, id"

	var rows []listRow
	if err := sqlx.SelectContext(ctx, s.ext, &rows, s.rebind(query), args...); err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	lists := make([]*models.ShoppingList, len(rows))
	for i, r := range rows {
		lists[i] = r.toModel()
	}
	return lists, nil
}

// FindListSummaries returns lists newest first with their item counts.
func (s *Store) FindListSummaries(ctx context.Context, f models.ListFilter) ([]*models.ShoppingListSummary, error) {
	query := listSummarySelect
	var args []any
	if f.Status != nil {
		query += "\nWHERE l.status = ?"
		args = append(args, string(*f.Status))
	}
	query += listSummaryGroup + "\nORDER BY l.created_at DESC, l.id"

	var rows []listSummaryRow
	if err := sqlx.SelectContext(ctx, s.ext, &rows, s.rebind(query), args...); err != nil {
		return nil, fmt.Errorf("query list summaries: %w", err)
	}
	out := make([]*models.ShoppingListSummary, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// GetListSummary returns one list with its item count.
func (s *Store) GetListSummary(ctx context.Context, id uuid.UUID) (*models.ShoppingListSummary, error) {
	var row listSummaryRow
	query := listSummarySelect + "\nWHERE l.id = ?" + listSummaryGroup
	if err := sqlx.GetContext(ctx, s.ext, &row, s.rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListNotFound
		}
		return nil, fmt.Errorf("query list summary: %w", err)
	}
	return row.toModel(), nil
}

// UpdateList applies p and refreshes updated_at.
func (s *Store) UpdateList(ctx context.Context, id uuid.UUID, p models.ListPatch) (bool, error) {
	var set setClause
	if p.Name != nil {
		set.add("name", *p.Name)
	}
	if p.Status != nil {
		set.add("status", string(*p.Status))
	}
	set.add("updated_at", s.clock.stamp())

	query := fmt.Sprintf("UPDATE shopping_lists SET %s WHERE id = ?", strings.Join(set.cols, ", "))
	res, err := s.ext.ExecContext(ctx, s.rebind(query), append(set.args, id)...)
	if err != nil {
		return false, fmt.Errorf("update list: %w", err)
	}
	return rowsAffected("update list", res)
}

// DeleteList removes the list, its items and its reminders in one transaction.
// The foreign keys cascade as well; the explicit deletes keep the behaviour
// independent of the driver's FK settings.
func (s *Store) DeleteList(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := s.atomic(ctx, func(ext sqlx.ExtContext) error {
		if _, err := ext.ExecContext(ctx, ext.Rebind("DELETE FROM reminders WHERE shopping_list_id = ?"), id); err != nil {
			return fmt.Errorf("delete reminders: %w", err)
		}
		if _, err := ext.ExecContext(ctx, ext.Rebind("DELETE FROM shopping_list_items WHERE shopping_list_id = ?"), id); err != nil {
			return fmt.Errorf("delete items: %w", err)
		}
		res, err := ext.ExecContext(ctx, ext.Rebind("DELETE FROM shopping_lists WHERE id = ?"), id)
		if err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		deleted, err = rowsAffected("delete list", res)
		return err
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
