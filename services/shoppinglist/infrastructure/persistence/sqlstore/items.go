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

const itemColumns = "id, shopping_list_id, name, quantity, notes, created_at, updated_at"

// InsertItem stores a new item under listID. Empty quantity or notes are stored as NULL.
func (s *Store) InsertItem(ctx context.Context, listID uuid.UUID, d models.ItemDraft) (*models.ShoppingListItem, error) {
	now := s.clock.stamp()
	item := &models.ShoppingListItem{
		ID:             uuid.New(),
		ShoppingListID: listID,
		Name:           d.Name,
		Quantity:       models.OptionalText(d.Quantity),
		Notes:          models.OptionalText(d.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	_, err := s.ext.ExecContext(ctx, s.rebind(`
		INSERT INTO shopping_list_items (id, shopping_list_id, name, quantity, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`),
		item.ID, item.ShoppingListID, item.Name, item.Quantity, item.Notes, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return nil, mapInsertError("insert item", err)
	}
	return item, nil
}

// GetItemByID returns domain.ErrItemNotFound unless itemID exists under listID.
func (s *Store) GetItemByID(ctx context.Context, listID, itemID uuid.UUID) (*models.ShoppingListItem, error) {
	var row itemRow
	err := sqlx.GetContext(ctx, s.ext, &row,
		s.rebind("SELECT "+itemColumns+" FROM shopping_list_items WHERE id = ? AND shopping_list_id = ?"),
		itemID, listID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return row.toModel(), nil
}

// FindItemsByListID returns the items of a list, oldest first.
func (s *Store) FindItemsByListID(ctx context.Context, listID uuid.UUID) ([]*models.ShoppingListItem, error) {
	var rows []itemRow
	err := sqlx.SelectContext(ctx, s.ext, &rows,
		s.rebind("SELECT "+itemColumns+" FROM shopping_list_items WHERE shopping_list_id = ? ORDER BY created_at ASC, id"),
		listID)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	items := make([]*models.ShoppingListItem, len(rows))
	for i, r := range rows {
		items[i] = r.toModel()
	}
	return items, nil
}

// UpdateItem applies p to the item if it belongs to listID. An empty quantity
// or notes value clears the column.
func (s *Store) UpdateItem(ctx context.Context, listID, itemID uuid.UUID, p models.ItemPatch) (bool, error) {
	var set setClause
	if p.Name != nil {
		set.add("name", *p.Name)
	}
	if p.Quantity != nil {
		set.add("quantity", models.OptionalText(p.Quantity))
	}
	if p.Notes != nil {
		set.add("notes", models.OptionalText(p.Notes))
	}
	set.add("updated_at", s.clock.stamp())

	query := fmt.Sprintf("UPDATE shopping_list_items SET %s WHERE id = ? AND shopping_list_id = ?",
		strings.Join(set.cols, ", "))
	res, err := s.ext.ExecContext(ctx, s.rebind(query), append(set.args, itemID, listID)...)
	if err != nil {
		return false, fmt.Errorf("update item: %w", err)
	}
	return rowsAffected("update item", res)
}

// DeleteItem removes the item if it belongs to listID.
func (s *Store) DeleteItem(ctx context.Context, listID, itemID uuid.UUID) (bool, error) {
	res, err := s.ext.ExecContext(ctx,
		s.rebind("DELETE FROM shopping_list_items WHERE id = ? AND shopping_list_id = ?"),
		itemID, listID)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	return rowsAffected("delete item", res)
}
