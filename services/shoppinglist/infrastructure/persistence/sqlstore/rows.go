package sqlstore

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
)

type listRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r listRow) toModel() *models.ShoppingList {
	return &models.ShoppingList{
		ID:        r.ID,
		Name:      r.Name,
		Status:    models.ListStatus(r.Status),
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

type listSummaryRow struct {
	listRow
	ItemCount int `db:"item_count"`
}

func (r listSummaryRow) toModel() *models.ShoppingListSummary {
	return &models.ShoppingListSummary{ShoppingList: *r.listRow.toModel(), ItemCount: r.ItemCount}
}

type itemRow struct {
	ID             uuid.UUID      `db:"id"`
	ShoppingListID uuid.UUID      `db:"shopping_list_id"`
	Name           string         `db:"name"`
	Quantity       sql.NullString `db:"quantity"`
	Notes          sql.NullString `db:"notes"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (r itemRow) toModel() *models.ShoppingListItem {
	return &models.ShoppingListItem{
		ID:             r.ID,
		ShoppingListID: r.ShoppingListID,
		Name:           r.Name,
		Quantity:       nullable(r.Quantity),
		Notes:          nullable(r.Notes),
		CreatedAt:      r.CreatedAt.UTC(),
		UpdatedAt:      r.UpdatedAt.UTC(),
	}
}

type reminderRow struct {
	ID             uuid.UUID `db:"id"`
	ShoppingListID uuid.UUID `db:"shopping_list_id"`
	ScheduledAt    time.Time `db:"scheduled_at"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r reminderRow) toModel() *models.Reminder {
	return &models.Reminder{
		ID:             r.ID,
		ShoppingListID: r.ShoppingListID,
		ScheduledAt:    r.ScheduledAt.UTC(),
		Status:         models.ReminderStatus(r.Status),
		CreatedAt:      r.CreatedAt.UTC(),
		UpdatedAt:      r.UpdatedAt.UTC(),
	}
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

// setClause accumulates "col = ?" assignments for partial updates.
type setClause struct {
	cols []string
	args []any
}

func (c *setClause) add(col string, v any) {
	c.cols = append(c.cols, col+" = ?")
	c.args = append(c.args, v)
}
