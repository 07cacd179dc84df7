package models

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingListItem is a line on a shopping list. Quantity and Notes are nil when absent.
type ShoppingListItem struct {
	ID             uuid.UUID
	ShoppingListID uuid.UUID
	Name           string
	Quantity       *string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ItemDraft is the insert shape of a ShoppingListItem.
type ItemDraft struct {
	Name     string
	Quantity *string
	Notes    *string
}

// ItemPatch carries the fields of an item update; nil fields are left untouched.
type ItemPatch struct {
	Name     *string
	Quantity *string
	Notes    *string
}

// IsEmpty reports whether no field is set.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Quantity == nil && p.Notes == nil
}
