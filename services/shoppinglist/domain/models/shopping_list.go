package models

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingList is the aggregate root. Items and reminders are owned by exactly one list.
type ShoppingList struct {
	ID        uuid.UUID
	Name      string
	Status    ListStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShoppingListWithItems is a list together with its items, oldest first.
type ShoppingListWithItems struct {
	ShoppingList
	Items []*ShoppingListItem
}

// ShoppingListSummary is a list with the number of items it currently holds.
type ShoppingListSummary struct {
	ShoppingList
	ItemCount int
}

// ListDraft is the insert shape of a ShoppingList: everything the store does not generate.
type ListDraft struct {
	Name   string
	Status ListStatus
}

// ListPatch carries the fields of an update; nil fields are left untouched.
type ListPatch struct {
	Name   *string
	Status *ListStatus
}

// IsEmpty reports whether no field is set.
func (p ListPatch) IsEmpty() bool {
	return p.Name == nil && p.Status == nil
}

// ListFilter narrows FindLists. A nil Status returns every list.
type ListFilter struct {
	Status *ListStatus
}
