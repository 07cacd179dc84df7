package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
)

// CreateItemRequest is one item of a new list, or the body of POST /shopping-lists/{listId}/items.
type CreateItemRequest struct {
	Name     string  `json:"name"     validate:"required,max=200" example:"tomatoes"`
	Quantity *string `json:"quantity" validate:"omitempty,max=100" example:"2 cases"`
	Notes    *string `json:"notes"    validate:"omitempty,max=500" example:"roma if available"`
} // @name CreateItemRequest

func (r CreateItemRequest) draft() models.ItemDraft {
	return models.ItemDraft{Name: r.Name, Quantity: r.Quantity, Notes: r.Notes}
}

// CreateListRequest is the body of POST /shopping-lists.
type CreateListRequest struct {
	Name  string              `json:"name"  validate:"required,max=200" example:"Weekly Order"`
	Items []CreateItemRequest `json:"items" validate:"omitempty,dive"`
} // @name CreateListRequest

// UpdateListRequest is the body of PUT /shopping-lists/{id}. At least one field is required.
type UpdateListRequest struct {
	Name   *string `json:"name"   validate:"omitempty,min=1,max=200" example:"Weekend Order"`
	Status *string `json:"status" validate:"omitempty,oneof=active sent completed" example:"sent"`
} // @name UpdateListRequest

// IsEmpty reports whether no field was supplied.
func (r UpdateListRequest) IsEmpty() bool { return r.Name == nil && r.Status == nil }

func (r UpdateListRequest) patch() models.ListPatch {
	p := models.ListPatch{Name: r.Name}
	if r.Status != nil {
		st := models.ListStatus(*r.Status)
		p.Status = &st
	}
	return p
}

// SendListRequest is the optional body of POST /shopping-lists/{id}/send.
type SendListRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=active sent completed" example:"completed"`
} // @name SendListRequest

// UpdateItemRequest is the body of PUT /shopping-lists/{listId}/items/{itemId}.
// An empty quantity or notes clears the field.
type UpdateItemRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=200" example:"cherry tomatoes"`
	Quantity *string `json:"quantity" validate:"omitempty,max=100" example:"1 case"`
	Notes    *string `json:"notes"    validate:"omitempty,max=500"`
} // @name UpdateItemRequest

// IsEmpty reports whether no field was supplied.
func (r UpdateItemRequest) IsEmpty() bool {
	return r.Name == nil && r.Quantity == nil && r.Notes == nil
}

func (r UpdateItemRequest) patch() models.ItemPatch {
	return models.ItemPatch{Name: r.Name, Quantity: r.Quantity, Notes: r.Notes}
}

// CreateReminderRequest is the body of POST /reminders.
type CreateReminderRequest struct {
	ShoppingListID string `json:"shoppingListId" validate:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	ScheduledAt    string `json:"scheduledAt"    validate:"required,datetime=2006-01-02T15:04:05Z" example:"2030-01-15T10:30:00Z"`
} // @name CreateReminderRequest

// UpdateReminderRequest is the body of PUT /reminders/{id}. Both fields are optional.
type UpdateReminderRequest struct {
	ScheduledAt *string `json:"scheduledAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z" example:"2030-01-16T10:30:00Z"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending sent cancelled" example:"cancelled"`
} // @name UpdateReminderRequest


// ListResponse is a shopping list without its items.
type ListResponse struct {
	ID        uuid.UUID `json:"id"        example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name"      example:"Weekly Order"`
	Status    string    `json:"status"    example:"active"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-15T10:30:00Z"`
} // @name ListResponse

// ItemResponse is a shopping list item. Absent quantity and notes are null.
type ItemResponse struct {
	ID             uuid.UUID `json:"id"             example:"123e4567-e89b-12d3-a456-426614174000"`
	ShoppingListID uuid.UUID `json:"shoppingListId" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name           string    `json:"name"           example:"tomatoes"`
	Quantity       *string   `json:"quantity"       example:"2 cases"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"      example:"2024-01-15T10:30:00Z"`
	UpdatedAt      time.Time `json:"updatedAt"      example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// ListWithItemsResponse is a list with its items, oldest first.
type ListWithItemsResponse struct {
	ListResponse
	Items []ItemResponse `json:"items"`
} // @name ListWithItemsResponse

// ListSummaryResponse is a list with its live item count.
type ListSummaryResponse struct {
	ListResponse
	ItemCount int `json:"itemCount" example:"3"`
} // @name ListSummaryResponse

// ListsResponse is the body of GET /shopping-lists.
type ListsResponse struct {
	Lists []ListSummaryResponse `json:"lists"`
	Total int                   `json:"total" example:"1"`
} // @name ListsResponse

// ReminderResponse is a scheduled reminder.
type ReminderResponse struct {
	ID             uuid.UUID `json:"id"             example:"9b2f1c9e-4f7d-4c1a-9f7e-2d8f0a6b1c3d"`
	ShoppingListID uuid.UUID `json:"shoppingListId" example:"550e8400-e29b-41d4-a716-446655440000"`
	ScheduledAt    time.Time `json:"scheduledAt"    example:"2030-01-15T10:30:00Z"`
	Status         string    `json:"status"         example:"pending"`
	CreatedAt      time.Time `json:"createdAt"      example:"2024-01-15T10:30:00Z"`
	UpdatedAt      time.Time `json:"updatedAt"      example:"2024-01-15T10:30:00Z"`
} // @name ReminderResponse

// RemindersResponse is the body of GET /shopping-lists/{id}/reminders.
type RemindersResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Total     int                `json:"total" example:"1"`
} // @name RemindersResponse

func toListResponse(l *models.ShoppingList) ListResponse {
	return ListResponse{
		ID:        l.ID,
		Name:      l.Name,
		Status:    l.Status.String(),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toItemResponse(it *models.ShoppingListItem) ItemResponse {
	return ItemResponse{
		ID:             it.ID,
		ShoppingListID: it.ShoppingListID,
		Name:           it.Name,
		Quantity:       it.Quantity,
		Notes:          it.Notes,
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
	}
}

func toListWithItemsResponse(l *models.ShoppingListWithItems) ListWithItemsResponse {
	items := make([]ItemResponse, len(l.Items))
	for i, it := range l.Items {
		items[i] = toItemResponse(it)
	}
	return ListWithItemsResponse{ListResponse: toListResponse(&l.ShoppingList), Items: items}
}

func toReminderResponse(r *models.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:             r.ID,
		ShoppingListID: r.ShoppingListID,
		ScheduledAt:    r.ScheduledAt,
		Status:         r.Status.String(),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
