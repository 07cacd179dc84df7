package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
)

// ListRepository persists ShoppingList rows.
type ListRepository interface {
	// InsertList generates the id and stamps created/updated with the current instant.
	InsertList(ctx context.Context, d models.ListDraft) (*models.ShoppingList, error)
	// GetListByID returns domain.ErrListNotFound when no row matches.
	GetListByID(ctx context.Context, id uuid.UUID) (*models.ShoppingList, error)
	// FindLists returns lists newest first.
	FindLists(ctx context.Context, f models.ListFilter) ([]*models.ShoppingList, error)
	// FindListSummaries returns lists newest first with their live item counts.
	FindListSummaries(ctx context.Context, f models.ListFilter) ([]*models.ShoppingListSummary, error)
	// GetListSummary returns domain.ErrListNotFound when no row matches.
	GetListSummary(ctx context.Context, id uuid.UUID) (*models.ShoppingListSummary, error)
	// UpdateList applies the non-nil fields and refreshes updated_at. It reports
	// false when no row matched.
	UpdateList(ctx context.Context, id uuid.UUID, p models.ListPatch) (bool, error)
	// DeleteList removes the list with its items and reminders.
	DeleteList(ctx context.Context, id uuid.UUID) (bool, error)
}

// ItemRepository persists ShoppingListItem rows. Every operation is scoped by list.
type ItemRepository interface {
	// InsertItem returns domain.ErrListNotFound when listID has no row.
	InsertItem(ctx context.Context, listID uuid.UUID, d models.ItemDraft) (*models.ShoppingListItem, error)
	GetItemByID(ctx context.Context, listID, itemID uuid.UUID) (*models.ShoppingListItem, error)
	// FindItemsByListID returns items oldest first.
	FindItemsByListID(ctx context.Context, listID uuid.UUID) ([]*models.ShoppingListItem, error)
	UpdateItem(ctx context.Context, listID, itemID uuid.UUID, p models.ItemPatch) (bool, error)
	DeleteItem(ctx context.Context, listID, itemID uuid.UUID) (bool, error)
}

// ReminderRepository persists Reminder rows.
type ReminderRepository interface {
	// InsertReminder returns domain.ErrListNotFound when the owning list has no row.
	InsertReminder(ctx context.Context, d models.ReminderDraft) (*models.Reminder, error)
	GetReminderByID(ctx context.Context, id uuid.UUID) (*models.Reminder, error)
	// FindRemindersByListID returns reminders by scheduled time, earliest first.
	FindRemindersByListID(ctx context.Context, listID uuid.UUID) ([]*models.Reminder, error)
	UpdateReminder(ctx context.Context, id uuid.UUID, p models.ReminderPatch) (bool, error)
	DeleteReminder(ctx context.Context, id uuid.UUID) (bool, error)
}

// Gateway is the single persistence boundary of the shopping list context.
// The domain layer owns this interface; infrastructure implements it.
type Gateway interface {
	ListRepository
	ItemRepository
	ReminderRepository

	// WithinTx runs fn against a Gateway bound to one transaction. Returning an
	// error from fn rolls every write back.
	WithinTx(ctx context.Context, fn func(tx Gateway) error) error

	// Publish records a domain event. Inside WithinTx the event commits or rolls
	// back with the surrounding writes. It is a no-op when no event bus is configured.
	Publish(ctx context.Context, topic string, event any) error
}
