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

// CreateListInput is a new list with optional nested items.
type CreateListInput struct {
	Name  string
	Items []models.ItemDraft
}

// ListPage is the result of GetAll. Total always equals len(Lists).
type ListPage struct {
	Lists []*models.ShoppingListSummary
	Total int
}

// ListService orchestrates shopping lists. Event publishing goes through the
// gateway's outbox inside the same transaction as the write.
// Reads by id are served from the list cache when one is configured.
type ListService struct {
	store repositories.Gateway
	cache *readCache
	log   logger.Logger
	m     *metrics
	now   func() time.Time
}

// Create stores an active list and its nested items in one transaction.
func (s *ListService) Create(ctx context.Context, in CreateListInput) (*models.ShoppingListWithItems, error) {
	if err := domainsvcs.ValidateName("name", in.Name); err != nil {
		return nil, err
	}
	for i, d := range in.Items {
		if err := domainsvcs.ValidateItemDraft(fmt.Sprintf("items[%d]", i), d); err != nil {
			return nil, err
		}
	}

	var out *models.ShoppingListWithItems
	err := s.store.WithinTx(ctx, func(tx repositories.Gateway) error {
		list, err := tx.InsertList(ctx, models.ListDraft{Name: in.Name, Status: models.ListStatusActive})
		if err != nil {
			return err
		}
		items := make([]*models.ShoppingListItem, 0, len(in.Items))
		for _, d := range in.Items {
			item, err := tx.InsertItem(ctx, list.ID, domainsvcs.NormalizeItemDraft(d))
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		out = &models.ShoppingListWithItems{ShoppingList: *list, Items: items}
		return tx.Publish(ctx, events.TopicListCreated, events.NewListCreated(out))
	})
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}

	s.m.mutated(ctx, "list", "create")
	s.log.InfoContext(ctx, "shopping list created", "list_id", out.ID, "items", len(out.Items))
	return out, nil
}

// GetAll returns lists newest first with their item counts. A nil status
// returns every list.
func (s *ListService) GetAll(ctx context.Context, status *models.ListStatus) (*ListPage, error) {
	lists, err := s.store.FindListSummaries(ctx, models.ListFilter{Status: status})
	if err != nil {
		return nil, fmt.Errorf("list shopping lists: %w", err)
	}
	if lists == nil {
		lists = []*models.ShoppingListSummary{}
	}
	return &ListPage{Lists: lists, Total: len(lists)}, nil
}

// GetByID uses a read-through cache:
//  1. Check Redis first.
//  2. On a miss (or cache error), read the list and its items from the store.
//  3. Write the result back before returning.
func (s *ListService) GetByID(ctx context.Context, id uuid.UUID) (*models.ShoppingListWithItems, bool, error) {
	if l, ok := s.cache.get(ctx, id); ok {
		return l, true, nil
	}
	l, found, err := loadList(ctx, s.store, id)
	if err != nil || !found {
		return nil, found, err
	}
	s.cache.put(ctx, l)
	return l, true, nil
}

// Update applies p. found is false when the list does not exist.
func (s *ListService) Update(ctx context.Context, id uuid.UUID, p models.ListPatch) (*models.ShoppingListWithItems, bool, error) {
	if err := domainsvcs.ValidateListPatch(p); err != nil {
		return nil, false, err
	}
	ok, err := s.store.UpdateList(ctx, id, p)
	if err != nil {
		return nil, false, fmt.Errorf("update list: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	s.cache.evict(ctx, id)
	s.m.mutated(ctx, "list", "update")
	s.log.InfoContext(ctx, "shopping list updated", "list_id", id)
	return loadList(ctx, s.store, id)
}

// Delete removes the list with its items and reminders. It reports false when
// the list does not exist.
func (s *ListService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := s.store.WithinTx(ctx, func(tx repositories.Gateway) error {
		var err error
		if deleted, err = tx.DeleteList(ctx, id); err != nil || !deleted {
			return err
		}
		return tx.Publish(ctx, events.TopicListDeleted, events.NewListDeleted(id, s.now()))
	})
	if err != nil {
		return false, fmt.Errorf("delete list: %w", err)
	}
	if deleted {
		s.cache.evict(ctx, id)
		s.m.mutated(ctx, "list", "delete")
		s.log.InfoContext(ctx, "shopping list deleted", "list_id", id)
	}
	return deleted, nil
}

// Send sets the list status, "sent" unless status says otherwise. Any declared
// status is accepted regardless of the current one.
func (s *ListService) Send(ctx context.Context, id uuid.UUID, status *models.ListStatus) (*models.ShoppingListWithItems, bool, error) {
	target := models.ListStatusSent
	if status != nil {
		if !status.Valid() {
			return nil, false, domain.InvalidField("status", "Must be one of: active, sent, completed")
		}
		target = *status
	}

	var (
		out   *models.ShoppingListWithItems
		found bool
	)
	err := s.store.WithinTx(ctx, func(tx repositories.Gateway) error {
		ok, err := tx.UpdateList(ctx, id, models.ListPatch{Status: &target})
		if err != nil || !ok {
			return err
		}
		if out, found, err = loadList(ctx, tx, id); err != nil || !found {
			return err
		}
		return tx.Publish(ctx, events.TopicListSent, events.NewListSent(&out.ShoppingList))
	})
	if err != nil {
		return nil, false, fmt.Errorf("send list: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	s.cache.evict(ctx, id)
	s.m.mutated(ctx, "list", "send")
	s.log.InfoContext(ctx, "shopping list sent", "list_id", id, "status", target)
	return out, true, nil
}

// loadList reads a list and its items, turning a missing list into found=false.
func loadList(ctx context.Context, g repositories.Gateway, id uuid.UUID) (*models.ShoppingListWithItems, bool, error) {
	list, err := g.GetListByID(ctx, id)
	if errors.Is(err, domain.ErrListNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get list: %w", err)
	}
	items, err := g.FindItemsByListID(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("get list items: %w", err)
	}
	if items == nil {
		items = []*models.ShoppingListItem{}
	}
	return &models.ShoppingListWithItems{ShoppingList: *list, Items: items}, true, nil
}
