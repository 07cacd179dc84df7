package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/pkg/logger"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/repositories"
	domainsvcs "github.com/ghuser/shoppinglist/services/shoppinglist/domain/services"
)

// ItemService manages the items of a list. Every write evicts the owning
// list from the cache.
type ItemService struct {
	store repositories.Gateway
	cache *readCache
	log   logger.Logger
	m     *metrics
}

// Add appends an item to a list. A missing list yields domain.ErrListNotFound
// whether or not the draft is valid.
func (s *ItemService) Add(ctx context.Context, listID uuid.UUID, d models.ItemDraft) (*models.ShoppingListItem, error) {
	if _, err := s.store.GetListByID(ctx, listID); err != nil {
		if errors.Is(err, domain.ErrListNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("check list: %w", err)
	}
	if err := domainsvcs.ValidateItemDraft("", d); err != nil {
		return nil, err
	}

	item, err := s.store.InsertItem(ctx, listID, domainsvcs.NormalizeItemDraft(d))
	if err != nil {
		if errors.Is(err, domain.ErrListNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("add item: %w", err)
	}
	s.cache.evict(ctx, listID)
	s.m.mutated(ctx, "item", "create")
	s.log.InfoContext(ctx, "item added", "list_id", listID, "item_id", item.ID)
	return item, nil
}

// GetByID returns the item only when it belongs to listID.
func (s *ItemService) GetByID(ctx context.Context, listID, itemID uuid.UUID) (*models.ShoppingListItem, bool, error) {
	item, err := s.store.GetItemByID(ctx, listID, itemID)
	if errors.Is(err, domain.ErrItemNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get item: %w", err)
	}
	return item, true, nil
}

// Update applies p. found is false when the item does not exist under listID.
func (s *ItemService) Update(ctx context.Context, listID, itemID uuid.UUID, p models.ItemPatch) (*models.ShoppingListItem, bool, error) {
	if err := domainsvcs.ValidateItemPatch(p); err != nil {
		return nil, false, err
	}
	ok, err := s.store.UpdateItem(ctx, listID, itemID, p)
	if err != nil {
		return nil, false, fmt.Errorf("update item: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	s.cache.evict(ctx, listID)
	s.m.mutated(ctx, "item", "update")
	s.log.InfoContext(ctx, "item updated", "list_id", listID, "item_id", itemID)
	return s.GetByID(ctx, listID, itemID)
}

// Delete reports false when the item does not exist under listID.
func (s *ItemService) Delete(ctx context.Context, listID, itemID uuid.UUID) (bool, error) {
	deleted, err := s.store.DeleteItem(ctx, listID, itemID)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	if deleted {
		s.cache.evict(ctx, listID)
		s.m.mutated(ctx, "item", "delete")
		s.log.InfoContext(ctx, "item deleted", "list_id", listID, "item_id", itemID)
	}
	return deleted, nil
}
