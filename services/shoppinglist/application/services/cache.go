package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/pkg/cache"
	"github.com/ghuser/shoppinglist/pkg/logger"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
)

// ListCache is the read-through cache in front of ListService.GetByID.
// *cache.ListCache implements it.
type ListCache interface {
	Get(ctx context.Context, id uuid.UUID) (*cache.CachedList, error)
	Set(ctx context.Context, l *cache.CachedList) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// readCache makes the cache optional and best-effort: every failure is
// logged and the caller falls through to the store.
type readCache struct {
	c   ListCache
	log logger.Logger
	m   *metrics
}

func (r *readCache) get(ctx context.Context, id uuid.UUID) (*models.ShoppingListWithItems, bool) {
	if r.c == nil {
		return nil, false
	}
	cached, err := r.c.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			r.log.WarnContext(ctx, "list cache read failed", "list_id", id, "error", err)
		}
		r.m.lookup(ctx, "miss")
		return nil, false
	}
	r.m.lookup(ctx, "hit")
	return fromCached(cached), true
}

func (r *readCache) put(ctx context.Context, l *models.ShoppingListWithItems) {
	if r.c == nil {
		return
	}
	if err := r.c.Set(ctx, toCached(l)); err != nil {
		r.log.WarnContext(ctx, "list cache write failed", "list_id", l.ID, "error", err)
	}
}

func (r *readCache) evict(ctx context.Context, id uuid.UUID) {
	if r.c == nil {
		return
	}
	if err := r.c.Delete(ctx, id); err != nil {
		r.log.WarnContext(ctx, "list cache eviction failed", "list_id", id, "error", err)
	}
}

func toCached(l *models.ShoppingListWithItems) *cache.CachedList {
	items := make([]cache.CachedListItem, len(l.Items))
	for i, it := range l.Items {
		items[i] = cache.CachedListItem{
			ID:        it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Notes:     it.Notes,
			CreatedAt: it.CreatedAt,
			UpdatedAt: it.UpdatedAt,
		}
	}
	return &cache.CachedList{
		ID:        l.ID,
		Name:      l.Name,
		Status:    l.Status.String(),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
		Items:     items,
	}
}

func fromCached(c *cache.CachedList) *models.ShoppingListWithItems {
	items := make([]*models.ShoppingListItem, len(c.Items))
	for i, it := range c.Items {
		items[i] = &models.ShoppingListItem{
			ID:             it.ID,
			ShoppingListID: c.ID,
			Name:           it.Name,
			Quantity:       it.Quantity,
			Notes:          it.Notes,
			CreatedAt:      it.CreatedAt.UTC(),
			UpdatedAt:      it.UpdatedAt.UTC(),
		}
	}
	return &models.ShoppingListWithItems{
		ShoppingList: models.ShoppingList{
			ID:        c.ID,
			Name:      c.Name,
			Status:    models.ListStatus(c.Status),
			CreatedAt: c.CreatedAt.UTC(),
			UpdatedAt: c.UpdatedAt.UTC(),
		},
		Items: items,
	}
}
