package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultListCacheTTL bounds how long a stale entry can outlive a write that
	// failed to invalidate it.
	DefaultListCacheTTL = time.Minute

	listCacheKeyPrefix = "shopping_list"
)

// ErrMiss is returned by ListCache.Get when the key does not exist or has expired.
var ErrMiss = errors.New("cache miss")

// CachedListItem is the cached form of one item.
type CachedListItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  *string   `json:"quantity,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CachedList is the denormalized read model of a list with its items.
type CachedList struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Items     []CachedListItem `json:"items"`
}

// ListCache stores lists with their items as JSON strings.
// Key format: "shopping_list:{listID}"
type ListCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewListCache returns a ListCache. A non-positive ttl selects DefaultListCacheTTL.
func NewListCache(r *RedisClient, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = DefaultListCacheTTL
	}
	return &ListCache{client: r, ttl: ttl}
}

// TTL returns the expiry applied by Set.
func (c *ListCache) TTL() time.Duration { return c.ttl }

// Get returns ErrMiss when nothing is cached for id.
func (c *ListCache) Get(ctx context.Context, id uuid.UUID) (*CachedList, error) {
	raw, err := c.client.Client().Get(ctx, Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var l CachedList
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &l, nil
}

// Set writes l with the cache TTL.
func (c *ListCache) Set(ctx context.Context, l *CachedList) error {
	raw, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, Key(l.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes the entry for id. Deleting a missing key is not an error.
func (c *ListCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Client().Del(ctx, Key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Key builds the Redis key for a list.
func Key(id uuid.UUID) string {
	return listCacheKeyPrefix + ":" + id.String()
}
