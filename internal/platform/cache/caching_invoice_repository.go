// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"invoice_backend/internal/feature/invoices/domain/entity"
	"invoice_backend/internal/feature/invoices/usecase"
)

// CachingInvoiceRepository decorates an InvoiceRepository with a Redis read-through cache.
// Entries live until the TTL expires or Invalidate is called after a seed.
type CachingInvoiceRepository struct {
	inner     usecase.InvoiceRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.InvoiceRepository = (*CachingInvoiceRepository)(nil)

// NewCachingInvoiceRepository decorates an InvoiceRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "invoices".
func NewCachingInvoiceRepository(rdb *redis.Client, ttl time.Duration, inner usecase.InvoiceRepository, namespace string) *CachingInvoiceRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "invoices"
	}
	return &CachingInvoiceRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListAll returns all invoices, checking the cache first.
func (c *CachingInvoiceRepository) ListAll(ctx context.Context) ([]entity.InvoiceRow, error) {
	return readThrough(ctx, c, c.namespace+":all", func() ([]entity.InvoiceRow, error) {
		return c.inner.ListAll(ctx)
	})
}

// ListByAmount returns invoices with the given amount, checking the cache first.
func (c *CachingInvoiceRepository) ListByAmount(ctx context.Context, amount int) ([]entity.AmountRow, error) {
	key := fmt.Sprintf("%s:amount:%d", c.namespace, amount)
	return readThrough(ctx, c, key, func() ([]entity.AmountRow, error) {
		return c.inner.ListByAmount(ctx, amount)
	})
}

// Invalidate deletes every cached query result under the namespace.
func (c *CachingInvoiceRepository) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.namespace+":*")
}

// readThrough returns the cached value for key, or loads it and stores it (best effort).
func readThrough[T any](ctx context.Context, c *CachingInvoiceRepository, key string, load func() ([]T, error)) ([]T, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingInvoiceRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
