// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	invoiceadapters "invoice_backend/internal/feature/invoices/adapters"
	invoiceusecase "invoice_backend/internal/feature/invoices/usecase"
	seedusecase "invoice_backend/internal/feature/seed/usecase"
	"invoice_backend/internal/platform/cache"
)

// NewInvoiceRepository creates the invoice query repository.
// If Redis is available, the repository is wrapped with a read-through cache and
// the cache is returned as the invalidator used after seeding.
// Otherwise, it queries the database directly and the invalidator is nil.
func NewInvoiceRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) (invoiceusecase.InvoiceRepository, seedusecase.CacheInvalidator) {
	repo := invoiceadapters.NewInvoiceQueryRepository(db)
	if rdb == nil {
		return repo, nil
	}
	cached := cache.NewCachingInvoiceRepository(rdb, ttl, repo, "invoices")
	return cached, cached
}
