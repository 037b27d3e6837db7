package di

import (
	"log/slog"
	"os"
	"strconv"

	"gorm.io/gorm"

	seedadapters "invoice_backend/internal/feature/seed/adapters"
	"invoice_backend/internal/feature/seed/source"
	seedusecase "invoice_backend/internal/feature/seed/usecase"
)

// NewSeedUsecase wires the full-seed orchestrator against db.
// cache may be nil when no query cache is configured.
func NewSeedUsecase(db *gorm.DB, cache seedusecase.CacheInvalidator) (*seedusecase.SeedUsecase, error) {
	schema, err := seedadapters.NewSchemaManager(db)
	if err != nil {
		return nil, err
	}
	hasher := seedadapters.NewBcryptHasher(bcryptCostFromEnv())

	return seedusecase.NewSeedUsecase(
		source.NewLoader(source.LoadConfig()),
		schema,
		seedadapters.NewCustomerSeeder(db),
		seedadapters.NewUserSeeder(db, hasher),
		seedadapters.NewRevenueSeeder(db),
		seedadapters.NewInvoiceSeeder(db),
		cache,
	), nil
}

// bcryptCostFromEnv reads SEED_BCRYPT_COST. Unset or invalid values use the default cost.
func bcryptCostFromEnv() int {
	v := os.Getenv("SEED_BCRYPT_COST")
	if v == "" {
		return seedadapters.DefaultHashCost
	}
	cost, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid SEED_BCRYPT_COST, using default", "value", v, "default", seedadapters.DefaultHashCost)
		return seedadapters.DefaultHashCost
	}
	return cost
}
