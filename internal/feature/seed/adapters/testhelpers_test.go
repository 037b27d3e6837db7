package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"invoice_backend/internal/feature/seed/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database with foreign keys enforced
// and the invoice schema created.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err, "failed to initialize test database")

	// A second connection would open a different in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	schema, err := NewSchemaManager(db)
	require.NoError(t, err)
	require.NoError(t, schema.Reset(context.Background()), "failed to create schema")

	return db
}

// plainHasher is a PasswordHasher that marks the value instead of hashing it.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

// countRows returns the number of rows in a table.
func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

const (
	customerA = "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"
	customerB = "3958dc9e-712f-4377-85e9-fec4b6a6442a"
)

// seedCustomers inserts two fixed customers.
func seedCustomers(t *testing.T, db *gorm.DB) {
	t.Helper()

	_, err := NewCustomerSeeder(db).Seed(context.Background(), []entity.Customer{
		{ID: customerA, Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{ID: customerB, Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	})
	require.NoError(t, err, "failed to seed customers")
}
