package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice_backend/internal/feature/seed/usecase"
)

// TestLoader_EmbeddedDataset は組み込みのプレースホルダーデータが検証を通過することを検証します。
func TestLoader_EmbeddedDataset(t *testing.T) {
	t.Parallel()

	ds, err := NewLoader("").Dataset(context.Background())

	require.NoError(t, err)
	assert.Len(t, ds.Customers, 6)
	assert.Len(t, ds.Users, 1)
	assert.Len(t, ds.Invoices, 13)
	assert.Len(t, ds.Revenue, 12)
}

// TestLoader_EmbeddedDatasetIsReferentiallyConsistent は全請求書が既知の顧客を参照していることを検証します。
func TestLoader_EmbeddedDatasetIsReferentiallyConsistent(t *testing.T) {
	t.Parallel()

	ds, err := NewLoader("").Dataset(context.Background())
	require.NoError(t, err)

	known := map[string]bool{}
	for _, c := range ds.Customers {
		known[c.ID] = true
	}
	for _, inv := range ds.Invoices {
		assert.True(t, known[inv.CustomerID], "invoice references unknown customer %s", inv.CustomerID)
	}
}

func TestParse_CanonicalizesUUIDs(t *testing.T) {
	t.Parallel()

	data := []byte(`
customers:
  - {id: CC27C14A-0ACF-4F4A-A6C9-D45682C144B9, name: Amy Burns, email: amy@burns.com, image_url: /customers/amy-burns.png}
invoices:
  - {customer_id: CC27C14A-0ACF-4F4A-A6C9-D45682C144B9, amount: 1250, status: paid, date: "2023-06-17"}
`)

	ds, err := Parse(data)

	require.NoError(t, err)
	assert.Equal(t, "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", ds.Customers[0].ID)
	assert.Equal(t, "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", ds.Invoices[0].CustomerID)
}

func TestParse_InvalidRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{
			name: "malformed yaml",
			data: "customers: [",
		},
		{
			name: "customer id is not a uuid",
			data: `customers: [{id: abc, name: A, email: a@example.com, image_url: /a.png}]`,
		},
		{
			name: "invalid email",
			data: `users: [{id: 410544b2-4001-4271-9855-fec4b6a6442a, name: U, email: nope, password: x}]`,
		},
		{
			name: "unknown invoice status",
			data: `invoices: [{customer_id: 410544b2-4001-4271-9855-fec4b6a6442a, amount: 1, status: void, date: "2023-01-01"}]`,
		},
		{
			name: "invalid invoice date",
			data: `invoices: [{customer_id: 410544b2-4001-4271-9855-fec4b6a6442a, amount: 1, status: paid, date: "01/01/2023"}]`,
		},
		{
			name: "negative amount",
			data: `invoices: [{customer_id: 410544b2-4001-4271-9855-fec4b6a6442a, amount: -5, status: paid, date: "2023-01-01"}]`,
		},
		{
			name: "month code too long",
			data: `revenue: [{month: January, revenue: 10}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))

			assert.ErrorIs(t, err, usecase.ErrInvalidSource)
		})
	}
}

func TestLoader_FileOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	data := `revenue: [{month: Jan, revenue: 10}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	ds, err := NewLoader(path).Dataset(context.Background())

	require.NoError(t, err)
	assert.Empty(t, ds.Customers)
	require.Len(t, ds.Revenue, 1)
	assert.Equal(t, "Jan", ds.Revenue[0].Month)
}

func TestLoader_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Dataset(context.Background())

	assert.ErrorIs(t, err, usecase.ErrInvalidSource)
}
