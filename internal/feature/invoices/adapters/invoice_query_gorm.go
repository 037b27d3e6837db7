// Package adapters はinvoicesフィーチャーの読み取りクエリのGORM実装を提供します。
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"invoice_backend/internal/feature/invoices/domain/entity"
	"invoice_backend/internal/feature/invoices/usecase"
)

// invoiceRowModel は請求書と顧客の結合結果の1行です。
type invoiceRowModel struct {
	ID         string
	Date       time.Time
	Amount     int
	CustomerID string
	Name       string
}

// amountRowModel は金額検索の結果の1行です。
type amountRowModel struct {
	Amount int
	Name   string
}

// invoiceQueryGorm はInvoiceRepositoryのGORM実装です。
type invoiceQueryGorm struct {
	db *gorm.DB
}

var _ usecase.InvoiceRepository = (*invoiceQueryGorm)(nil)

// NewInvoiceQueryRepository はinvoiceQueryGormを生成します。
func NewInvoiceQueryRepository(db *gorm.DB) *invoiceQueryGorm {
	return &invoiceQueryGorm{db: db}
}

// joinCustomers はinvoicesとcustomersを内部結合したクエリを返します。
// 顧客が存在しない請求書は結果に含まれません。
func (r *invoiceQueryGorm) joinCustomers(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("invoices").
		Joins("JOIN customers ON invoices.customer_id = customers.id")
}

// ListAll は全請求書を顧客名付きで日付の降順に返します。
func (r *invoiceQueryGorm) ListAll(ctx context.Context) ([]entity.InvoiceRow, error) {
	var models []invoiceRowModel
	err := r.joinCustomers(ctx).
		Select("invoices.id, invoices.date, invoices.amount, invoices.customer_id, customers.name").
		Order("invoices.date DESC").
		Scan(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.InvoiceRow, 0, len(models))
	for _, m := range models {
		out = append(out, entity.InvoiceRow{
			ID:         m.ID,
			Date:       m.Date.UTC(),
			Amount:     m.Amount,
			CustomerID: m.CustomerID,
			Name:       m.Name,
		})
	}
	return out, nil
}

// ListByAmount は金額が一致する請求書の金額と顧客名を返します。
func (r *invoiceQueryGorm) ListByAmount(ctx context.Context, amount int) ([]entity.AmountRow, error) {
	var models []amountRowModel
	err := r.joinCustomers(ctx).
		Select("invoices.amount, customers.name").
		Where("invoices.amount = ?", amount).
		Order("customers.name").
		Scan(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.AmountRow, 0, len(models))
	for _, m := range models {
		out = append(out, entity.AmountRow{Amount: m.Amount, Name: m.Name})
	}
	return out, nil
}
