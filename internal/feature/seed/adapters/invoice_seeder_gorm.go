package adapters

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"invoice_backend/internal/feature/seed/domain/entity"
	"invoice_backend/internal/feature/seed/usecase"
	"invoice_backend/internal/platform/db/dberr"
)

// insertInvoiceSQL は複合キーが衝突しない場合のみ請求書を挿入し、生成されたIDを返します。
// 衝突した場合は行を返しません。
const insertInvoiceSQL = `INSERT INTO invoices (customer_id, amount, status, date)
VALUES (?, ?, ?, ?)
ON CONFLICT (customer_id, date, amount, status) DO NOTHING
RETURNING id`

// invoiceSeeder はInvoiceSeederのGORM実装です。
type invoiceSeeder struct {
	db *gorm.DB
}

var _ usecase.InvoiceSeeder = (*invoiceSeeder)(nil)

// NewInvoiceSeeder はinvoiceSeederを生成します。
func NewInvoiceSeeder(db *gorm.DB) *invoiceSeeder {
	return &invoiceSeeder{db: db}
}

// Seed はソース順に請求書を挿入し、新規に挿入された請求書を生成IDとともに返します。
// (customer_id, date, amount, status) が既存の行と一致する請求書はスキップします。
// 存在しない顧客を参照する請求書があればusecase.ErrReferentialで中断します。
func (s *invoiceSeeder) Seed(ctx context.Context, rows []entity.Invoice) ([]entity.InsertedInvoice, error) {
	inserted := make([]entity.InsertedInvoice, 0, len(rows))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, inv := range rows {
			date, err := time.Parse(entity.DateLayout, inv.Date)
			if err != nil {
				return fmt.Errorf("%w: invoice date %q: %v", usecase.ErrInvalidSource, inv.Date, err)
			}

			var ids []string
			res := tx.Raw(insertInvoiceSQL, inv.CustomerID, inv.Amount, inv.Status, date).Scan(&ids)
			if res.Error != nil {
				if dberr.IsForeignKeyViolation(res.Error) {
					return fmt.Errorf("%w: invoice references unknown customer %s: %w",
						usecase.ErrReferential, inv.CustomerID, res.Error)
				}
				return fmt.Errorf("insert invoice for customer %s: %w", inv.CustomerID, res.Error)
			}
			if res.RowsAffected == 0 {
				continue
			}

			id := entity.UnknownID
			if len(ids) > 0 && ids[0] != "" {
				id = ids[0]
			}
			inserted = append(inserted, entity.InsertedInvoice{
				ID:         id,
				CustomerID: inv.CustomerID,
				Amount:     inv.Amount,
				Status:     inv.Status,
				Date:       inv.Date,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inserted, nil
}
