// Package usecase はinvoicesフィーチャーの読み取りクエリを実装します。
package usecase

import (
	"context"
	"fmt"

	"invoice_backend/internal/feature/invoices/domain/entity"
)

// InvoiceRepository は請求書の読み取り専用リポジトリです。
type InvoiceRepository interface {
	// ListAll は全請求書を顧客名付きで日付の降順に返します。
	ListAll(ctx context.Context) ([]entity.InvoiceRow, error)
	// ListByAmount は金額が一致する請求書の金額と顧客名を返します。
	ListByAmount(ctx context.Context, amount int) ([]entity.AmountRow, error)
}

// QueryUsecase は請求書一覧の取得を行います。
type QueryUsecase struct {
	repo InvoiceRepository
}

// NewQueryUsecase はQueryUsecaseを生成します。
func NewQueryUsecase(repo InvoiceRepository) *QueryUsecase {
	return &QueryUsecase{repo: repo}
}

// ListAllInvoices は全請求書を返します。該当がなければ空のスライスを返します。
func (u *QueryUsecase) ListAllInvoices(ctx context.Context) ([]entity.InvoiceRow, error) {
	rows, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list invoices: %w", ErrQuery, err)
	}
	if rows == nil {
		rows = []entity.InvoiceRow{}
	}
	return rows, nil
}

// ListInvoicesByAmount は指定金額の請求書を返します。該当がなければ空のスライスを返します。
func (u *QueryUsecase) ListInvoicesByAmount(ctx context.Context, amount int) ([]entity.AmountRow, error) {
	rows, err := u.repo.ListByAmount(ctx, amount)
	if err != nil {
		return nil, fmt.Errorf("%w: list invoices by amount %d: %w", ErrQuery, amount, err)
	}
	if rows == nil {
		rows = []entity.AmountRow{}
	}
	return rows, nil
}
