// Package usecase はseedフィーチャーのビジネスロジック（全件リセットと投入）を実装します。
package usecase

import (
	"context"
	"log/slog"
	"sync"

	"invoice_backend/internal/feature/seed/domain/entity"
)

// SourceProvider は投入元データセットを提供します。
type SourceProvider interface {
	Dataset(ctx context.Context) (*entity.Dataset, error)
}

// SchemaManager はテーブルと拡張機能の削除・再作成を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type SchemaManager interface {
	// Reset は4つのテーブルを削除して作り直します。空のDBに対しても同様に成功します。
	Reset(ctx context.Context) error
}

// CustomerSeeder は顧客レコードを既存でなければ挿入し、新規挿入件数を返します。
type CustomerSeeder interface {
	Seed(ctx context.Context, rows []entity.Customer) (int, error)
}

// UserSeeder はユーザーレコードをパスワードをハッシュ化したうえで挿入し、新規挿入件数を返します。
type UserSeeder interface {
	Seed(ctx context.Context, rows []entity.User) (int, error)
}

// RevenueSeeder は月次売上レコードを挿入し、新規挿入件数を返します。
type RevenueSeeder interface {
	Seed(ctx context.Context, rows []entity.Revenue) (int, error)
}

// InvoiceSeeder は請求書レコードを複合キーで重複排除しながら挿入し、新規挿入分を返します。
type InvoiceSeeder interface {
	Seed(ctx context.Context, rows []entity.Invoice) ([]entity.InsertedInvoice, error)
}

// CacheInvalidator は投入によって古くなった読み取りキャッシュを破棄します。
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// SeedUsecase は全件リセットと投入を依存順に実行します。
// 同一プロセス内で同時に実行できる投入は1つだけです。
type SeedUsecase struct {
	running sync.Mutex

	source    SourceProvider
	schema    SchemaManager
	customers CustomerSeeder
	users     UserSeeder
	revenue   RevenueSeeder
	invoices  InvoiceSeeder
	cache     CacheInvalidator
}

// NewSeedUsecase はSeedUsecaseを生成します。cacheはnilでも構いません。
func NewSeedUsecase(
	source SourceProvider,
	schema SchemaManager,
	customers CustomerSeeder,
	users UserSeeder,
	revenue RevenueSeeder,
	invoices InvoiceSeeder,
	cache CacheInvalidator,
) *SeedUsecase {
	return &SeedUsecase{
		source:    source,
		schema:    schema,
		customers: customers,
		users:     users,
		revenue:   revenue,
		invoices:  invoices,
		cache:     cache,
	}
}

// RunFullSeed はスキーマをリセットし、顧客・ユーザー・売上、最後に請求書の順で投入します。
//
// 最初に失敗した段階で中断し、それ以前に完了した段階はロールバックしません。
// 失敗時は失敗した段階と完了済みの段階を持つ *SeedError を返します。
// データセットは検証済みのものだけを使うため、読み込みに失敗した場合はDBに触れません。
// 別の投入が実行中の場合はErrSeedInProgressを返します。
func (u *SeedUsecase) RunFullSeed(ctx context.Context) (*entity.Summary, error) {
	if !u.running.TryLock() {
		return nil, ErrSeedInProgress
	}
	defer u.running.Unlock()

	ds, err := u.source.Dataset(ctx)
	if err != nil {
		return nil, &SeedError{Stage: StageSource, Err: err}
	}

	// リセット以降はDBの内容が変わるため、成否に関わらずキャッシュを破棄する
	defer u.invalidateCache(ctx)

	var (
		summary   entity.Summary
		completed []string
	)
	fail := func(stage string, err error) (*entity.Summary, error) {
		slog.Error("seed aborted", "stage", stage, "completed", completed, "error", err)
		return nil, &SeedError{Stage: stage, Completed: completed, Err: err}
	}

	slog.Info("seed started",
		"customers", len(ds.Customers), "users", len(ds.Users),
		"revenue", len(ds.Revenue), "invoices", len(ds.Invoices))

	if err := u.schema.Reset(ctx); err != nil {
		return fail(StageSchema, err)
	}
	completed = append(completed, StageSchema)

	// customers/users/revenue は互いに独立しているが、invoicesより前に完了している必要がある
	if summary.Customers, err = u.customers.Seed(ctx, ds.Customers); err != nil {
		return fail(StageCustomers, err)
	}
	completed = append(completed, StageCustomers)
	slog.Info("seeded customers", "inserted", summary.Customers)

	if summary.Users, err = u.users.Seed(ctx, ds.Users); err != nil {
		return fail(StageUsers, err)
	}
	completed = append(completed, StageUsers)
	slog.Info("seeded users", "inserted", summary.Users)

	if summary.Revenue, err = u.revenue.Seed(ctx, ds.Revenue); err != nil {
		return fail(StageRevenue, err)
	}
	completed = append(completed, StageRevenue)
	slog.Info("seeded revenue", "inserted", summary.Revenue)

	if summary.Invoices, err = u.invoices.Seed(ctx, ds.Invoices); err != nil {
		return fail(StageInvoices, err)
	}
	slog.Info("seeded invoices", "inserted", summary.InvoiceCount())

	slog.Info("seed completed",
		"customers", summary.Customers, "users", summary.Users,
		"revenue", summary.Revenue, "invoices", summary.InvoiceCount())
	return &summary, nil
}

// invalidateCache はベストエフォートでキャッシュを破棄します。
func (u *SeedUsecase) invalidateCache(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate invoice cache", "error", err)
	}
}
