package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"invoice_backend/internal/feature/invoices/domain/entity"
)

// mockInvoiceRepository はテスト用のInvoiceRepositoryモック実装です。
type mockInvoiceRepository struct {
	listAllFn      func(ctx context.Context) ([]entity.InvoiceRow, error)
	listByAmountFn func(ctx context.Context, amount int) ([]entity.AmountRow, error)
}

func (m *mockInvoiceRepository) ListAll(ctx context.Context) ([]entity.InvoiceRow, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) ListByAmount(ctx context.Context, amount int) ([]entity.AmountRow, error) {
	if m.listByAmountFn != nil {
		return m.listByAmountFn(ctx, amount)
	}
	return nil, nil
}

var sampleRows = []entity.InvoiceRow{
	{ID: "i1", Date: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), Amount: 300, CustomerID: "c1", Name: "Alice"},
}

// TestNewCachingInvoiceRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingInvoiceRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"default values when zero/empty", 0, "", 5 * time.Minute, "invoices"},
		{"negative ttl uses default", -time.Minute, "", 5 * time.Minute, "invoices"},
		{"custom values preserved", 10 * time.Minute, "custom", 10 * time.Minute, "custom"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingInvoiceRepository(nil, tt.ttl, &mockInvoiceRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

// TestCachingInvoiceRepository_ListAll_NilRedis はRedisがnilの場合にキャッシュをバイパスすることを検証します。
func TestCachingInvoiceRepository_ListAll_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockInvoiceRepository{
		listAllFn: func(ctx context.Context) ([]entity.InvoiceRow, error) { return sampleRows, nil },
	}
	repo := NewCachingInvoiceRepository(nil, 5*time.Minute, inner, "")

	rows, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
	if err := repo.Invalidate(context.Background()); err != nil {
		t.Errorf("Invalidate without redis should be a no-op, got %v", err)
	}
}

// TestCachingInvoiceRepository_ListAll_CacheHit はキャッシュヒット時に内部リポジトリを呼ばないことを検証します。
func TestCachingInvoiceRepository_ListAll_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached, _ := json.Marshal(sampleRows)
	mock.ExpectGet("invoices:all").SetVal(string(cached))

	innerCalled := false
	inner := &mockInvoiceRepository{
		listAllFn: func(ctx context.Context) ([]entity.InvoiceRow, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingInvoiceRepository(rdb, 5*time.Minute, inner, "invoices")
	rows, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if len(rows) != 1 || rows[0].Name != "Alice" || !rows[0].Date.Equal(sampleRows[0].Date) {
		t.Errorf("unexpected rows from cache: %+v", rows)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingInvoiceRepository_ListAll_CacheMiss はキャッシュミス時にDBから取得してキャッシュに保存することを検証します。
func TestCachingInvoiceRepository_ListAll_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(sampleRows)
	mock.ExpectGet("invoices:all").RedisNil()
	mock.ExpectSet("invoices:all", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockInvoiceRepository{
		listAllFn: func(ctx context.Context) ([]entity.InvoiceRow, error) { return sampleRows, nil },
	}

	repo := NewCachingInvoiceRepository(rdb, 5*time.Minute, inner, "invoices")
	rows, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingInvoiceRepository_ListByAmount_CacheMiss は金額ごとのキーでキャッシュされることを検証します。
func TestCachingInvoiceRepository_ListByAmount_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	rows := []entity.AmountRow{{Amount: 666, Name: "Evil Rabbit"}}
	expectedJSON, _ := json.Marshal(rows)
	mock.ExpectGet("invoices:amount:666").RedisNil()
	mock.ExpectSet("invoices:amount:666", expectedJSON, time.Minute).SetVal("OK")

	inner := &mockInvoiceRepository{
		listByAmountFn: func(ctx context.Context, amount int) ([]entity.AmountRow, error) {
			if amount != 666 {
				t.Errorf("expected amount 666, got %d", amount)
			}
			return rows, nil
		},
	}

	repo := NewCachingInvoiceRepository(rdb, time.Minute, inner, "invoices")
	got, err := repo.ListByAmount(context.Background(), 666)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 row, got %d", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingInvoiceRepository_ListAll_InnerError はDBエラーが伝播しキャッシュされないことを検証します。
func TestCachingInvoiceRepository_ListAll_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("database error")
	mock.ExpectGet("invoices:all").RedisNil()

	inner := &mockInvoiceRepository{
		listAllFn: func(ctx context.Context) ([]entity.InvoiceRow, error) { return nil, expectedErr },
	}

	repo := NewCachingInvoiceRepository(rdb, 5*time.Minute, inner, "invoices")
	_, err := repo.ListAll(context.Background())

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingInvoiceRepository_ListAll_CorruptedCache は破損したキャッシュを削除してDBにフォールバックすることを検証します。
func TestCachingInvoiceRepository_ListAll_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(sampleRows)
	mock.ExpectGet("invoices:all").SetVal("invalid json")
	mock.ExpectDel("invoices:all").SetVal(1)
	mock.ExpectSet("invoices:all", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockInvoiceRepository{
		listAllFn: func(ctx context.Context) ([]entity.InvoiceRow, error) { return sampleRows, nil },
	}

	repo := NewCachingInvoiceRepository(rdb, 5*time.Minute, inner, "invoices")
	rows, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingInvoiceRepository_Invalidate は名前空間配下のキーがSCANとDELで削除されることを検証します。
func TestCachingInvoiceRepository_Invalidate(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectScan(0, "invoices:*", 200).SetVal([]string{"invoices:all", "invoices:amount:666"}, 7)
	mock.ExpectDel("invoices:all", "invoices:amount:666").SetVal(2)
	mock.ExpectScan(7, "invoices:*", 200).SetVal([]string{"invoices:amount:1"}, 0)
	mock.ExpectDel("invoices:amount:1").SetVal(1)

	repo := NewCachingInvoiceRepository(rdb, 5*time.Minute, &mockInvoiceRepository{}, "invoices")
	if err := repo.Invalidate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingInvoiceRepository_Invalidate_ScanError はSCANの失敗が呼び出し元に返されることを検証します。
func TestCachingInvoiceRepository_Invalidate_ScanError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	scanErr := errors.New("connection refused")
	mock.ExpectScan(0, "invoices:*", 200).SetErr(scanErr)

	repo := NewCachingInvoiceRepository(rdb, 5*time.Minute, &mockInvoiceRepository{}, "invoices")
	if err := repo.Invalidate(context.Background()); !errors.Is(err, scanErr) {
		t.Errorf("expected error %v, got %v", scanErr, err)
	}
}
