// Command seed はスキーマをリセットしてプレースホルダーデータを一度だけ投入します。
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"invoice_backend/internal/app/di"
	"invoice_backend/internal/feature/seed/usecase"
	infradb "invoice_backend/internal/platform/db"
	infraredis "invoice_backend/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
	os.Exit(run())
}

// run は投入を実行して終了コードを返します。
// os.Exitの前に遅延処理で接続を閉じるため、mainから分けています。
func run() int {
	db, err := infradb.OpenDB(infradb.LoadConfigFromEnv())
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		return 1
	}
	defer func() { _ = infradb.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// サーバーがキャッシュを使っている場合は投入後に破棄する
	redisCfg := infraredis.LoadConfigFromEnv()
	var invalidator usecase.CacheInvalidator
	if redisCfg.Enabled() {
		if rdb, err := infraredis.NewRedisClient(ctx, redisCfg); err != nil {
			slog.Warn("Redis unavailable. Query cache will expire by TTL.")
		} else {
			defer func() { _ = rdb.Close() }()
			_, invalidator = di.NewInvoiceRepository(rdb, db, redisCfg.CacheTTL)
		}
	}

	uc, err := di.NewSeedUsecase(db, invalidator)
	if err != nil {
		slog.Error("failed to build seed usecase", "error", err)
		return 1
	}

	summary, err := uc.RunFullSeed(ctx)
	if err != nil {
		var seedErr *usecase.SeedError
		if errors.As(err, &seedErr) {
			slog.Error("seed failed", "stage", seedErr.Stage, "completed", seedErr.Completed, "error", seedErr.Err)
		} else {
			slog.Error("seed failed", "error", err)
		}
		return 1
	}
	slog.Info("seed ok",
		"customers", summary.Customers, "users", summary.Users,
		"revenue", summary.Revenue, "invoices", summary.InvoiceCount())
	return 0
}
