package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"invoice_backend/internal/app/di"
	"invoice_backend/internal/app/router"
	invoicehandler "invoice_backend/internal/feature/invoices/transport/handler"
	invoiceusecase "invoice_backend/internal/feature/invoices/usecase"
	seedhandler "invoice_backend/internal/feature/seed/transport/handler"
	infradb "invoice_backend/internal/platform/db"
	platformhandler "invoice_backend/internal/platform/http/handler"
	jwtmw "invoice_backend/internal/platform/jwt"
	infraredis "invoice_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	// db
	db, err := infradb.OpenDB(infradb.LoadConfigFromEnv())
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := infradb.Close(db); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	// Redis（未設定・接続失敗時はキャッシュなしで起動）
	redisCfg := infraredis.LoadConfigFromEnv()
	var rdb *redisv9.Client
	if redisCfg.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		tmp, err := infraredis.NewRedisClient(ctx, redisCfg)
		cancel()
		if err != nil {
			slog.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repository（Redisがあればキャッシュでラップ）
	invoiceRepo, invalidator := di.NewInvoiceRepository(rdb, db, redisCfg.CacheTTL)

	// Usecase
	queryUC := invoiceusecase.NewQueryUsecase(invoiceRepo)
	seedUC, err := di.NewSeedUsecase(db, invalidator)
	if err != nil {
		log.Fatal(err)
	}

	// Handler
	healthH := platformhandler.NewHealthHandler(sqlDB)
	seedH := seedhandler.NewSeedHandler(seedUC)
	queryH := invoicehandler.NewQueryHandler(queryUC)

	// ルータ生成
	r := router.NewRouter(healthH, seedH, queryH, jwtmw.LoadConfigFromEnv(), corsOriginsFromEnv())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// corsOriginsFromEnv はカンマ区切りのCORS_ALLOW_ORIGINSを返します。未設定ならCORSは無効です。
func corsOriginsFromEnv() []string {
	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOW_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
