package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	invoicehandler "invoice_backend/internal/feature/invoices/transport/handler"
	seedhandler "invoice_backend/internal/feature/seed/transport/handler"
	platformhandler "invoice_backend/internal/platform/http/handler"
	jwtmw "invoice_backend/internal/platform/jwt"
)

func NewRouter(health *platformhandler.HealthHandler, seed *seedhandler.SeedHandler,
	query *invoicehandler.QueryHandler, auth jwtmw.Config, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	// ダッシュボードのフロントエンドから呼び出す場合のみCORSを許可する
	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{"GET", "HEAD", "OPTIONS"},
			AllowHeaders: []string{"Authorization", "Content-Type"},
		}))
	}

	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)

	// 請求書一覧（読み取り専用）
	r.GET("/query", query.Query)

	// 全件リセットと投入
	// JWT_SECRET が設定されている場合のみ operator ロールのトークンを要求する
	if auth.Enabled() {
		r.GET("/seed", jwtmw.AuthRequired(auth.Secret, jwtmw.RoleOperator), seed.Seed)
	} else {
		slog.Warn("JWT_SECRET is not set; /seed is unauthenticated")
		r.GET("/seed", seed.Seed)
	}

	return r
}
