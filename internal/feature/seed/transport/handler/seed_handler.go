// Package handler はseedフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice_backend/internal/feature/seed/domain/entity"
	"invoice_backend/internal/feature/seed/transport/http/dto"
	"invoice_backend/internal/feature/seed/usecase"
)

// SeedUsecase は全件投入のユースケースインターフェースです。
type SeedUsecase interface {
	RunFullSeed(ctx context.Context) (*entity.Summary, error)
}

// SeedHandler は投入リクエストを処理します。
type SeedHandler struct {
	uc SeedUsecase
}

// NewSeedHandler はSeedHandlerを生成します。
func NewSeedHandler(uc SeedUsecase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

// Seed はスキーマをリセットしてプレースホルダーデータを投入し、結果をJSONで返します。
// リセット後に中断するとテーブルが空のまま残るため、クライアントが切断しても投入は最後まで実行します。
//
// エンドポイント例:
// GET /seed
func (h *SeedHandler) Seed(c *gin.Context) {
	summary, err := h.uc.RunFullSeed(context.WithoutCancel(c.Request.Context()))
	if errors.Is(err, usecase.ErrSeedInProgress) {
		c.JSON(http.StatusConflict, dto.SeedErrorResponse{Error: err.Error(), CompletedStages: []string{}})
		return
	}
	if err != nil {
		slog.Error("seed request failed", "error", err)
		body := dto.SeedErrorResponse{Error: err.Error(), CompletedStages: []string{}}
		var seedErr *usecase.SeedError
		if errors.As(err, &seedErr) {
			body.FailedStage = seedErr.Stage
			if seedErr.Completed != nil {
				body.CompletedStages = seedErr.Completed
			}
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	invoices := make([]dto.InsertedInvoiceResponse, 0, len(summary.Invoices))
	for _, inv := range summary.Invoices {
		invoices = append(invoices, dto.InsertedInvoiceResponse{
			ID:         inv.ID,
			CustomerID: inv.CustomerID,
			Amount:     inv.Amount,
			Status:     inv.Status,
			Date:       inv.Date,
		})
	}

	c.JSON(http.StatusOK, dto.SeedResponse{
		Message:  dto.SeedMessage,
		Invoices: invoices,
		Counts: dto.SeedCounts{
			Customers: summary.Customers,
			Users:     summary.Users,
			Revenue:   summary.Revenue,
			Invoices:  summary.InvoiceCount(),
		},
	})
}
