// Package handler はinvoicesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"invoice_backend/internal/feature/invoices/domain/entity"
	"invoice_backend/internal/feature/invoices/transport/http/dto"
)

// QueryUsecase は請求書クエリのユースケースインターフェースです。
type QueryUsecase interface {
	ListAllInvoices(ctx context.Context) ([]entity.InvoiceRow, error)
	ListInvoicesByAmount(ctx context.Context, amount int) ([]entity.AmountRow, error)
}

// QueryHandler は請求書クエリのHTTPリクエストを処理します。
type QueryHandler struct {
	uc QueryUsecase
}

// NewQueryHandler はQueryHandlerを生成します。
func NewQueryHandler(uc QueryUsecase) *QueryHandler {
	return &QueryHandler{uc: uc}
}

// Query は請求書一覧をJSONで返します。amountが指定された場合は金額で絞り込みます。
//
// エンドポイント例:
// GET /query
// GET /query?amount=666
func (h *QueryHandler) Query(c *gin.Context) {
	if raw, ok := c.GetQuery("amount"); ok {
		amount, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "amount must be an integer"})
			return
		}
		h.byAmount(c, amount)
		return
	}

	rows, err := h.uc.ListAllInvoices(c.Request.Context())
	if err != nil {
		slog.Error("invoice query failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.InvoiceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InvoiceResponse{
			ID:         r.ID,
			Date:       r.Date.UTC().Format("2006-01-02"),
			Amount:     r.Amount,
			CustomerID: r.CustomerID,
			Name:       r.Name,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *QueryHandler) byAmount(c *gin.Context, amount int) {
	rows, err := h.uc.ListInvoicesByAmount(c.Request.Context(), amount)
	if err != nil {
		slog.Error("invoice query by amount failed", "amount", amount, "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.AmountResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AmountResponse{Amount: r.Amount, Name: r.Name})
	}
	c.JSON(http.StatusOK, out)
}
