package dto

// InvoiceResponse は請求書一覧の1行のレスポンスDTOです。
type InvoiceResponse struct {
	ID         string `json:"id"`
	Date       string `json:"date"`   // YYYY-MM-DD
	Amount     int    `json:"amount"` // セント
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"` // 顧客名
}

// AmountResponse は金額検索の1行のレスポンスDTOです。
type AmountResponse struct {
	Amount int    `json:"amount"`
	Name   string `json:"name"`
}

// ErrorResponse はエラーレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
