package dto

// SeedMessage は投入成功時の固定メッセージです。
const SeedMessage = "Database seeded successfully"

// InsertedInvoiceResponse は新規に挿入された請求書のレスポンスDTOです。
type InsertedInvoiceResponse struct {
	ID         string `json:"id"`          // DBが生成したID（取得できない場合は"unknown"）
	CustomerID string `json:"customer_id"` // 顧客ID
	Amount     int    `json:"amount"`      // 金額（セント）
	Status     string `json:"status"`      // pending または paid
	Date       string `json:"date"`        // YYYY-MM-DD
}

// SeedCounts はテーブルごとの新規挿入件数です。
type SeedCounts struct {
	Customers int `json:"customers"`
	Users     int `json:"users"`
	Revenue   int `json:"revenue"`
	Invoices  int `json:"invoices"`
}

// SeedResponse は投入成功時のレスポンスDTOです。
type SeedResponse struct {
	Message  string                    `json:"message"`
	Invoices []InsertedInvoiceResponse `json:"invoices"`
	Counts   SeedCounts                `json:"counts"`
}

// SeedErrorResponse は投入失敗時のレスポンスDTOです。
type SeedErrorResponse struct {
	Error           string   `json:"error"`
	FailedStage     string   `json:"failed_stage,omitempty"`
	CompletedStages []string `json:"completed_stages"`
}
