package entity

import "time"

// InvoiceRow は請求書と顧客名を結合した一覧の1行です。
type InvoiceRow struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Amount     int       `json:"amount"` // セント単位
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"` // 顧客名
}

// AmountRow は金額で絞り込んだ請求書の金額と顧客名です。
type AmountRow struct {
	Amount int    `json:"amount"`
	Name   string `json:"name"`
}
