package entity

// UnknownID is reported for an inserted invoice whose generated identifier
// could not be read back from the database.
const UnknownID = "unknown"

// InsertedInvoice is a source invoice that was newly persisted, together with
// the identifier the database generated for it.
type InsertedInvoice struct {
	ID         string
	CustomerID string
	Amount     int
	Status     string
	Date       string
}

// Summary reports how many rows of each entity a full seed newly inserted.
// Rows skipped because they already existed are not counted.
type Summary struct {
	Customers int
	Users     int
	Revenue   int
	Invoices  []InsertedInvoice
}

// InvoiceCount returns the number of newly inserted invoices.
func (s Summary) InvoiceCount() int {
	return len(s.Invoices)
}
