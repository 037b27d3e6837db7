// Package entity defines the source records and results of the seed feature.
package entity

// Customer is a customer record of the seed data set.
type Customer struct {
	ID       string `yaml:"id" validate:"required,uuid"`
	Name     string `yaml:"name" validate:"required,max=255"`
	Email    string `yaml:"email" validate:"required,email,max=255"`
	ImageURL string `yaml:"image_url" validate:"required,max=255"`
}

// User is a user record of the seed data set.
// Password is plaintext in the source and is hashed before it is persisted.
type User struct {
	ID       string `yaml:"id" validate:"required,uuid"`
	Name     string `yaml:"name" validate:"required,max=255"`
	Email    string `yaml:"email" validate:"required,email"`
	Password string `yaml:"password" validate:"required,max=72"`
}

// Invoice statuses.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// DateLayout is the layout of Invoice.Date.
const DateLayout = "2006-01-02"

// Invoice is an invoice record of the seed data set.
// Its identifier is generated by the database, so the record is identified by
// the composite key (CustomerID, Date, Amount, Status).
type Invoice struct {
	CustomerID string `yaml:"customer_id" validate:"required,uuid"`
	Amount     int    `yaml:"amount" validate:"gte=0"` // smallest currency unit
	Status     string `yaml:"status" validate:"required,oneof=pending paid"`
	Date       string `yaml:"date" validate:"required,datetime=2006-01-02"`
}

// Revenue is the revenue of one calendar period.
type Revenue struct {
	Month   string `yaml:"month" validate:"required,max=4"`
	Revenue int    `yaml:"revenue" validate:"gte=0"`
}

// Dataset is the complete fixed source of a seeding run.
type Dataset struct {
	Customers []Customer `yaml:"customers" validate:"dive"`
	Users     []User     `yaml:"users" validate:"dive"`
	Invoices  []Invoice  `yaml:"invoices" validate:"dive"`
	Revenue   []Revenue  `yaml:"revenue" validate:"dive"`
}
