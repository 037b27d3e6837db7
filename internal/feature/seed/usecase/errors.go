package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchema is returned when a DDL statement of the schema reset fails.
	ErrSchema = errors.New("schema error")

	// ErrReferential is returned when an invoice references a customer that does not exist.
	ErrReferential = errors.New("referential integrity violation")

	// ErrInvalidSource is returned when the seed data set cannot be loaded or fails validation.
	ErrInvalidSource = errors.New("invalid seed source")

	// ErrSeedInProgress is returned when a full seed is requested while another one is running.
	ErrSeedInProgress = errors.New("seed already in progress")
)

// Seeding stages in execution order.
const (
	StageSource    = "source"
	StageSchema    = "schema"
	StageCustomers = "customers"
	StageUsers     = "users"
	StageRevenue   = "revenue"
	StageInvoices  = "invoices"
)

// SeedError reports a failed full seed.
// Stages listed in Completed were committed before the failure and are not rolled back.
type SeedError struct {
	Stage     string
	Completed []string
	Err       error
}

// Error implements the error interface.
func (e *SeedError) Error() string {
	if len(e.Completed) == 0 {
		return fmt.Sprintf("seed %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("seed %s (completed: %s): %v", e.Stage, strings.Join(e.Completed, ", "), e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *SeedError) Unwrap() error { return e.Err }
