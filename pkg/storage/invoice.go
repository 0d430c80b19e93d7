package storage

import (
	"context"

	"invoicer/pkg/domain"
)

// InvoiceUpdates describes the fields applied to an existing invoice during
// an update. Only non-nil (or, for Status, non-empty) fields are set.
type InvoiceUpdates struct {
	// CustomerID, when provided, re-assigns the invoice to another customer.
	CustomerID *domain.CustomerID
	// AmountCents, when provided, replaces the stored amount (minor units).
	AmountCents *int64
	// Status, when non-empty, replaces the payment status.
	Status domain.InvoiceStatus
}

// InvoiceSummary aggregates the numbers shown on the dashboard cards.
type InvoiceSummary struct {
	// InvoiceCount is the total number of invoices.
	InvoiceCount int64
	// CustomerCount is the total number of customers.
	CustomerCount int64
	// PaidCents is the sum of all paid invoice amounts in minor units.
	PaidCents int64
	// PendingCents is the sum of all pending invoice amounts in minor units.
	PendingCents int64
}

// InvoiceStorage defines CRUD and query operations for invoices. All
// implementations must issue parameterized statements only; user input is
// never concatenated into SQL.
type InvoiceStorage interface {
	// StoreInvoices inserts one or more invoices and returns the stored rows
	// as they exist in the database (including generated fields).
	StoreInvoices(ctx context.Context, invoices ...domain.Invoice) ([]domain.Invoice, error)
	// UpdateInvoiceByID applies updates to the invoice with the given ID and
	// returns the number of rows affected. Zero rows is not an error: callers
	// decide whether an unmatched identifier is significant.
	UpdateInvoiceByID(ctx context.Context, id domain.InvoiceID, updates InvoiceUpdates) (int64, error)
	// DeleteInvoice removes the invoice row by ID and returns the number of
	// rows affected. Deleting a nonexistent ID affects zero rows and is not
	// an error.
	DeleteInvoice(ctx context.Context, id domain.InvoiceID) (int64, error)
	// InvoiceByID fetches a single invoice. Returns nil when not found.
	InvoiceByID(ctx context.Context, id domain.InvoiceID) (*domain.Invoice, error)
	// Invoices returns a page of invoices joined with customer fields,
	// filtered by the search query (matched case-insensitively against
	// customer name/email and the textual forms of amount, date and status),
	// newest first.
	Invoices(ctx context.Context, query string, offset, limit uint) ([]domain.InvoiceWithCustomer, error)
	// CountInvoices returns the total number of invoices matching query,
	// using the same matching rules as Invoices.
	CountInvoices(ctx context.Context, query string) (int64, error)
	// LatestInvoices returns the most recently created invoices joined with
	// customer fields, limited by limit.
	LatestInvoices(ctx context.Context, limit uint) ([]domain.InvoiceWithCustomer, error)
	// InvoiceSummary returns the aggregate card numbers in a single call.
	InvoiceSummary(ctx context.Context) (InvoiceSummary, error)
}
