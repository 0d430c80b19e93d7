package invoices

import (
	"context"
	"fmt"
	"time"

	"invoicer/pkg/domain"
	"invoicer/pkg/serrors"
	"invoicer/pkg/storage"
)

const (
	// PageSize is the number of invoices shown per page of the paginated table.
	PageSize = 6
	// latestInvoiceCount is how many invoices the dashboard "latest" panel shows.
	latestInvoiceCount = 5
)

// InvoicePage is one page of the invoice table together with the query that
// produced it.
type InvoicePage struct {
	Invoices   []domain.InvoiceWithCustomer
	Query      string
	Page       uint
	TotalPages uint
}

// service is the concrete implementation of the Service interface. It applies
// form validation and delegates persistence to the storage layer.
type service struct {
	storage storage.Storage
}

// Create validates the submitted form and stores a new invoice. The invoice
// date is stamped with the current UTC day. A *ValidationError is returned
// when any field is rejected, and nothing is written in that case.
func (s service) Create(ctx context.Context, form InvoiceForm) (*domain.Invoice, error) {
	parsed, verr := parseForm(form)
	if verr != nil {
		return nil, verr
	}

	res, err := s.storage.StoreInvoices(ctx, domain.Invoice{
		CustomerID:  parsed.customerID,
		AmountCents: parsed.cents,
		Status:      parsed.status,
		Date:        time.Now().UTC().Truncate(24 * time.Hour),
	})
	if err != nil {
		return nil, fmt.Errorf("could not store invoice: %w", err)
	}

	return &res[0], nil
}

// Update validates the submitted form and applies it to the invoice with the
// given ID. Updating an ID that does not exist is a silent no-op, matching
// the behavior of an UPDATE that affects zero rows.
func (s service) Update(ctx context.Context, id domain.InvoiceID, form InvoiceForm) error {
	parsed, verr := parseForm(form)
	if verr != nil {
		return verr
	}

	_, err := s.storage.UpdateInvoiceByID(ctx, id, storage.InvoiceUpdates{
		CustomerID:  &parsed.customerID,
		AmountCents: &parsed.cents,
		Status:      parsed.status,
	})
	if err != nil {
		return fmt.Errorf("could not update invoice: %w", err)
	}

	return nil
}

// Delete removes the invoice with the given ID. Deleting an ID that does not
// exist is a silent no-op.
func (s service) Delete(ctx context.Context, id domain.InvoiceID) error {
	if _, err := s.storage.DeleteInvoice(ctx, id); err != nil {
		return fmt.Errorf("could not delete invoice: %w", err)
	}

	return nil
}

// InvoiceByID fetches a single invoice. It returns a not-found error when no
// matching invoice exists.
func (s service) InvoiceByID(ctx context.Context, id domain.InvoiceID) (*domain.Invoice, error) {
	res, err := s.storage.InvoiceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get invoice: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "invoice not found")
	}

	return res, nil
}

// Invoices returns one page of the invoice table filtered by the search
// query. Page numbers start at 1; zero is treated as the first page. The
// returned page carries the total page count for rendering pagination.
func (s service) Invoices(ctx context.Context, query string, page uint) (*InvoicePage, error) {
	if page == 0 {
		page = 1
	}

	total, err := s.storage.CountInvoices(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not count invoices: %w", err)
	}

	offset := (page - 1) * PageSize
	rows, err := s.storage.Invoices(ctx, query, offset, PageSize)
	if err != nil {
		return nil, fmt.Errorf("could not get invoices: %w", err)
	}

	totalPages := uint(total) / PageSize
	if uint(total)%PageSize != 0 {
		totalPages++
	}

	return &InvoicePage{
		Invoices:   rows,
		Query:      query,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// LatestInvoices returns the most recently created invoices for the dashboard.
func (s service) LatestInvoices(ctx context.Context) ([]domain.InvoiceWithCustomer, error) {
	rows, err := s.storage.LatestInvoices(ctx, latestInvoiceCount)
	if err != nil {
		return nil, fmt.Errorf("could not get latest invoices: %w", err)
	}

	return rows, nil
}

// Summary returns the aggregate counters shown on the dashboard cards.
func (s service) Summary(ctx context.Context) (storage.InvoiceSummary, error) {
	summary, err := s.storage.InvoiceSummary(ctx)
	if err != nil {
		return storage.InvoiceSummary{}, fmt.Errorf("could not get invoice summary: %w", err)
	}

	return summary, nil
}

// Customers returns all customers ordered by name, for the invoice form's
// customer selector.
func (s service) Customers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.storage.Customers(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get customers: %w", err)
	}

	return customers, nil
}

// New creates a new Service backed by the provided storage.
func New(storage storage.Storage) Service {
	return &service{storage: storage}
}
