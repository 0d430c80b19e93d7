package invoices

import (
	"context"

	"invoicer/pkg/domain"
	"invoicer/pkg/storage"
)

//go:generate mockgen -package mockinvoices -source=interface.go -destination=mock/mockinvoices.go *
type Service interface {
	Create(ctx context.Context, form InvoiceForm) (*domain.Invoice, error)
	Update(ctx context.Context, id domain.InvoiceID, form InvoiceForm) error
	Delete(ctx context.Context, id domain.InvoiceID) error
	InvoiceByID(ctx context.Context, id domain.InvoiceID) (*domain.Invoice, error)
	Invoices(ctx context.Context, query string, page uint) (*InvoicePage, error)
	LatestInvoices(ctx context.Context) ([]domain.InvoiceWithCustomer, error)
	Summary(ctx context.Context) (storage.InvoiceSummary, error)
	Customers(ctx context.Context) ([]domain.Customer, error)
}
