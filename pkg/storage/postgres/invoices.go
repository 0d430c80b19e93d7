package postgres

import (
	"context"
	"fmt"

	"invoicer/pkg/domain"
	"invoicer/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const invoicesTable = "invoices"

// StoreInvoices inserts the given invoices and returns the stored rows.
func (p *PgSQL) StoreInvoices(ctx context.Context, invoices ...domain.Invoice) ([]domain.Invoice, error) {
	if len(invoices) == 0 {
		return nil, nil
	}

	var result []PgInvoice
	if err := p.Builder.Insert(invoicesTable).
		Rows(domainInvoicesToPg(invoices)).
		Returning(&PgInvoice{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store invoices into pg: %w", err)
	}

	return pgInvoicesToDomain(result), nil
}

// UpdateInvoiceByID applies the provided field set to a single invoice and
// returns the number of rows affected. Only provided fields are changed;
// updated_at is always stamped.
func (p *PgSQL) UpdateInvoiceByID(ctx context.Context,
	id domain.InvoiceID,
	updates storage.InvoiceUpdates) (int64, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.CustomerID != nil {
		rec["customer_id"] = uuid.UUID(*updates.CustomerID)
	}
	if updates.AmountCents != nil {
		rec["amount_cents"] = *updates.AmountCents
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}

	res, err := p.Builder.Update(invoicesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not update invoice in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected, nil
}

// DeleteInvoice removes an invoice row by ID and returns the number of rows
// affected. Deleting a nonexistent ID affects zero rows without error.
func (p *PgSQL) DeleteInvoice(ctx context.Context, id domain.InvoiceID) (int64, error) {
	res, err := p.Builder.Delete(invoicesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete invoice in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected, nil
}

// InvoiceByID fetches a single invoice by ID. Returns nil when not found.
func (p *PgSQL) InvoiceByID(ctx context.Context, id domain.InvoiceID) (*domain.Invoice, error) {
	var row PgInvoice
	found, err := p.Builder.From(invoicesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch invoice by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// joinedInvoices builds the invoices-joined-with-customers dataset, filtered
// by the search query when non-empty. All filter values travel as bind
// parameters.
func (p *PgSQL) joinedInvoices(query string) *goqu.SelectDataset {
	ds := p.Builder.From(invoicesTable).
		Join(
			goqu.T(customersTable),
			goqu.On(goqu.I("invoices.customer_id").Eq(goqu.I("customers.id"))),
		)

	if query != "" {
		pattern := "%" + query + "%"
		ds = ds.Where(goqu.Or(
			goqu.I("customers.name").ILike(pattern),
			goqu.I("customers.email").ILike(pattern),
			goqu.L("invoices.amount_cents::text").ILike(pattern),
			goqu.L("invoices.date::text").ILike(pattern),
			goqu.I("invoices.status").ILike(pattern),
		))
	}

	return ds
}

// invoiceWithCustomerColumns selects the joined row shape scanned into
// PgInvoiceWithCustomer.
func invoiceWithCustomerColumns(ds *goqu.SelectDataset) *goqu.SelectDataset {
	return ds.Select(
		goqu.I("invoices.id").As("id"),
		goqu.I("invoices.customer_id").As("customer_id"),
		goqu.I("invoices.amount_cents").As("amount_cents"),
		goqu.I("invoices.status").As("status"),
		goqu.I("invoices.date").As("date"),
		goqu.I("invoices.created_at").As("created_at"),
		goqu.I("invoices.updated_at").As("updated_at"),
		goqu.I("customers.name").As("customer_name"),
		goqu.I("customers.email").As("customer_email"),
		goqu.I("customers.image_url").As("customer_image_url"),
	)
}

// Invoices returns a page of invoices joined with customer fields, filtered
// by query and ordered newest first.
func (p *PgSQL) Invoices(ctx context.Context,
	query string,
	offset, limit uint) ([]domain.InvoiceWithCustomer, error) {
	ds := invoiceWithCustomerColumns(p.joinedInvoices(query)).
		Order(goqu.I("invoices.date").Desc(), goqu.I("invoices.created_at").Desc()).
		Offset(offset).
		Limit(limit)

	var rows []PgInvoiceWithCustomer
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch invoices from pg: %w", err)
	}

	return pgJoinedInvoicesToDomain(rows), nil
}

// CountInvoices returns how many invoices match the search query.
func (p *PgSQL) CountInvoices(ctx context.Context, query string) (int64, error) {
	count, err := p.joinedInvoices(query).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count invoices in pg: %w", err)
	}

	return count, nil
}

// LatestInvoices returns the most recently created invoices joined with
// customer fields.
func (p *PgSQL) LatestInvoices(ctx context.Context, limit uint) ([]domain.InvoiceWithCustomer, error) {
	ds := invoiceWithCustomerColumns(p.joinedInvoices("")).
		Order(goqu.I("invoices.created_at").Desc()).
		Limit(limit)

	var rows []PgInvoiceWithCustomer
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch latest invoices from pg: %w", err)
	}

	return pgJoinedInvoicesToDomain(rows), nil
}

// InvoiceSummary returns the aggregate numbers for the dashboard cards.
func (p *PgSQL) InvoiceSummary(ctx context.Context) (storage.InvoiceSummary, error) {
	var row struct {
		InvoiceCount int64 `db:"invoice_count"`
		PaidCents    int64 `db:"paid_cents"`
		PendingCents int64 `db:"pending_cents"`
	}
	_, err := p.Builder.From(invoicesTable).
		Select(
			goqu.COUNT(goqu.Star()).As("invoice_count"),
			goqu.L("COALESCE(SUM(amount_cents) FILTER (WHERE status = ?), 0)",
				string(domain.InvoiceStatusPaid)).As("paid_cents"),
			goqu.L("COALESCE(SUM(amount_cents) FILTER (WHERE status = ?), 0)",
				string(domain.InvoiceStatusPending)).As("pending_cents"),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return storage.InvoiceSummary{}, fmt.Errorf("could not fetch invoice summary from pg: %w", err)
	}

	customerCount, err := p.Builder.From(customersTable).CountContext(ctx)
	if err != nil {
		return storage.InvoiceSummary{}, fmt.Errorf("could not count customers in pg: %w", err)
	}

	return storage.InvoiceSummary{
		InvoiceCount:  row.InvoiceCount,
		CustomerCount: customerCount,
		PaidCents:     row.PaidCents,
		PendingCents:  row.PendingCents,
	}, nil
}
