package postgres

import (
	"context"
	"fmt"

	"invoicer/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const customersTable = "customers"

// Customers returns all customers ordered by name.
func (p *PgSQL) Customers(ctx context.Context) ([]domain.Customer, error) {
	var rows []PgCustomer
	if err := p.Builder.From(customersTable).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch customers from pg: %w", err)
	}

	out := make([]domain.Customer, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// StoreCustomers inserts the given customers and returns the stored rows.
func (p *PgSQL) StoreCustomers(ctx context.Context, customers ...domain.Customer) ([]domain.Customer, error) {
	if len(customers) == 0 {
		return nil, nil
	}

	rows := make([]PgCustomer, len(customers))
	for i := range rows {
		rows[i].FromDomain(customers[i])
	}

	var result []PgCustomer
	if err := p.Builder.Insert(customersTable).
		Rows(rows).
		Returning(&PgCustomer{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store customers into pg: %w", err)
	}

	out := make([]domain.Customer, 0, len(result))
	for i := range result {
		out = append(out, *result[i].ToDomain())
	}

	return out, nil
}
