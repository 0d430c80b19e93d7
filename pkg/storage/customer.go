package storage

import (
	"context"

	"invoicer/pkg/domain"
)

// CustomerStorage defines read and seed operations for customers. Customers
// are never mutated through the dashboard.
type CustomerStorage interface {
	// Customers returns all customers ordered by name, for the invoice form
	// select box.
	Customers(ctx context.Context) ([]domain.Customer, error)
	// StoreCustomers inserts one or more customers and returns the stored rows.
	StoreCustomers(ctx context.Context, customers ...domain.Customer) ([]domain.Customer, error)
}
