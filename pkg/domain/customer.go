package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustomerID uniquely identifies a customer.
type CustomerID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id CustomerID) String() string { return uuid.UUID(id).String() }

// Customer is a party that invoices are billed to. Customers are referenced
// by invoices but never mutated through the dashboard.
type Customer struct {
	// ID is the unique identifier of the customer.
	ID CustomerID `json:"id"`
	// Name is the customer's display name.
	Name string `json:"name"`
	// Email is the customer's contact address.
	Email string `json:"email"`
	// ImageURL points at the customer's avatar shown in list views.
	ImageURL string `json:"imageUrl"`

	// CreatedAt is the time the customer record was seeded.
	CreatedAt time.Time `json:"createdAt"`
}
