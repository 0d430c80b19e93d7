package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InvoiceID uniquely identifies an invoice.
type InvoiceID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id InvoiceID) String() string { return uuid.UUID(id).String() }

// InvoiceStatus is the payment state of an invoice. It is a closed
// enumeration; any other value is rejected before reaching storage.
type InvoiceStatus string

const (
	// InvoiceStatusPending indicates the invoice has been issued but not paid.
	InvoiceStatusPending InvoiceStatus = "pending"
	// InvoiceStatusPaid indicates the invoice has been settled.
	InvoiceStatusPaid InvoiceStatus = "paid"
)

// Valid reports whether s is one of the closed enumeration values.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice is a single bill issued to a customer. The amount is stored in
// integer minor units (cents) to avoid floating-point drift.
type Invoice struct {
	// ID is the unique identifier of the invoice.
	ID InvoiceID `json:"id"`
	// CustomerID references the customer this invoice is billed to.
	CustomerID CustomerID `json:"customerId"`

	// AmountCents is the invoice total in minor currency units.
	AmountCents int64 `json:"amountCents"`
	// Status is the payment state of the invoice.
	Status InvoiceStatus `json:"status"`
	// Date is the issue date of the invoice. Only the date component is
	// meaningful; the time of day is always midnight UTC.
	Date time.Time `json:"date"`

	// CreatedAt is the time the invoice row was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the invoice was last modified; zero when never updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Amount returns the invoice total in major units as a display string with
// two decimals, e.g. 5437 cents renders as "54.37".
func (i Invoice) Amount() string {
	sign := ""
	cents := i.AmountCents
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// InvoiceWithCustomer is an invoice joined with the customer fields needed
// by list views.
type InvoiceWithCustomer struct {
	Invoice

	// CustomerName is the display name of the billed customer.
	CustomerName string `json:"customerName"`
	// CustomerEmail is the contact address of the billed customer.
	CustomerEmail string `json:"customerEmail"`
	// CustomerImageURL is the avatar shown next to the invoice.
	CustomerImageURL string `json:"customerImageUrl"`
}
