package postgres

import (
	"database/sql"
	"time"

	"invoicer/pkg/domain"

	"github.com/google/uuid"
)

type PgUser struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"    goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Name:         p.Name,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

type PgCustomer struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	ImageURL  string    `db:"image_url"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgCustomer) ToDomain() *domain.Customer {
	return &domain.Customer{
		ID:        domain.CustomerID(p.ID),
		Name:      p.Name,
		Email:     p.Email,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgCustomer) FromDomain(customer domain.Customer) {
	*p = PgCustomer{
		ID:        uuid.UUID(customer.ID),
		Name:      customer.Name,
		Email:     customer.Email,
		ImageURL:  customer.ImageURL,
		CreatedAt: customer.CreatedAt,
	}
}

type PgInvoice struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	CustomerID uuid.UUID `db:"customer_id"`

	AmountCents int64     `db:"amount_cents"`
	Status      string    `db:"status"`
	Date        time.Time `db:"date"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgInvoice) ToDomain() *domain.Invoice {
	return &domain.Invoice{
		ID:          domain.InvoiceID(p.ID),
		CustomerID:  domain.CustomerID(p.CustomerID),
		AmountCents: p.AmountCents,
		Status:      domain.InvoiceStatus(p.Status),
		Date:        p.Date,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgInvoice) FromDomain(invoice domain.Invoice) {
	*p = PgInvoice{
		ID:          uuid.UUID(invoice.ID),
		CustomerID:  uuid.UUID(invoice.CustomerID),
		AmountCents: invoice.AmountCents,
		Status:      string(invoice.Status),
		Date:        invoice.Date,
		CreatedAt:   invoice.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  invoice.UpdatedAt,
			Valid: !invoice.UpdatedAt.IsZero(),
		},
	}
}

// PgInvoiceWithCustomer is the joined row shape returned by list queries.
type PgInvoiceWithCustomer struct {
	PgInvoice

	CustomerName     string `db:"customer_name"`
	CustomerEmail    string `db:"customer_email"`
	CustomerImageURL string `db:"customer_image_url"`
}

func (p *PgInvoiceWithCustomer) ToDomain() *domain.InvoiceWithCustomer {
	return &domain.InvoiceWithCustomer{
		Invoice:          *p.PgInvoice.ToDomain(),
		CustomerName:     p.CustomerName,
		CustomerEmail:    p.CustomerEmail,
		CustomerImageURL: p.CustomerImageURL,
	}
}

func domainInvoicesToPg(invoices []domain.Invoice) []PgInvoice {
	out := make([]PgInvoice, len(invoices))
	for i := range out {
		out[i].FromDomain(invoices[i])
	}

	return out
}

func pgInvoicesToDomain(invoices []PgInvoice) []domain.Invoice {
	out := make([]domain.Invoice, 0, len(invoices))
	for i := range invoices {
		out = append(out, *invoices[i].ToDomain())
	}

	return out
}

func pgJoinedInvoicesToDomain(invoices []PgInvoiceWithCustomer) []domain.InvoiceWithCustomer {
	out := make([]domain.InvoiceWithCustomer, 0, len(invoices))
	for i := range invoices {
		out = append(out, *invoices[i].ToDomain())
	}

	return out
}
