// Package domain contains the core business entities of the invoice
// dashboard (users, customers and invoices). The types are free of
// infrastructure concerns so they can be shared across packages.
package domain
