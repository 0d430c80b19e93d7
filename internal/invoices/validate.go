package invoices

import (
	"math"
	"strconv"
	"strings"

	"invoicer/pkg/domain"

	"github.com/google/uuid"
)

// InvoiceForm carries the raw string fields of a submitted invoice form,
// before any parsing or validation.
type InvoiceForm struct {
	CustomerID string
	Amount     string
	Status     string
}

// FieldErrors maps a form field name to the validation messages reported
// against it.
type FieldErrors map[string][]string

// ValidationError describes a rejected invoice form. It carries per-field
// messages so the form can be re-rendered with the problems highlighted.
type ValidationError struct {
	Fields  FieldErrors
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}

	return e.Message
}

// parsedForm holds the typed values extracted from a valid InvoiceForm.
type parsedForm struct {
	customerID domain.CustomerID
	cents      int64
	status     domain.InvoiceStatus
}

// parseForm validates the raw form fields and converts them into their typed
// representation. Amounts are parsed as a decimal number of dollars and
// rounded to whole cents. All fields are checked so a single pass reports
// every problem at once.
func parseForm(form InvoiceForm) (parsedForm, *ValidationError) {
	fields := FieldErrors{}
	var parsed parsedForm

	customerID, err := uuid.Parse(strings.TrimSpace(form.CustomerID))
	if err != nil {
		fields["customerId"] = append(fields["customerId"], "Please select a customer.")
	} else {
		parsed.customerID = domain.CustomerID(customerID)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(form.Amount), 64)
	if err != nil || amount <= 0 {
		fields["amount"] = append(fields["amount"], "Please enter an amount greater than $0.")
	} else {
		parsed.cents = int64(math.Round(amount * 100))
	}

	status := domain.InvoiceStatus(form.Status)
	if !status.Valid() {
		fields["status"] = append(fields["status"], "Please select an invoice status.")
	} else {
		parsed.status = status
	}

	if len(fields) > 0 {
		return parsedForm{}, &ValidationError{
			Fields:  fields,
			Message: "missing or invalid fields",
		}
	}

	return parsed, nil
}
