package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"invoicer/internal/invoices"
	"invoicer/pkg/domain"
	"invoicer/pkg/logger"
	"invoicer/pkg/serrors"
	"invoicer/pkg/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// dashboardCacheKey is the rendered-page cache key for the dashboard summary.
// Invoice list pages use the "invoices" prefix with query and page appended,
// so one Invalidate call per prefix drops every cached variant.
const dashboardCacheKey = "dashboard"

// dashboardData feeds the dashboard page template.
type dashboardData struct {
	Summary storage.InvoiceSummary
	Latest  []domain.InvoiceWithCustomer
}

// invoiceFormData feeds the shared create/edit form template.
type invoiceFormData struct {
	Title   string
	Action  string
	Submit  string
	Message string

	Form        invoices.InvoiceForm
	FieldErrors invoices.FieldErrors
	Customers   []domain.Customer
}

// GetHome renders the public landing page.
func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home", nil)
}

// GetDashboard renders the summary cards and latest invoices, serving the
// cached page when one exists.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	if body, ok := h.cache.Get(dashboardCacheKey); ok {
		writeHTML(w, http.StatusOK, body)

		return
	}

	summary, err := h.invoices.Summary(r.Context())
	if err != nil {
		h.serverError(w, r, err)

		return
	}
	latest, err := h.invoices.LatestInvoices(r.Context())
	if err != nil {
		h.serverError(w, r, err)

		return
	}

	body, err := h.renderer.page("dashboard", dashboardData{Summary: summary, Latest: latest})
	if err != nil {
		h.serverError(w, r, err)

		return
	}
	h.cache.Put(dashboardCacheKey, body)
	writeHTML(w, http.StatusOK, body)
}

// GetInvoices renders one page of the searchable invoice table, serving the
// cached page when one exists for the same query and page number.
func (h *Handler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page := uint(1)
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil && parsed > 0 {
			page = uint(parsed)
		}
	}

	key := fmt.Sprintf("invoices?query=%s&page=%d", query, page)
	if body, ok := h.cache.Get(key); ok {
		writeHTML(w, http.StatusOK, body)

		return
	}

	result, err := h.invoices.Invoices(r.Context(), query, page)
	if err != nil {
		h.serverError(w, r, err)

		return
	}

	body, err := h.renderer.page("invoices", result)
	if err != nil {
		h.serverError(w, r, err)

		return
	}
	h.cache.Put(key, body)
	writeHTML(w, http.StatusOK, body)
}

// GetCreateInvoice renders an empty invoice form.
func (h *Handler) GetCreateInvoice(w http.ResponseWriter, r *http.Request) {
	customers, err := h.invoices.Customers(r.Context())
	if err != nil {
		h.serverError(w, r, err)

		return
	}

	h.render(w, r, http.StatusOK, "invoice_form", invoiceFormData{
		Title:     "Create Invoice",
		Action:    "/dashboard/invoices/create",
		Submit:    "Create Invoice",
		Form:      invoices.InvoiceForm{Status: string(domain.InvoiceStatusPending)},
		Customers: customers,
	})
}

// PostCreateInvoice validates and stores a new invoice. A rejected form is
// re-rendered with its field messages and nothing is written or invalidated.
func (h *Handler) PostCreateInvoice(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseInvoiceForm(w, r)
	if !ok {
		return
	}

	if _, err := h.invoices.Create(r.Context(), form); err != nil {
		var verr *invoices.ValidationError
		if errors.As(err, &verr) {
			h.renderInvoiceForm(w, r, invoiceFormData{
				Title:       "Create Invoice",
				Action:      "/dashboard/invoices/create",
				Submit:      "Create Invoice",
				Message:     "Missing fields. Failed to create invoice.",
				Form:        form,
				FieldErrors: verr.Fields,
			})

			return
		}
		h.serverError(w, r, err)

		return
	}

	h.invalidateInvoiceViews()
	http.Redirect(w, r, "/dashboard/invoices", http.StatusSeeOther)
}

// GetEditInvoice renders the form pre-filled with an existing invoice. An
// unknown or malformed ID yields the not-found page.
func (h *Handler) GetEditInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return
	}

	invoice, err := h.invoices.InvoiceByID(r.Context(), id)
	if errors.Is(err, serrors.ErrNotFound) {
		h.notFound(w, r)

		return
	}
	if err != nil {
		h.serverError(w, r, err)

		return
	}

	h.renderInvoiceForm(w, r, invoiceFormData{
		Title:  "Edit Invoice",
		Action: "/dashboard/invoices/" + id.String() + "/edit",
		Submit: "Edit Invoice",
		Form: invoices.InvoiceForm{
			CustomerID: invoice.CustomerID.String(),
			Amount:     invoice.Amount(),
			Status:     string(invoice.Status),
		},
	})
}

// PostEditInvoice validates the form and applies it to the invoice. Updating
// an ID that no longer exists succeeds silently, matching the storage layer.
func (h *Handler) PostEditInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return
	}
	form, ok := h.parseInvoiceForm(w, r)
	if !ok {
		return
	}

	if err := h.invoices.Update(r.Context(), id, form); err != nil {
		var verr *invoices.ValidationError
		if errors.As(err, &verr) {
			h.renderInvoiceForm(w, r, invoiceFormData{
				Title:       "Edit Invoice",
				Action:      "/dashboard/invoices/" + id.String() + "/edit",
				Submit:      "Edit Invoice",
				Message:     "Missing fields. Failed to update invoice.",
				Form:        form,
				FieldErrors: verr.Fields,
			})

			return
		}
		h.serverError(w, r, err)

		return
	}

	h.invalidateInvoiceViews()
	http.Redirect(w, r, "/dashboard/invoices", http.StatusSeeOther)
}

// PostDeleteInvoice removes an invoice. Cached views are invalidated even when
// the delete hits nothing, so the table never shows a stale row.
func (h *Handler) PostDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return
	}

	err := h.invoices.Delete(r.Context(), id)
	h.invalidateInvoiceViews()
	if err != nil {
		h.serverError(w, r, err)

		return
	}

	http.Redirect(w, r, "/dashboard/invoices", http.StatusSeeOther)
}

// invoiceID extracts and parses the {id} route parameter, rendering the
// not-found page on malformed input.
func (h *Handler) invoiceID(w http.ResponseWriter, r *http.Request) (domain.InvoiceID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)

		return domain.InvoiceID{}, false
	}

	return domain.InvoiceID(id), true
}

// parseInvoiceForm reads the raw invoice form fields from the request body.
func (h *Handler) parseInvoiceForm(w http.ResponseWriter, r *http.Request) (invoices.InvoiceForm, bool) {
	if err := r.ParseForm(); err != nil {
		h.serverError(w, r, err)

		return invoices.InvoiceForm{}, false
	}

	return invoices.InvoiceForm{
		CustomerID: r.PostFormValue("customerId"),
		Amount:     r.PostFormValue("amount"),
		Status:     r.PostFormValue("status"),
	}, true
}

// renderInvoiceForm re-renders the create/edit form, fetching the customer
// list it needs for the selector. Rejected forms come back as 422.
func (h *Handler) renderInvoiceForm(w http.ResponseWriter, r *http.Request, data invoiceFormData) {
	customers, err := h.invoices.Customers(r.Context())
	if err != nil {
		h.serverError(w, r, err)

		return
	}
	data.Customers = customers

	status := http.StatusOK
	if data.FieldErrors != nil {
		status = http.StatusUnprocessableEntity
	}
	h.render(w, r, status, "invoice_form", data)
}

// invalidateInvoiceViews drops every cached page that shows invoice data.
func (h *Handler) invalidateInvoiceViews() {
	h.cache.Invalidate(dashboardCacheKey)
	h.cache.Invalidate("invoices")
}

// notFound renders the 404 page.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "not_found", nil)
}

// serverError logs the failure and returns a plain 500.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Error(r.Context(), "request failed", zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
