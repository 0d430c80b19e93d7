package web_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"invoicer/internal/invoices"
	mockauth "invoicer/internal/auth/mock"
	"invoicer/pkg/domain"
	"invoicer/pkg/serrors"
	"invoicer/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// signIn makes every request carrying the test session cookie pass the guard.
func signIn(au *mockauth.MockAuthenticator) {
	au.EXPECT().VerifySession(gomock.Any(), "valid-token").
		Return(domain.UserID(uuid.New()), nil).AnyTimes()
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

func TestGetLogin(t *testing.T) {
	_, _, handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `action="/login"`) {
		t.Fatalf("expected login form in body")
	}
}

func TestPostLogin_Success(t *testing.T) {
	au, _, handler := newTestServer(t)
	au.EXPECT().Authenticate(gomock.Any(), "user@nextmail.com", "123456").
		Return("signed-token", nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, formRequest("/login", url.Values{
		"email":    {"user@nextmail.com"},
		"password": {"123456"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}

	cookies := rec.Result().Cookies()
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == "session" {
			session = c
		}
	}
	if session == nil || session.Value != "signed-token" {
		t.Fatalf("expected session cookie, got %+v", cookies)
	}
	if !session.HttpOnly {
		t.Fatalf("expected HttpOnly session cookie")
	}
}

func TestPostLogin_InvalidCredentials(t *testing.T) {
	au, _, handler := newTestServer(t)
	au.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", serrors.KindOnly(serrors.ErrInvalidCredentials))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, formRequest("/login", url.Values{
		"email":    {"user@nextmail.com"},
		"password": {"wrong-password"},
	}))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid credentials.") {
		t.Fatalf("expected generic failure message in body")
	}
}

func TestPostLogin_InternalError(t *testing.T) {
	au, _, handler := newTestServer(t)
	au.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", serrors.With(serrors.ErrInternal, "store unreachable"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, formRequest("/login", url.Values{
		"email":    {"user@nextmail.com"},
		"password": {"123456"},
	}))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong.") {
		t.Fatalf("expected generic server message in body")
	}
}

func TestPostLogout_ClearsCookie(t *testing.T) {
	au, _, handler := newTestServer(t)
	signIn(au)

	rec := httptest.NewRecorder()
	req := formRequest("/logout", url.Values{})
	req.AddCookie(&http.Cookie{Name: "session", Value: "valid-token"})
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected session cookie to be cleared")
	}
}

func TestGetDashboard_RendersAndCaches(t *testing.T) {
	au, svc, handler := newTestServer(t)
	signIn(au)

	svc.EXPECT().Summary(gomock.Any()).Return(storage.InvoiceSummary{
		InvoiceCount:  4,
		CustomerCount: 2,
		PaidCents:     5437,
		PendingCents:  1000,
	}, nil).Times(1)
	svc.EXPECT().LatestInvoices(gomock.Any()).Return([]domain.InvoiceWithCustomer{
		{CustomerName: "Acme Corp", CustomerEmail: "billing@acme.test"},
	}, nil).Times(1)

	// first request renders, second is served from cache
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, withSessionCookie(httptest.NewRequest(http.MethodGet, "/dashboard", nil)))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "$54.37") {
			t.Fatalf("expected collected total in body")
		}
		if !strings.Contains(rec.Body.String(), "Acme Corp") {
			t.Fatalf("expected latest invoice customer in body")
		}
	}
}

func TestGetInvoices_SearchAndPage(t *testing.T) {
	au, svc, handler := newTestServer(t)
	signIn(au)

	svc.EXPECT().Invoices(gomock.Any(), "acme", uint(2)).Return(&invoices.InvoicePage{
		Invoices:   []domain.InvoiceWithCustomer{{CustomerName: "Acme Corp"}},
		Query:      "acme",
		Page:       2,
		TotalPages: 3,
	}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, withSessionCookie(
		httptest.NewRequest(http.MethodGet, "/dashboard/invoices?query=acme&page=2", nil)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page 2 of 3") {
		t.Fatalf("expected pagination meta in body: %s", rec.Body.String())
	}
}

func TestPostCreateInvoice_Success(t *testing.T) {
	au, svc, handler := newTestServer(t)
	signIn(au)

	customerID := uuid.NewString()
	svc.EXPECT().Create(gomock.Any(), invoices.InvoiceForm{
		CustomerID: customerID,
		Amount:     "54.37",
		Status:     "pending",
	}).Return(&domain.Invoice{}, nil)

	rec := httptest.NewRecorder()
	req := formRequest("/dashboard/invoices/create", url.Values{
		"customerId": {customerID},
		"amount":     {"54.37"},
		"status":     {"pending"},
	})
	req.AddCookie(&http.Cookie{Name: "session", Value: "valid-token"})
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard/invoices" {
		t.Fatalf("expected redirect to invoice list, got %q", loc)
	}
}

func TestPostCreateInvoice_ValidationErrors(t *testing.T) {
	au, svc, handler := newTestServer(t)
	signIn(au)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, &invoices.ValidationError{
		Fields: invoices.FieldErrors{
			"customerId": {"Please select a customer."},
			"amount":     {"Please enter an amount greater than $0."},
		},
		Message: "missing or invalid fields",
	})
	svc.EXPECT().Customers(gomock.Any()).Return([]domain.Customer{
		{ID: domain.CustomerID(uuid.New()), Name: "Acme Corp"},
	}, nil)

	rec := httptest.NewRecorder()
	req := formRequest("/dashboard/invoices/create", url.Values{
		"customerId": {""},
		"amount":     {"-1"},
		"status":     {"pending"},
	})
	req.AddCookie(&http.Cookie{Name: "session", Value: "valid-token"})
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Please select a customer.") {
		t.Fatalf("expected field message in body")
	}
}

func TestGetEditInvoice_NotFound(t *testing.T) {
	au, svc, handler := newTestServer(t)
	signIn(au)

	id := uuid.New()
	svc.EXPECT().InvoiceByID(gomock.Any(), domain.InvoiceID(id)).
		Return(nil, serrors.With(serrors.ErrNotFound, "invoice not found"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, withSessionCookie(
		httptest.NewRequest(http.MethodGet, "/dashboard/invoices/"+id.String()+"/edit", nil)))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetEditInvoice_MalformedID(t *testing.T) {
	au, svc, handler := newTestServer(t)
	signIn(au)
	svc.EXPECT().InvoiceByID(gomock.Any(), gomock.Any()).Times(0)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, withSessionCookie(
		httptest.NewRequest(http.MethodGet, "/dashboard/invoices/not-a-uuid/edit", nil)))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPostDeleteInvoice_InvalidatesCachedViews(t *testing.T) {
	au, svc, handler := newTestServer(t)
	signIn(au)

	// the invoice list is rendered, cached, then re-rendered after the delete
	svc.EXPECT().Invoices(gomock.Any(), "", uint(1)).
		Return(&invoices.InvoicePage{Page: 1, TotalPages: 1}, nil).Times(2)

	id := uuid.New()
	svc.EXPECT().Delete(gomock.Any(), domain.InvoiceID(id)).Return(nil)

	get := func() {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, withSessionCookie(
			httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}

	get()
	get() // cached, no extra service call

	rec := httptest.NewRecorder()
	req := formRequest("/dashboard/invoices/"+id.String()+"/delete", url.Values{})
	req.AddCookie(&http.Cookie{Name: "session", Value: "valid-token"})
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}

	get() // cache was invalidated, rendered again
}
