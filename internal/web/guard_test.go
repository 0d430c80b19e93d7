package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockauth "invoicer/internal/auth/mock"
	mockinvoices "invoicer/internal/invoices/mock"
	"invoicer/internal/web"
	"invoicer/pkg/domain"
	"invoicer/pkg/serrors"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		name       string
		hasSession bool
		path       string
		want       web.Decision
	}{
		{"anonymous on home", false, "/", web.Allow},
		{"anonymous on login", false, "/login", web.Allow},
		{"anonymous on dashboard", false, "/dashboard", web.RedirectLogin},
		{"anonymous on nested dashboard page", false, "/dashboard/invoices/create", web.RedirectLogin},
		{"signed in on dashboard", true, "/dashboard", web.Allow},
		{"signed in on nested dashboard page", true, "/dashboard/invoices", web.Allow},
		{"signed in on home", true, "/", web.RedirectDashboard},
		{"signed in on login", true, "/login", web.RedirectDashboard},
		{"signed in on logout", true, "/logout", web.Allow},
		{"anonymous on logout", false, "/logout", web.Allow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := web.Decide(tc.hasSession, tc.path); got != tc.want {
				t.Fatalf("Decide(%v, %q) = %v, want %v", tc.hasSession, tc.path, got, tc.want)
			}
		})
	}
}

func newTestServer(t *testing.T) (*mockauth.MockAuthenticator, *mockinvoices.MockService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	au := mockauth.NewMockAuthenticator(ctrl)
	svc := mockinvoices.NewMockService(ctrl)

	srv, err := web.NewServer(web.Deps{Auth: au, Invoices: svc}, web.Options{
		RequestTimeout: time.Minute,
		MetricsPath:    "/metrics",
		SessionTTL:     time.Hour,
	})
	if err != nil {
		t.Fatalf("could not build server: %v", err)
	}

	return au, svc, srv.Handler
}

func withSessionCookie(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: "session", Value: "valid-token"})

	return req
}

func TestWithSession_AnonymousDashboardRedirectsToLogin(t *testing.T) {
	_, _, handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestWithSession_SignedInLoginRedirectsToDashboard(t *testing.T) {
	au, _, handler := newTestServer(t)
	au.EXPECT().VerifySession(gomock.Any(), "valid-token").
		Return(domain.UserID(uuid.New()), nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, withSessionCookie(httptest.NewRequest(http.MethodGet, "/login", nil)))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}

func TestWithSession_InvalidTokenIsAnonymous(t *testing.T) {
	au, _, handler := newTestServer(t)
	au.EXPECT().VerifySession(gomock.Any(), "valid-token").
		Return(domain.UserID{}, serrors.KindOnly(serrors.ErrUnauthorized))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, withSessionCookie(httptest.NewRequest(http.MethodGet, "/dashboard", nil)))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestWithSession_MetricsBypassesGuard(t *testing.T) {
	_, _, handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics endpoint, got %d", rec.Code)
	}
}
