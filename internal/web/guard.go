package web

import (
	"context"
	"net/http"
	"strings"

	"invoicer/pkg/domain"
)

// dashboardPrefix is the path prefix behind the session guard.
const dashboardPrefix = "/dashboard"

// Decision is the outcome of the route guard for a single request.
type Decision int

const (
	// Allow lets the request through to its handler.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated request to the login page.
	RedirectLogin
	// RedirectDashboard sends an authenticated request off public pages and
	// onto the dashboard.
	RedirectDashboard
)

// Decide is the pure routing rule applied to every guarded request. Requests
// under the dashboard prefix require a session; everywhere else a signed-in
// user is bounced to the dashboard. The logout action stays reachable either
// way so a signed-in user can actually end their session.
func Decide(hasSession bool, path string) Decision {
	switch {
	case strings.HasPrefix(path, dashboardPrefix):
		if !hasSession {
			return RedirectLogin
		}

		return Allow
	case path == "/logout":
		return Allow
	default:
		if hasSession {
			return RedirectDashboard
		}

		return Allow
	}
}

type ctxKey int

// userIDKey stores the authenticated user's ID in the request context.
const userIDKey ctxKey = iota

// GetUserIDFromContext returns the authenticated user's ID, or false when the
// request carries no valid session.
func GetUserIDFromContext(ctx context.Context) (domain.UserID, bool) {
	id, ok := ctx.Value(userIDKey).(domain.UserID)

	return id, ok
}

// WithSession is the route guard middleware. It resolves the session cookie
// (if any), applies Decide and stores the user ID in the request context for
// downstream handlers.
func (h *Handler) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			hasSession bool
			userID     domain.UserID
		)
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			if id, err := h.auth.VerifySession(r.Context(), cookie.Value); err == nil {
				hasSession = true
				userID = id
			}
		}

		switch Decide(hasSession, r.URL.Path) {
		case RedirectLogin:
			http.Redirect(w, r, "/login", http.StatusSeeOther)

			return
		case RedirectDashboard:
			http.Redirect(w, r, dashboardPrefix, http.StatusSeeOther)

			return
		case Allow:
		}

		if hasSession {
			r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
		}
		next.ServeHTTP(w, r)
	})
}
