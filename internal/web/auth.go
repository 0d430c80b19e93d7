package web

import (
	"errors"
	"net/http"

	"invoicer/pkg/logger"
	"invoicer/pkg/serrors"

	"go.uber.org/zap"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "session"

// loginData feeds the login page template.
type loginData struct {
	Email   string
	Message string
}

// GetLogin renders the login form.
func (h *Handler) GetLogin(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login", loginData{})
}

// PostLogin verifies the submitted credentials, sets the session cookie and
// redirects to the dashboard. Failed sign-ins re-render the form with a
// single generic message regardless of what went wrong with the credentials.
func (h *Handler) PostLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, "login", loginData{Message: "Invalid credentials."})

		return
	}
	email := r.PostFormValue("email")

	token, err := h.auth.Authenticate(r.Context(), email, r.PostFormValue("password"))
	switch {
	case errors.Is(err, serrors.ErrInvalidCredentials):
		h.render(w, r, http.StatusUnprocessableEntity, "login", loginData{
			Email:   email,
			Message: "Invalid credentials.",
		})

		return
	case err != nil:
		logger.Error(r.Context(), "could not authenticate user", zap.Error(err))
		h.render(w, r, http.StatusInternalServerError, "login", loginData{
			Email:   email,
			Message: "Something went wrong.",
		})

		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.options.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, dashboardPrefix, http.StatusSeeOther)
}

// PostLogout clears the session cookie and returns to the public home page.
func (h *Handler) PostLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
