package auth

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"invoicer/internal/config"
	"invoicer/pkg/domain"
	"invoicer/pkg/serrors"
	"invoicer/pkg/storage"

	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength mirrors the shape check applied on sign-in. Passwords
// shorter than this are rejected before any lookup happens.
const minPasswordLength = 6

// Options configure session token signing and lifetime. These settings are
// typically derived from application configuration.
type Options struct {
	// SessionSecret is the HMAC key used to sign and verify session tokens.
	SessionSecret []byte
	// SessionTTL is how long an issued session token stays valid.
	SessionTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SessionSecret: []byte(cfg.Auth.SessionSecret),
		SessionTTL:    cfg.Auth.SessionTTL,
	}
}

// authenticator is the concrete implementation of the Authenticator interface.
// It verifies credentials against the storage layer and manages session tokens.
type authenticator struct {
	options Options
	storage storage.Storage
}

// Authenticate verifies the provided email/password pair and returns a signed
// session token on success. Malformed input, an unknown email and a password
// mismatch all produce the same ErrInvalidCredentials so a caller cannot tell
// which check failed. Storage faults surface as ErrInternal instead.
func (a authenticator) Authenticate(ctx context.Context, email, password string) (string, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return "", serrors.KindOnly(serrors.ErrInvalidCredentials)
	}
	if len(password) < minPasswordLength {
		return "", serrors.KindOnly(serrors.ErrInvalidCredentials)
	}

	user, err := a.storage.UserByEmail(ctx, email)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not look up user")
	}
	if user == nil {
		return "", serrors.KindOnly(serrors.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", serrors.KindOnly(serrors.ErrInvalidCredentials)
	}

	token, err := a.mintSession(user.ID)
	if err != nil {
		return "", fmt.Errorf("could not mint session: %w", err)
	}

	return token, nil
}

// VerifySession parses and validates a session token and returns the user ID
// it was issued for. Any parse or validation failure yields ErrUnauthorized.
func (a authenticator) VerifySession(_ context.Context, token string) (domain.UserID, error) {
	return a.parseSession(token)
}

// New creates a new Authenticator backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Authenticator {
	return &authenticator{
		options: options,
		storage: storage,
	}
}
