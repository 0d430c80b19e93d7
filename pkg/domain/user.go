package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// User is an account that can sign in to the dashboard. Users are created
// out-of-band (seed command); at runtime they are only ever read by the
// credential lookup in the authenticator.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`
	// Name is the display name of the user.
	Name string `json:"name"`
	// Email uniquely identifies at most one user and is the login identifier.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the user's password. Never exposed.
	PasswordHash string `json:"-"`

	// CreatedAt is the time the account was seeded.
	CreatedAt time.Time `json:"createdAt"`
}
