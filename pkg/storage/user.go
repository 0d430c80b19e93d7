package storage

import (
	"context"

	"invoicer/pkg/domain"
)

// UserStorage is the credential store accessor: the sole read path to user
// authentication records, plus the seed-time insert.
type UserStorage interface {
	// UserByEmail fetches a user by email. Returns nil when no user exists
	// for the address; a non-nil error only for storage-level faults.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// StoreUsers inserts one or more users and returns the stored rows as
	// they exist in the database (including generated fields).
	StoreUsers(ctx context.Context, users ...domain.User) ([]domain.User, error)
}
