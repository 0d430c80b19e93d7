package auth

import (
	"context"
	"invoicer/pkg/domain"
)

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	VerifySession(ctx context.Context, token string) (domain.UserID, error)
}
