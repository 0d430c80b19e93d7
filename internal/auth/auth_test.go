package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"invoicer/internal/auth"
	"invoicer/pkg/domain"
	"invoicer/pkg/serrors"
	mockstorage "invoicer/pkg/storage/mock"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testEmail    = "user@nextmail.com"
	testPassword = "123456"
)

func newTestAuthenticator(t *testing.T) (*mockstorage.MockStorage, auth.Authenticator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	a := auth.New(st, auth.Options{
		SessionSecret: []byte("test-secret"),
		SessionTTL:    time.Hour,
	})

	return st, a
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("could not hash password: %v", err)
	}

	return string(hash)
}

func TestAuthenticator_Authenticate_Success(t *testing.T) {
	st, a := newTestAuthenticator(t)

	userID := domain.UserID(uuid.New())
	st.EXPECT().UserByEmail(gomock.Any(), testEmail).Return(&domain.User{
		ID:           userID,
		Email:        testEmail,
		PasswordHash: hashPassword(t, testPassword),
	}, nil)

	token, err := a.Authenticate(context.Background(), testEmail, testPassword)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected session token, got empty string")
	}

	got, err := a.VerifySession(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error verifying session: %v", err)
	}
	if got != userID {
		t.Fatalf("expected user ID %s, got %s", uuid.UUID(userID), uuid.UUID(got))
	}
}

func TestAuthenticator_Authenticate_MalformedInput(t *testing.T) {
	st, a := newTestAuthenticator(t)
	// No lookup should happen when the input shape is already invalid.
	st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Times(0)

	if _, err := a.Authenticate(context.Background(), "not-an-email", testPassword); !errors.Is(err, serrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for malformed email, got %v", err)
	}
	if _, err := a.Authenticate(context.Background(), testEmail, "short"); !errors.Is(err, serrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for short password, got %v", err)
	}
}

func TestAuthenticator_Authenticate_FailuresAreIndistinguishable(t *testing.T) {
	st, a := newTestAuthenticator(t)

	// unknown email
	st.EXPECT().UserByEmail(gomock.Any(), testEmail).Return(nil, nil)
	_, unknownErr := a.Authenticate(context.Background(), testEmail, testPassword)
	if !errors.Is(unknownErr, serrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownErr)
	}

	// wrong password
	st.EXPECT().UserByEmail(gomock.Any(), testEmail).Return(&domain.User{
		Email:        testEmail,
		PasswordHash: hashPassword(t, "different-password"),
	}, nil)
	_, mismatchErr := a.Authenticate(context.Background(), testEmail, testPassword)
	if !errors.Is(mismatchErr, serrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", mismatchErr)
	}

	// a caller must not be able to tell the two failures apart
	if unknownErr.Error() != mismatchErr.Error() {
		t.Fatalf("expected identical failures, got %q vs %q", unknownErr, mismatchErr)
	}
}

func TestAuthenticator_Authenticate_StorageError(t *testing.T) {
	st, a := newTestAuthenticator(t)

	st.EXPECT().UserByEmail(gomock.Any(), testEmail).Return(nil, errors.New("boom"))

	_, err := a.Authenticate(context.Background(), testEmail, testPassword)
	if !errors.Is(err, serrors.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if errors.Is(err, serrors.ErrInvalidCredentials) {
		t.Fatalf("storage faults must not look like bad credentials: %v", err)
	}
}

func TestAuthenticator_VerifySession_Invalid(t *testing.T) {
	_, a := newTestAuthenticator(t)

	if _, err := a.VerifySession(context.Background(), "garbage"); !errors.Is(err, serrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for garbage token, got %v", err)
	}

	// token signed with a different secret
	other := auth.New(nil, auth.Options{SessionSecret: []byte("other-secret"), SessionTTL: time.Hour})
	st, _ := newTestAuthenticator(t)
	st.EXPECT().UserByEmail(gomock.Any(), testEmail).Return(&domain.User{
		ID:           domain.UserID(uuid.New()),
		Email:        testEmail,
		PasswordHash: hashPassword(t, testPassword),
	}, nil)
	token, err := auth.New(st, auth.Options{SessionSecret: []byte("test-secret"), SessionTTL: time.Hour}).
		Authenticate(context.Background(), testEmail, testPassword)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := other.VerifySession(context.Background(), token); !errors.Is(err, serrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong key, got %v", err)
	}
}

func TestAuthenticator_VerifySession_Expired(t *testing.T) {
	st, _ := newTestAuthenticator(t)

	expired := auth.New(st, auth.Options{
		SessionSecret: []byte("test-secret"),
		SessionTTL:    -time.Minute,
	})
	st.EXPECT().UserByEmail(gomock.Any(), testEmail).Return(&domain.User{
		ID:           domain.UserID(uuid.New()),
		Email:        testEmail,
		PasswordHash: hashPassword(t, testPassword),
	}, nil)

	token, err := expired.Authenticate(context.Background(), testEmail, testPassword)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := expired.VerifySession(context.Background(), token); !errors.Is(err, serrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}
