package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecomarket/users-api/internal/core/domain"
)

func seededAuthService() (*AuthService, *stubAccountRepo) {
	repo := newStubAccountRepo()
	repo.accounts["id-1"] = &domain.Account{
		ID:       "id-1",
		Name:     "Juan Perez",
		Email:    "juan@example.com",
		Password: "password123",
		Role:     domain.RoleClient,
	}
	return NewAuthService(repo, zerolog.Nop()), repo
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := seededAuthService()

	before := time.Now()
	result, err := svc.Login(context.Background(), "juan@example.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if result.Email != "juan@example.com" {
		t.Fatalf("expected the queried email back, got %q", result.Email)
	}
	if !strings.HasPrefix(result.Token, "fake-jwt-") {
		t.Fatalf("unexpected token format: %q", result.Token)
	}

	// Expiry is issuance time plus exactly two hours.
	after := time.Now()
	if result.ExpiresAt.Before(before.Add(2*time.Hour)) || result.ExpiresAt.After(after.Add(2*time.Hour)) {
		t.Fatalf("expiry not two hours out: %v", result.ExpiresAt)
	}
}

func TestAuthService_Login_TokensAreUnique(t *testing.T) {
	svc, _ := seededAuthService()

	first, err := svc.Login(context.Background(), "juan@example.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	second, err := svc.Login(context.Background(), "juan@example.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if first.Token == second.Token {
		t.Fatalf("two logins returned the same token: %q", first.Token)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := seededAuthService()

	_, err := svc.Login(context.Background(), "ghost@example.com", "password123")
	if !errors.Is(err, domain.ErrInvalidLogin) {
		t.Fatalf("expected ErrInvalidLogin, got %v", err)
	}
	if !strings.Contains(err.Error(), "account not found") {
		t.Fatalf("expected a distinct message, got %q", err.Error())
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := seededAuthService()

	_, err := svc.Login(context.Background(), "juan@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidLogin) {
		t.Fatalf("expected ErrInvalidLogin, got %v", err)
	}
	if !strings.Contains(err.Error(), "wrong credentials") {
		t.Fatalf("expected a distinct message, got %q", err.Error())
	}
}

func TestAuthService_Login_SameKindForBothFailures(t *testing.T) {
	// Callers must not be able to tell "unknown user" from "wrong password"
	// by error kind, only by message.
	svc, _ := seededAuthService()

	_, errUnknown := svc.Login(context.Background(), "ghost@example.com", "x")
	_, errWrong := svc.Login(context.Background(), "juan@example.com", "x")

	if !errors.Is(errUnknown, domain.ErrInvalidLogin) || !errors.Is(errWrong, domain.ErrInvalidLogin) {
		t.Fatalf("both failures must wrap the same kind: %v / %v", errUnknown, errWrong)
	}
	if errUnknown.Error() == errWrong.Error() {
		t.Fatalf("messages must stay distinguishable")
	}
}
