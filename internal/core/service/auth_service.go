package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ecomarket/users-api/internal/core/domain"
	"github.com/ecomarket/users-api/internal/core/ports"
)

const sessionTTL = 2 * time.Hour

// AuthService verifies credentials against the account store and issues a
// short-lived session assertion. It is stateless: nothing is persisted and
// there is no validation, refresh, or revocation path.
type AuthService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

// Login authenticates email/password and returns a fresh token with a fixed
// two-hour expiry. Passwords are compared verbatim, as the legacy service
// did; the token is an opaque unique string, not a verifiable credential.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: account not found", domain.ErrInvalidLogin)
		}
		return nil, &domain.PersistenceError{Err: err}
	}

	if account.Password != password {
		return nil, fmt.Errorf("%w: wrong credentials", domain.ErrInvalidLogin)
	}

	s.logger.Info().Str("email", account.Email).Msg("login succeeded")

	return &ports.LoginResult{
		Token:     "fake-jwt-" + uuid.NewString(),
		ExpiresAt: time.Now().Add(sessionTTL),
		Email:     account.Email,
	}, nil
}
