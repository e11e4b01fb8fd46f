package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ecomarket/users-api/internal/core/domain"
	"github.com/ecomarket/users-api/internal/core/ports"
)

// AccountService is the only writer path to the account store. It enforces
// the role-present and email-uniqueness invariants on save.
type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.repo.FindAll(ctx)
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AccountService) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.repo.FindByEmail(ctx, email)
}

// Save creates the account when its ID is unset and overwrites the record at
// that ID otherwise. The email-uniqueness check here is advisory: two
// concurrent saves can both pass it, and the store's unique index on email
// is what ultimately rejects the loser (surfaced as ErrDuplicateEmail).
func (s *AccountService) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if !account.Role.Valid() {
		return nil, domain.ErrMissingRole
	}

	existing, err := s.repo.FindByEmail(ctx, account.Email)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, &domain.PersistenceError{Err: err}
	}
	if existing != nil && existing.ID != account.ID {
		// Covers both "new account, email taken" (incoming ID is empty) and
		// "update collides with another account". An account keeping its own
		// email always passes.
		return nil, domain.ErrDuplicateEmail
	}

	saved, err := s.repo.Save(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			// The unique index rejected the write: a concurrent save won the
			// race after the advisory check passed.
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", account.Email).Msg("failed to save account")
		return nil, &domain.PersistenceError{Err: err}
	}

	s.logger.Info().Str("id", saved.ID).Str("email", saved.Email).Msg("account saved")
	return saved, nil
}

// Delete removes the account with the given id. Absence is checked up front
// rather than relying on the store's delete being a no-op.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return &domain.PersistenceError{Err: err}
	}
	if !exists {
		return domain.ErrAccountNotFound
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to delete account")
		return &domain.PersistenceError{Err: err}
	}

	s.logger.Info().Str("id", id).Msg("account deleted")
	return nil
}
