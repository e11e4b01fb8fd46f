package ports

import (
	"context"

	"github.com/ecomarket/users-api/internal/core/domain"
)

// AccountService defines the use-case operations for the account registry.
type AccountService interface {
	List(ctx context.Context) ([]domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Save(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
}
