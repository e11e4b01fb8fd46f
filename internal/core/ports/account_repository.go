package ports

import (
	"context"

	"github.com/ecomarket/users-api/internal/core/domain"
)

// AccountRepository is the durable store gateway for accounts: lookups by id,
// a secondary exact-match lookup by email, and a save that inserts when the
// id is unset and overwrites otherwise.
//
// The store owns a unique index on email; the service-side uniqueness check
// is advisory only, a lost race surfaces as domain.ErrDuplicateEmail from
// Save.
type AccountRepository interface {
	FindAll(ctx context.Context) ([]domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context, account *domain.Account) (*domain.Account, error)
	DeleteByID(ctx context.Context, id string) error
}
