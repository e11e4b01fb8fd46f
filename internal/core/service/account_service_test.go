package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecomarket/users-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	accounts  map[string]*domain.Account
	nextID    int
	saveErr   error // if set, Save returns this error
	saveCalls int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) FindAll(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.accounts[id]
	return ok, nil
}

func (r *stubAccountRepo) Save(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.saveCalls++
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	copy := cloneAccount(account)
	if copy.ID == "" {
		r.nextID++
		copy.ID = fmt.Sprintf("id-%d", r.nextID)
	}
	r.accounts[copy.ID] = cloneAccount(copy)
	return copy, nil
}

func (r *stubAccountRepo) DeleteByID(_ context.Context, id string) error {
	delete(r.accounts, id)
	return nil
}

func validAccount() *domain.Account {
	return &domain.Account{
		Name:     "Juan Perez",
		Email:    "juan@example.com",
		Password: "password123",
		Role:     domain.RoleClient,
	}
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

func TestAccountService_Save_AssignsID(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	saved, err := svc.Save(context.Background(), validAccount())
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected an assigned id")
	}

	got, err := svc.GetByID(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if *got != *saved {
		t.Fatalf("stored account differs: got %+v want %+v", got, saved)
	}
}

func TestAccountService_Save_MissingRole(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	account := validAccount()
	account.Role = ""

	if _, err := svc.Save(context.Background(), account); !errors.Is(err, domain.ErrMissingRole) {
		t.Fatalf("expected ErrMissingRole, got %v", err)
	}
	if repo.saveCalls != 0 {
		t.Fatalf("store must not be reached when role is missing")
	}
}

func TestAccountService_Save_DuplicateEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	if _, err := svc.Save(context.Background(), validAccount()); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second := validAccount()
	second.Name = "Otro Juan"
	if _, err := svc.Save(context.Background(), second); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if repo.saveCalls != 1 {
		t.Fatalf("no write may happen for a colliding email")
	}
}

func TestAccountService_Save_SelfUpdateKeepsEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	saved, err := svc.Save(context.Background(), validAccount())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	saved.Name = "Juan P."
	updated, err := svc.Save(context.Background(), saved)
	if err != nil {
		t.Fatalf("self-update under unchanged email must succeed, got %v", err)
	}
	if updated.Name != "Juan P." || updated.ID != saved.ID {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestAccountService_Save_UpdateStealingEmailFails(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	first, _ := svc.Save(context.Background(), validAccount())

	other := validAccount()
	other.Email = "maria@example.com"
	second, err := svc.Save(context.Background(), other)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	second.Email = first.Email
	if _, err := svc.Save(context.Background(), second); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAccountService_Save_ConstraintRaceLost(t *testing.T) {
	// The advisory check passes but the store's unique index rejects the
	// write, e.g. a concurrent save won the race.
	repo := newStubAccountRepo()
	repo.saveErr = domain.ErrDuplicateEmail
	svc := NewAccountService(repo, zerolog.Nop())

	if _, err := svc.Save(context.Background(), validAccount()); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAccountService_Save_WrapsStorageError(t *testing.T) {
	repo := newStubAccountRepo()
	repo.saveErr = errors.New("socket closed")
	svc := NewAccountService(repo, zerolog.Nop())

	_, err := svc.Save(context.Background(), validAccount())

	var pe *domain.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if !errors.Is(err, repo.saveErr) {
		t.Fatalf("cause must be preserved, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete / lookups
// ---------------------------------------------------------------------------

func TestAccountService_Delete(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	saved, _ := svc.Save(context.Background(), validAccount())

	if err := svc.Delete(context.Background(), saved.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), saved.ID); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("account should be gone, got %v", err)
	}
}

func TestAccountService_Delete_NotFound(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountService_List(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	_, _ = svc.Save(context.Background(), validAccount())
	other := validAccount()
	other.Email = "maria@example.com"
	_, _ = svc.Save(context.Background(), other)

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(all))
	}
}

func TestAccountService_GetByEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	saved, _ := svc.Save(context.Background(), validAccount())

	got, err := svc.GetByEmail(context.Background(), "juan@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.ID != saved.ID {
		t.Fatalf("unexpected account: %+v", got)
	}

	// Exact-match semantics: a different casing is a different email.
	if _, err := svc.GetByEmail(context.Background(), "Juan@example.com"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound for cased email, got %v", err)
	}
}
