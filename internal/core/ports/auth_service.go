package ports

import (
	"context"
	"time"
)

// LoginResult is the ephemeral session assertion returned on a successful
// login. It is never persisted; every login mints a fresh one.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Email     string
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
