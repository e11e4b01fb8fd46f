package domain

import "errors"

// Role is the closed set of permission tiers an account can hold.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

var ErrAccountNotFound = errors.New("account not found")
var ErrMissingRole = errors.New("role is required")
var ErrDuplicateEmail = errors.New("an account with that email already exists")

// ErrInvalidLogin is the single failure kind for login. Both "unknown email"
// and "wrong password" wrap it with distinct messages, so callers cannot
// tell the causes apart by kind.
var ErrInvalidLogin = errors.New("invalid login")

// PersistenceError wraps a storage-level failure so the raw driver error
// never crosses the service boundary. The cause is preserved for logs.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "failed to persist account: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Account is the persisted user record.
//
// Password is stored and compared verbatim, as the legacy service did. It is
// excluded from JSON so it can never appear in a response.
type Account struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Name     string `json:"nombre" bson:"nombre"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"-" bson:"contrasena"`
	Address  string `json:"direccion,omitempty" bson:"direccion,omitempty"`
	Phone    string `json:"telefono,omitempty" bson:"telefono,omitempty"`
	Role     Role   `json:"rol" bson:"rol"`
}
