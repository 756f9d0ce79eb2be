package ports

import (
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
)

type TokenClaims struct {
	UserID   uint64
	Username string
	Role     domain.UserRole
}

// TokenIssuer signs and verifies bearer credentials. Parse rejects bad
// signatures and credentials past their embedded expiry; revocation is the
// token store's concern.
type TokenIssuer interface {
	Generate(user domain.User) (string, error)
	Parse(raw string) (TokenClaims, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}
