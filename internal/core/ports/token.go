package ports

import (
	"context"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
)

type TokenRepository interface {
	Save(ctx context.Context, token domain.Token) (domain.Token, error)
	// FindByToken returns domain.ErrTokenNotFound when no record matches.
	FindByToken(ctx context.Context, raw string) (domain.Token, error)
	// RevokeAllForUser marks every valid token of the user revoked and
	// expired. Idempotent.
	RevokeAllForUser(ctx context.Context, userID uint64) error
}

type AuthResult struct {
	User        domain.User
	AccessToken string
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (AuthResult, error)
	Login(ctx context.Context, username, password string) (AuthResult, error)
	// Identify resolves the acting user from a presented bearer credential.
	Identify(ctx context.Context, rawToken string) (domain.User, error)
	// Logout is a no-op for an empty or unresolvable credential.
	Logout(ctx context.Context, rawToken string) error
}
