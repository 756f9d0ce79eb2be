package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

const minPasswordLength = 6

// AuthService owns the bearer credential lifecycle: registration, login,
// identity resolution and revocation. A successful login leaves at most one
// valid credential per user.
type AuthService struct {
	users      ports.UserRepository
	tokens     ports.TokenRepository
	notifier   ports.NotificationService
	issuer     ports.TokenIssuer
	hasher     ports.PasswordHasher
	transactor ports.Transactor
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(
	users ports.UserRepository,
	tokens ports.TokenRepository,
	notifier ports.NotificationService,
	issuer ports.TokenIssuer,
	hasher ports.PasswordHasher,
	transactor ports.Transactor,
) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		notifier:   notifier,
		issuer:     issuer,
		hasher:     hasher,
		transactor: transactor,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterUserInput) (ports.AuthResult, error) {
	if err := validateRegistration(input); err != nil {
		return ports.AuthResult{}, err
	}

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return ports.AuthResult{}, err
	}
	if taken {
		return ports.AuthResult{}, domain.ErrDuplicateUser
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return ports.AuthResult{}, err
	}

	user, err := s.users.Create(ctx, domain.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.UserRoleUser,
	})
	if err != nil {
		return ports.AuthResult{}, err
	}

	message := "Welcome " + user.FullName() + ", You have successfully registered."
	notifyBestEffort(ctx, s.notifier, user.ID, message, domain.NotificationTypeRegistrationSuccessful)

	accessToken, err := s.issueAndStore(ctx, user)
	if err != nil {
		return ports.AuthResult{}, err
	}

	return ports.AuthResult{User: user, AccessToken: accessToken}, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (ports.AuthResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return ports.AuthResult{}, domain.ErrInvalidCredentials
		}
		return ports.AuthResult{}, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return ports.AuthResult{}, domain.ErrInvalidCredentials
	}

	notifyBestEffort(ctx, s.notifier, user.ID, "Welcome back, "+user.FirstName+"!", domain.NotificationTypeLoginSuccessful)

	accessToken, err := s.issuer.Generate(user)
	if err != nil {
		return ports.AuthResult{}, err
	}

	// Revoking the old credentials and storing the new one is one atomic
	// step; a racing Identify sees either the old set or the new token,
	// never a half-applied mix.
	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.tokens.RevokeAllForUser(ctx, user.ID); err != nil {
			return err
		}
		_, err := s.tokens.Save(ctx, domain.Token{
			Token:  accessToken,
			Kind:   domain.TokenKindBearer,
			UserID: user.ID,
		})
		return err
	})
	if err != nil {
		return ports.AuthResult{}, err
	}

	return ports.AuthResult{User: user, AccessToken: accessToken}, nil
}

// Identify checks the credential's own signature and expiry first, then the
// stored record: revocation is a side channel independent of the embedded
// expiry, so it must be read from the store on every request.
func (s *AuthService) Identify(ctx context.Context, rawToken string) (domain.User, error) {
	claims, err := s.issuer.Parse(rawToken)
	if err != nil {
		return domain.User{}, err
	}

	stored, err := s.tokens.FindByToken(ctx, rawToken)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if !stored.Valid() {
		return domain.User{}, domain.ErrTokenRevoked
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	return user, nil
}

// Logout revokes every credential of the presented token's user. An empty or
// unresolvable credential is a no-op, so repeated logouts succeed quietly.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}

	stored, err := s.tokens.FindByToken(ctx, rawToken)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return nil
		}
		return err
	}

	return s.tokens.RevokeAllForUser(ctx, stored.UserID)
}

func (s *AuthService) issueAndStore(ctx context.Context, user domain.User) (string, error) {
	accessToken, err := s.issuer.Generate(user)
	if err != nil {
		return "", err
	}

	_, err = s.tokens.Save(ctx, domain.Token{
		Token:  accessToken,
		Kind:   domain.TokenKindBearer,
		UserID: user.ID,
	})
	if err != nil {
		return "", err
	}

	return accessToken, nil
}

func validateRegistration(input domain.RegisterUserInput) error {
	switch {
	case strings.TrimSpace(input.Username) == "":
		return fmt.Errorf("%w: username is required", domain.ErrValidation)
	case strings.TrimSpace(input.Email) == "":
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	case len(input.Password) < minPasswordLength:
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}
	return nil
}
