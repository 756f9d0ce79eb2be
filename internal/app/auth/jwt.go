package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

type JWTConfig struct {
	SecretKey string
	TokenTTL  time.Duration
	Issuer    string
}

type jwtClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 bearer credentials. Each credential
// gets a fresh jti so two logins in the same second still produce distinct
// stored tokens.
type JWTManager struct {
	config JWTConfig
}

func NewJWTManager(config JWTConfig) *JWTManager {
	return &JWTManager{config: config}
}

var _ ports.TokenIssuer = (*JWTManager)(nil)

func (m *JWTManager) Generate(user domain.User) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.config.Issuer,
			Subject:   strconv.FormatUint(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.SecretKey))
}

func (m *JWTManager) Parse(raw string) (ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &jwtClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidCredentials
		}
		return []byte(m.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.TokenClaims{}, domain.ErrInvalidCredentials
		}
		return ports.TokenClaims{}, domain.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return ports.TokenClaims{}, domain.ErrInvalidCredentials
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return ports.TokenClaims{}, domain.ErrInvalidCredentials
	}

	return ports.TokenClaims{
		UserID:   userID,
		Username: claims.Username,
		Role:     domain.UserRole(claims.Role),
	}, nil
}
