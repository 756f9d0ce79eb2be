package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

const insertTokenQuery = `
INSERT INTO tokens (token, token_type, revoked, expired, user_id)
VALUES (?, ?, ?, ?, ?);
`

const selectTokenByValueQuery = `
SELECT * FROM tokens WHERE token = ?;
`

const selectTokenByIDQuery = `
SELECT * FROM tokens WHERE id = ?;
`

const revokeAllUserTokensQuery = `
UPDATE tokens SET revoked = TRUE, expired = TRUE
WHERE user_id = ? AND (revoked = FALSE OR expired = FALSE);
`

type TokenRepository struct {
	db *sqlx.DB
}

type tokenRow struct {
	ID        uint64    `db:"id"`
	Token     string    `db:"token"`
	TokenType string    `db:"token_type"`
	Revoked   bool      `db:"revoked"`
	Expired   bool      `db:"expired"`
	UserID    uint64    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.TokenRepository = (*TokenRepository)(nil)

func NewTokenRepository(db *sqlx.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Save(ctx context.Context, token domain.Token) (domain.Token, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx, insertTokenQuery,
		token.Token,
		string(token.Kind),
		token.Revoked,
		token.Expired,
		token.UserID,
	)
	if err != nil {
		return domain.Token{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Token{}, err
	}

	var row tokenRow
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, selectTokenByIDQuery, id); err != nil {
		return domain.Token{}, err
	}
	return mapTokenRowToDomainToken(row), nil
}

func (r *TokenRepository) FindByToken(ctx context.Context, raw string) (domain.Token, error) {
	var row tokenRow
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, selectTokenByValueQuery, raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Token{}, domain.ErrTokenNotFound
		}
		return domain.Token{}, err
	}
	return mapTokenRowToDomainToken(row), nil
}

func (r *TokenRepository) RevokeAllForUser(ctx context.Context, userID uint64) error {
	_, err := ext(ctx, r.db).ExecContext(ctx, revokeAllUserTokensQuery, userID)
	return err
}

func mapTokenRowToDomainToken(row tokenRow) domain.Token {
	return domain.Token{
		ID:        row.ID,
		Token:     row.Token,
		Kind:      domain.TokenKind(row.TokenType),
		Revoked:   row.Revoked,
		Expired:   row.Expired,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
	}
}
