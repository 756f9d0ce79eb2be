package domain

import "time"

type TokenKind string

const TokenKindBearer TokenKind = "bearer"

// Token is the stored record behind an issued bearer credential. Revocation
// flips both flags exactly once and never reverts.
type Token struct {
	ID        uint64
	Token     string
	Kind      TokenKind
	Revoked   bool
	Expired   bool
	UserID    uint64
	CreatedAt time.Time
}

func (t Token) Valid() bool {
	return !t.Revoked && !t.Expired
}
