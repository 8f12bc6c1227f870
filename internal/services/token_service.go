package services

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer mints signed session tokens. The token carries the customer
// UUID and an expiry instant, but validation never parses it back: the
// session row is the source of truth, so logout revokes immediately without
// a blacklist.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer() *TokenIssuer {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-please-change"
	}
	return &TokenIssuer{secret: []byte(secret)}
}

// IssueToken signs an HS256 token for the given customer UUID and validity window.
func (t *TokenIssuer) IssueToken(customerUUID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   customerUUID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		Issuer:    "food-ordering-api",
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}
