// Package auth implements the two credential primitives shared by the
// handlers: bcrypt password hashing and HS256 JWT issuance/verification.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talenthub/accounts-api/internal/core/domain"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

// TokenIssuer mints and verifies signed tokens asserting (account id, role).
// The signing secret is process-wide configuration, read once at startup.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates a TokenIssuer. A non-positive ttl falls back to
// DefaultTokenTTL.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue produces a signed token embedding the account id (sub), its role,
// and an absolute expiry ttl from now.
func (t *TokenIssuer) Issue(accountID string, role domain.Role) (string, error) {
	now := t.now().UTC()
	claims := jwt.MapClaims{
		"sub":  accountID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature and expiry and returns the embedded account id
// and role. Malformed input, a bad signature, a non-HS256 algorithm, or a
// past expiry all yield domain.ErrTokenInvalid, never a panic.
func (t *TokenIssuer) Verify(token string) (accountID string, role domain.Role, err error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return t.now() }))
	if err != nil || !parsed.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	if sub == "" || !domain.ValidRole(roleStr) {
		return "", "", domain.ErrTokenInvalid
	}
	return sub, domain.Role(roleStr), nil
}
