package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/petsparadise/petsparadise/internal/model"
)

// SessionTTL is how long an issued session token stays valid.
// Tokens are stateless: once issued they cannot be revoked before expiry.
const SessionTTL = 24 * time.Hour

// Token verification errors.
var (
	// ErrTokenInvalid indicates a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("session token is invalid")
	// ErrTokenExpired indicates a well-signed token past its expiry.
	ErrTokenExpired = errors.New("session token has expired")
)

// SessionClaims are the claims embedded in a session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
}

// IssueToken produces a signed HS256 token carrying the administrator
// identity with the given time-to-live.
func IssueToken(identity model.Identity, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		AdminID:  identity.AdminID,
		Username: identity.Username,
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// VerifyToken checks the token signature and expiry and returns the
// embedded identity. Signature integrity is checked before expiry, so a
// tampered token is always ErrTokenInvalid regardless of its claims.
// No database lookup happens here.
func VerifyToken(tokenString string, secret []byte) (model.Identity, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Identity{}, ErrTokenExpired
		}
		return model.Identity{}, ErrTokenInvalid
	}

	if !token.Valid {
		return model.Identity{}, ErrTokenInvalid
	}

	return model.Identity{AdminID: claims.AdminID, Username: claims.Username}, nil
}
