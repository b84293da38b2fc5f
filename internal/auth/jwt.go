package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/careerdock/careerdock-be/internal/models"
)

var (
	// ErrTokenExpired marks a structurally valid token presented past its
	// expiry. Recoverable by re-authenticating.
	ErrTokenExpired = errors.New("session token expired")
	// ErrTokenInvalid covers every other decode failure: bad signature,
	// malformed or truncated token, wrong signing method.
	ErrTokenInvalid = errors.New("session token invalid")
)

// Claims defines the JWT claims structure. The role is a snapshot taken at
// issuance: an already-issued token keeps it until expiry, the store is not
// consulted again.
type Claims struct {
	Role        models.Role `json:"role"`
	DisplayName string      `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and decodes signed session tokens.
type TokenIssuer struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenIssuer creates a TokenIssuer signing with secret; issued tokens
// expire lifetime after issuance.
func NewTokenIssuer(secret []byte, lifetime time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, lifetime: lifetime}
}

// Issue creates a new signed session token for a given user.
func (i *TokenIssuer) Issue(user models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role:        user.Role,
		DisplayName: user.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Decode parses and validates a serialized session token. Any tampering with
// payload or signature, and any expiry, makes it fail rather than return
// altered claims.
func (i *TokenIssuer) Decode(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
