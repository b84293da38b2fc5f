package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/careerdock/careerdock-be/internal/models"
)

var testUser = models.User{
	ID:          "user-123",
	Email:       "alice@x.com",
	Role:        models.RoleJobSeeker,
	DisplayName: "Alice Smith",
}

func TestTokenIssuer_IssueAndDecode(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("super-secret"), time.Hour)

	token, err := issuer.Issue(testUser)
	require.NoError(t, err)

	claims, err := issuer.Decode(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.Subject)
	require.Equal(t, models.RoleJobSeeker, claims.Role)
	require.Equal(t, "Alice Smith", claims.DisplayName)
}

func TestTokenIssuer_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("super-secret"), -time.Second)

	token, err := issuer.Issue(testUser)
	require.NoError(t, err)

	_, err = issuer.Decode(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewTokenIssuer([]byte("right-secret"), time.Hour).Issue(testUser)
	require.NoError(t, err)

	_, err = NewTokenIssuer([]byte("wrong-secret"), time.Hour).Decode(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenIssuer_TamperedPayload(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("super-secret"), time.Hour)
	token, err := issuer.Issue(testUser)
	require.NoError(t, err)

	// Flip a character in the payload segment; the signature no longer
	// covers the altered claims.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = issuer.Decode(tampered)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenIssuer_Malformed(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("k"), time.Hour)

	for _, tokenStr := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		_, err := issuer.Decode(tokenStr)
		require.ErrorIs(t, err, ErrTokenInvalid, "token %q", tokenStr)
	}
}
