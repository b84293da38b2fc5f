package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	require.NotEqual(t, "secret1", digest)

	require.True(t, h.Verify("secret1", digest))
	require.False(t, h.Verify("secret2", digest))
}

func TestHasher_SaltIsRandomPerCall(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	// Digests are not comparable by equality; only Verify matches them.
	require.NotEqual(t, first, second)
	require.True(t, h.Verify("same-password", first))
	require.True(t, h.Verify("same-password", second))
}

func TestHasher_VerifyFailsClosed(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("secret1")
	require.NoError(t, err)

	require.False(t, h.Verify("", digest))
	require.False(t, h.Verify("secret1", ""))
	require.False(t, h.Verify("secret1", "not-a-bcrypt-digest"))
}

func TestHasher_RejectsEmptyPlaintext(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)
	_, err := h.Hash("")
	require.Error(t, err)
}

func TestNewHasher_ClampsOutOfRangeCost(t *testing.T) {
	t.Parallel()

	h := NewHasher(999)
	require.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewHasher(-1)
	require.Equal(t, bcrypt.DefaultCost, h.cost)
}
