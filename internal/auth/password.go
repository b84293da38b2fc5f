package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher produces and verifies salted bcrypt password digests. bcrypt embeds
// the cost factor and salt in the digest itself, so the cost can be raised
// later without rehashing existing records.
type Hasher struct {
	cost  int
	dummy string
}

// NewHasher creates a Hasher with the given bcrypt cost. Costs outside the
// range bcrypt supports are clamped to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	h := &Hasher{cost: cost}

	// A throwaway digest used to equalize timing on the unknown-email login
	// path. Never stored, never matched against real input.
	dummy, err := bcrypt.GenerateFromPassword([]byte("careerdock-dummy"), cost)
	if err == nil {
		h.dummy = string(dummy)
	}
	return h
}

// Hash returns the bcrypt digest for plain. The salt is random per call, so
// two digests of the same plaintext are never equal; use Verify to compare.
func (h *Hasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", fmt.Errorf("refusing to hash empty password")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plain matches digest. It fails closed: empty input,
// a malformed digest, or any internal error all yield false.
func (h *Hasher) Verify(plain, digest string) bool {
	if plain == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// VerifyDummy burns one bcrypt comparison against the throwaway digest so a
// login for an unknown email costs the same as one for a known email.
func (h *Hasher) VerifyDummy(plain string) {
	if h.dummy == "" {
		return
	}
	_ = bcrypt.CompareHashAndPassword([]byte(h.dummy), []byte(plain))
}
