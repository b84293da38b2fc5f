// Package store holds the user records behind authentication. The store is
// deliberately volatile: records live only for the lifetime of the process.
// A production deployment would swap in a durable implementation of
// UserStore with the same uniqueness and read-your-writes behavior.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/careerdock/careerdock-be/internal/models"
)

var (
	// ErrNotFound is returned when no record exists for a lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a create would violate email
	// uniqueness.
	ErrDuplicateEmail = errors.New("user with this email already exists")
	// ErrInvalidInput is returned for creates with an empty email or
	// password, or a role outside the enumeration.
	ErrInvalidInput = errors.New("invalid user input")
)

// PasswordHasher is the one-way digest function the store applies before a
// record is persisted. The plaintext is never retained.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// UserStore defines the interface for user record storage.
type UserStore interface {
	FindByEmail(email string) (models.User, error)
	FindByID(id string) (models.User, error)
	Create(email, passwordPlain string, role models.Role, displayName string) (models.User, error)
	Seed(users []models.User)
	Count() int
}

// MemoryStore is an in-memory UserStore. All access goes through one RWMutex:
// lookups take the read lock, and the duplicate check plus insert happen
// under a single write lock acquisition, so concurrent creates for the same
// email yield exactly one winner and a create that has returned is visible to
// every later lookup.
type MemoryStore struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
	byID    map[string]models.User
	hasher  PasswordHasher
}

// NewMemoryStore creates an empty MemoryStore hashing passwords with hasher.
func NewMemoryStore(hasher PasswordHasher) *MemoryStore {
	return &MemoryStore{
		byEmail: make(map[string]models.User),
		byID:    make(map[string]models.User),
		hasher:  hasher,
	}
}

// NormalizeEmail is the canonical form used for uniqueness and lookup:
// whitespace trimmed, lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail retrieves a single user by email. Returns ErrNotFound when no
// record matches.
func (s *MemoryStore) FindByEmail(email string) (models.User, error) {
	key := NormalizeEmail(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.byEmail[key]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

// FindByID retrieves a single user by ID. Returns ErrNotFound when no record
// matches.
func (s *MemoryStore) FindByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.byID[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

// Create hashes the password and inserts a new record. The bcrypt work runs
// outside the lock so creates for different emails do not serialize on it; a
// cheap duplicate pre-check runs first and the authoritative check repeats
// under the write lock at insert time.
func (s *MemoryStore) Create(email, passwordPlain string, role models.Role, displayName string) (models.User, error) {
	key := NormalizeEmail(email)
	if key == "" || passwordPlain == "" || !role.Valid() {
		return models.User{}, ErrInvalidInput
	}

	s.mu.RLock()
	_, exists := s.byEmail[key]
	s.mu.RUnlock()
	if exists {
		return models.User{}, ErrDuplicateEmail
	}

	digest, err := s.hasher.Hash(passwordPlain)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        key,
		PasswordHash: digest,
		Role:         role,
		DisplayName:  strings.TrimSpace(displayName),
		CreatedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[key]; exists {
		// Lost the race to a concurrent create for the same email.
		return models.User{}, ErrDuplicateEmail
	}
	s.byEmail[key] = user
	s.byID[user.ID] = user
	return user, nil
}

// Seed installs pre-built records, skipping any whose email is already
// present. Used for demo fixtures; password hashes come in ready-made.
func (s *MemoryStore) Seed(users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range users {
		key := NormalizeEmail(user.Email)
		if key == "" {
			continue
		}
		if _, exists := s.byEmail[key]; exists {
			continue
		}
		user.Email = key
		if user.CreatedAt.IsZero() {
			user.CreatedAt = time.Now().UTC()
		}
		s.byEmail[key] = user
		s.byID[user.ID] = user
	}
}

// Count returns the number of stored records.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byEmail)
}
