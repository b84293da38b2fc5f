package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/careerdock/careerdock-be/internal/auth"
	"github.com/careerdock/careerdock-be/internal/models"
	"github.com/careerdock/careerdock-be/internal/store"
)

var (
	// ErrInvalidCredentials collapses unknown email and wrong password into
	// one outcome so a caller cannot enumerate registered emails.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrMissingFields    = errors.New("all fields are required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrInternal stands in for any internal fault. The underlying cause is
	// logged, never surfaced to the caller.
	ErrInternal = errors.New("internal error")
)

// RegisterRequest carries the fields of a registration submission.
type RegisterRequest struct {
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
	FirstName       string
	LastName        string
}

// AuthResult is a successful authentication outcome: the sanitized user
// record plus a freshly issued session token.
type AuthResult struct {
	User  models.User
	Token string
}

// AuthServiceProvider defines the interface for authentication services.
type AuthServiceProvider interface {
	Register(req RegisterRequest) (AuthResult, error)
	Login(email, password string) (AuthResult, error)
	Profile(userID string) (models.User, error)
}

// AuthService provides the registration and login business logic.
type AuthService struct {
	store       store.UserStore
	hasher      *auth.Hasher
	issuer      *auth.TokenIssuer
	audit       AuditServiceProvider
	minPassword int
}

// NewAuthService creates a new AuthService.
func NewAuthService(userStore store.UserStore, hasher *auth.Hasher, issuer *auth.TokenIssuer, audit AuditServiceProvider, minPassword int) *AuthService {
	return &AuthService{
		store:       userStore,
		hasher:      hasher,
		issuer:      issuer,
		audit:       audit,
		minPassword: minPassword,
	}
}

// Register validates the submission, creates the record, and performs an
// implicit login for the new user. Validation runs before any store or
// hashing work, so a rejected request leaves no trace.
func (s *AuthService) Register(req RegisterRequest) (AuthResult, error) {
	email := strings.TrimSpace(req.Email)
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	if email == "" || req.Password == "" || req.ConfirmPassword == "" || firstName == "" || lastName == "" || req.Role == "" {
		return AuthResult{}, ErrMissingFields
	}
	if !strings.Contains(email, "@") {
		return AuthResult{}, ErrMissingFields
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return AuthResult{}, ErrMissingFields
	}
	if req.Password != req.ConfirmPassword {
		return AuthResult{}, ErrPasswordMismatch
	}
	if len(req.Password) < s.minPassword {
		return AuthResult{}, fmt.Errorf("%w: minimum length is %d", ErrPasswordTooShort, s.minPassword)
	}

	user, err := s.store.Create(email, req.Password, role, firstName+" "+lastName)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			s.audit.Record("auth.register.failed", "warn", "duplicate email", "")
			return AuthResult{}, err
		}
		log.Error().Err(err).Msg("user creation failed")
		return AuthResult{}, ErrInternal
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("token issuance failed after registration")
		return AuthResult{}, ErrInternal
	}

	s.audit.Record("auth.register", "info", "account created as "+string(user.Role), user.ID)

	// Don't hand the hash back to the transport layer
	user.PasswordHash = ""
	return AuthResult{User: user, Token: token}, nil
}

// Login verifies a user's credentials and issues a session token.
func (s *AuthService) Login(email, password string) (AuthResult, error) {
	user, err := s.store.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a comparison so response timing matches the known-email
			// path.
			s.hasher.VerifyDummy(password)
			s.audit.Record("auth.login.failed", "warn", "unknown email", "")
			return AuthResult{}, ErrInvalidCredentials
		}
		log.Error().Err(err).Msg("credential lookup failed")
		return AuthResult{}, ErrInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.audit.Record("auth.login.failed", "warn", "password verification failed", user.ID)
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("token issuance failed")
		return AuthResult{}, ErrInternal
	}

	s.audit.Record("auth.login", "info", "signed in as "+string(user.Role), user.ID)

	user.PasswordHash = ""
	return AuthResult{User: user, Token: token}, nil
}

// Profile retrieves the record behind an authenticated session, sanitized
// for presentation.
func (s *AuthService) Profile(userID string) (models.User, error) {
	user, err := s.store.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}
