package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/careerdock/careerdock-be/internal/models"
)

// PublicRoot is where denied callers are routed. Unauthenticated requests and
// wrong-role requests bounce to the same place so the response never reveals
// which role a page requires.
const PublicRoot = "/"

// GuardState classifies the outcome of an access check.
type GuardState int

const (
	StateUnauthenticated GuardState = iota // no token, or decode failed
	StateWrongRole                         // valid token, role does not match
	StateAuthorized
)

// Decision is the result of checking a presented token against a required
// role. Claims is set for WrongRole and Authorized.
type Decision struct {
	State  GuardState
	Claims *Claims
}

// Guard gates access to protected resources by role claim.
type Guard struct {
	issuer *TokenIssuer
}

// NewGuard creates a Guard validating tokens with the given issuer.
func NewGuard(issuer *TokenIssuer) *Guard {
	return &Guard{issuer: issuer}
}

// Check resolves a presented token against the required role. Pass
// models.RoleAny to accept any authenticated role.
func (g *Guard) Check(token string, required models.Role) Decision {
	if token == "" {
		return Decision{State: StateUnauthenticated}
	}
	claims, err := g.issuer.Decode(token)
	if err != nil {
		return Decision{State: StateUnauthenticated}
	}
	if required != models.RoleAny && claims.Role != required {
		return Decision{State: StateWrongRole, Claims: claims}
	}
	return Decision{State: StateAuthorized, Claims: claims}
}

// claimsKey is the context key for authenticated session claims.
type contextKey string

const claimsKey = contextKey("sessionClaims")

// ClaimsFromContext returns the session claims a RequireRole middleware
// stored for the current request.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// TokenFromRequest extracts the session token from the Authorization header,
// falling back to the "token" cookie. Returns "" when neither is present.
func TokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, "Bearer ")
		if len(parts) == 2 {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}

// RequireRole creates a middleware protecting routes behind the given role.
// Denials answer 401 with the public root as the redirect target; on success
// the claims are passed down via the request context.
func (g *Guard) RequireRole(required models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := g.Check(TokenFromRequest(r), required)
			if decision.State != StateAuthorized {
				deny(w)
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey, decision.Claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func deny(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":       false,
		"error":    "unauthorized",
		"redirect": PublicRoot,
	})
}
