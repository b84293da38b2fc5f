package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/careerdock/careerdock-be/internal/models"
)

func testGuard(t *testing.T) (*Guard, *TokenIssuer) {
	t.Helper()
	issuer := NewTokenIssuer([]byte("guard-secret"), time.Hour)
	return NewGuard(issuer), issuer
}

func TestGuard_Check(t *testing.T) {
	t.Parallel()

	guard, issuer := testGuard(t)

	seeker, err := issuer.Issue(models.User{ID: "js1", Role: models.RoleJobSeeker, DisplayName: "Alice"})
	require.NoError(t, err)
	employer, err := issuer.Issue(models.User{ID: "emp1", Role: models.RoleEmployer, DisplayName: "Acme"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		required models.Role
		want     GuardState
	}{
		{"no token", "", models.RoleJobSeeker, StateUnauthenticated},
		{"garbage token", "garbage", models.RoleJobSeeker, StateUnauthenticated},
		{"seeker on employer page", seeker, models.RoleEmployer, StateWrongRole},
		{"employer on seeker page", employer, models.RoleJobSeeker, StateWrongRole},
		{"seeker on seeker page", seeker, models.RoleJobSeeker, StateAuthorized},
		{"employer on employer page", employer, models.RoleEmployer, StateAuthorized},
		{"any role accepts seeker", seeker, models.RoleAny, StateAuthorized},
		{"any role accepts employer", employer, models.RoleAny, StateAuthorized},
		{"any role still needs a token", "", models.RoleAny, StateUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := guard.Check(tt.token, tt.required)
			require.Equal(t, tt.want, decision.State)
			if tt.want == StateAuthorized {
				require.NotNil(t, decision.Claims)
			}
		})
	}
}

func TestGuard_CheckExpiredToken(t *testing.T) {
	t.Parallel()

	expiredIssuer := NewTokenIssuer([]byte("guard-secret"), -time.Minute)
	token, err := expiredIssuer.Issue(models.User{ID: "js1", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	guard := NewGuard(NewTokenIssuer([]byte("guard-secret"), time.Hour))
	decision := guard.Check(token, models.RoleJobSeeker)
	require.Equal(t, StateUnauthenticated, decision.State)
}

func TestRequireRole_Middleware(t *testing.T) {
	t.Parallel()

	guard, issuer := testGuard(t)
	token, err := issuer.Issue(models.User{ID: "js1", Role: models.RoleJobSeeker, DisplayName: "Alice"})
	require.NoError(t, err)

	var gotClaims *Claims
	handler := guard.RequireRole(models.RoleJobSeeker)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotClaims)
		require.Equal(t, "js1", gotClaims.Subject)
	})

	t.Run("cookie fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token denied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), `"redirect":"/"`)
	})

	t.Run("wrong role denied same as unauthenticated", func(t *testing.T) {
		employerToken, err := issuer.Issue(models.User{ID: "emp1", Role: models.RoleEmployer})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+employerToken)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), `"redirect":"/"`)
	})
}
