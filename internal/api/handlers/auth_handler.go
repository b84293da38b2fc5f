package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/careerdock/careerdock-be/internal/auth"
	"github.com/careerdock/careerdock-be/internal/services"
)

// AuthHandler handles HTTP requests for login and registration.
type AuthHandler struct {
	service      services.AuthServiceProvider
	cookieTTL    time.Duration
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler. cookieTTL should match the
// session lifetime; secureCookie is enabled in production.
func NewAuthHandler(service services.AuthServiceProvider, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{service: service, cookieTTL: cookieTTL, secureCookie: secureCookie}
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
}

// Register handles new user registration. A successful registration behaves
// as an implicit login: the response carries a session token and the cookie
// is set.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"ok": false, "error": "missing_fields"})
		return
	}

	result, err := h.service.Register(services.RegisterRequest{
		Email:           payload.Email,
		Password:        payload.Password,
		ConfirmPassword: payload.ConfirmPassword,
		Role:            payload.Role,
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
	})
	if err != nil {
		log.Warn().Err(err).Msg("registration rejected")
		writeAuthError(w, err)
		return
	}

	h.setSessionCookie(w, result.Token)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"ok":    true,
		"token": result.Token,
		"user":  result.User,
	})
}

// Login handles user authentication and session issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"ok": false, "error": "invalid_credentials"})
		return
	}

	result, err := h.service.Login(payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Msg("failed authentication attempt")
		writeAuthError(w, err)
		return
	}

	h.setSessionCookie(w, result.Token)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"token": result.Token,
		"user":  result.User,
	})
}

// GetMe retrieves the currently authenticated user from the token.
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("could not retrieve session claims from context")
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"ok": false, "error": "internal_error"})
		return
	}

	user, err := h.service.Profile(claims.Subject)
	if err != nil {
		log.Warn().Err(err).Str("user_id", claims.Subject).Msg("user from token not found in store")
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"ok": false, "error": "not_found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "user": user})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(h.cookieTTL),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}
