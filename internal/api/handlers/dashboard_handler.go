package handlers

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/careerdock/careerdock-be/internal/auth"
)

// DashboardHandler serves the role-gated dashboard data. The visual layout
// lives in the frontend; the backend only supplies the identity needed for a
// personalized greeting.
type DashboardHandler struct{}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// JobSeeker serves the job-seeker dashboard payload. The route is guarded,
// so claims are always present and carry the job_seeker role.
func (h *DashboardHandler) JobSeeker(w http.ResponseWriter, r *http.Request) {
	h.greet(w, r)
}

// Employer serves the employer dashboard payload.
func (h *DashboardHandler) Employer(w http.ResponseWriter, r *http.Request) {
	h.greet(w, r)
}

func (h *DashboardHandler) greet(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("could not retrieve session claims from context")
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"ok": false, "error": "internal_error"})
		return
	}

	name := claims.DisplayName
	if name == "" {
		name = "there"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":          true,
		"subjectId":   claims.Subject,
		"role":        claims.Role,
		"displayName": claims.DisplayName,
		"greeting":    fmt.Sprintf("Welcome back, %s!", name),
	})
}
