package handlers

import (
	"net/http"
	"strconv"

	"github.com/careerdock/careerdock-be/internal/services"
)

// EventHandler handles HTTP requests for the auth event trail.
type EventHandler struct {
	service services.AuditServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.AuditServiceProvider) *EventHandler {
	return &EventHandler{service: service}
}

// Recent returns the most recent auth events, newest first. Accepts an
// optional ?limit= query parameter, default 50.
func (h *EventHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"events": h.service.Recent(limit),
	})
}
