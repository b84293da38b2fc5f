package models

import "time"

// AuthEvent represents a loggable authentication action in the system.
type AuthEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`  // e.g., "auth.login", "auth.register"
	Level     string    `json:"level"` // e.g., "info", "warn"
	Message   string    `json:"message"`
	Subject   string    `json:"subject,omitempty"` // User ID when known, empty for anonymous failures
	CreatedAt time.Time `json:"createdAt"`
}
