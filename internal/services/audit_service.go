package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/careerdock/careerdock-be/internal/models"
)

// AuditServiceProvider defines the interface for the auth event trail.
type AuditServiceProvider interface {
	Record(eventType, level, message, subject string)
	Recent(limit int) []models.AuthEvent
	PruneBefore(cutoff time.Time) int
}

// AuditService keeps an in-memory trail of authentication events. Like the
// user store it is volatile; the trail is capped and periodically pruned by
// the retention sweeper.
type AuditService struct {
	mu     sync.Mutex
	events []models.AuthEvent
	max    int
}

// NewAuditService creates an AuditService holding at most max events.
func NewAuditService(max int) *AuditService {
	if max <= 0 {
		max = 1000
	}
	return &AuditService{max: max}
}

// Record appends a new event, evicting the oldest when the cap is reached.
func (s *AuditService) Record(eventType, level, message, subject string) {
	event := models.AuthEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Level:     level,
		Message:   message,
		Subject:   subject,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) > s.max {
		s.events = s.events[len(s.events)-s.max:]
	}
}

// Recent returns up to limit events, newest first.
func (s *AuditService) Recent(limit int) []models.AuthEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}
	out := make([]models.AuthEvent, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		out = append(out, s.events[i])
	}
	return out
}

// PruneBefore drops events created before cutoff and returns how many were
// removed. Events are appended in time order, so one scan finds the boundary.
func (s *AuditService) PruneBefore(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	keep := 0
	for keep < len(s.events) && s.events[keep].CreatedAt.Before(cutoff) {
		keep++
	}
	if keep == 0 {
		return 0
	}
	s.events = append([]models.AuthEvent(nil), s.events[keep:]...)
	return keep
}
