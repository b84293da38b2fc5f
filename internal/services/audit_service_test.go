package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAuditService_RecordAndRecent(t *testing.T) {
	t.Parallel()

	s := NewAuditService(100)
	s.Record("auth.login", "info", "first", "u1")
	s.Record("auth.login.failed", "warn", "second", "")
	s.Record("auth.register", "info", "third", "u2")

	events := s.Recent(2)
	require.Len(t, events, 2)
	// Newest first.
	require.Equal(t, "third", events[0].Message)
	require.Equal(t, "second", events[1].Message)

	all := s.Recent(0)
	require.Len(t, all, 3)
}

func TestAuditService_CapEvictsOldest(t *testing.T) {
	t.Parallel()

	s := NewAuditService(5)
	for i := 0; i < 8; i++ {
		s.Record("auth.login", "info", fmt.Sprintf("event-%d", i), "")
	}

	events := s.Recent(0)
	require.Len(t, events, 5)
	require.Equal(t, "event-7", events[0].Message)
	require.Equal(t, "event-3", events[4].Message)
}

func TestAuditService_PruneBefore(t *testing.T) {
	t.Parallel()

	s := NewAuditService(100)
	s.Record("auth.login", "info", "old", "")
	s.Record("auth.login", "info", "older", "")

	removed := s.PruneBefore(time.Now().UTC().Add(time.Second))
	require.Equal(t, 2, removed)
	require.Empty(t, s.Recent(0))

	s.Record("auth.login", "info", "fresh", "")
	removed = s.PruneBefore(time.Now().UTC().Add(-time.Hour))
	require.Equal(t, 0, removed)
	require.Len(t, s.Recent(0), 1)
}
