package monitoring

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/careerdock/careerdock-be/internal/services"
)

// Sweeper periodically prunes old entries from the auth event trail. The
// firing schedule is a standard cron expression from configuration.
type Sweeper struct {
	audit     services.AuditServiceProvider
	schedule  cron.Schedule
	retention time.Duration
	done      chan bool
}

// NewSweeper creates a sweeper firing per scheduleExpr that removes events
// older than retention.
func NewSweeper(audit services.AuditServiceProvider, scheduleExpr string, retention time.Duration) (*Sweeper, error) {
	schedule, err := cron.ParseStandard(scheduleExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", scheduleExpr, err)
	}
	return &Sweeper{
		audit:     audit,
		schedule:  schedule,
		retention: retention,
		done:      make(chan bool),
	}, nil
}

// Run starts the sweep loop. Blocks until Stop is called.
func (s *Sweeper) Run() {
	log.Info().Dur("retention", s.retention).Msg("starting audit retention sweeper")
	for {
		next := s.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-s.done:
			timer.Stop()
			log.Info().Msg("stopping audit retention sweeper")
			return
		case <-timer.C:
			removed := s.audit.PruneBefore(time.Now().Add(-s.retention))
			if removed > 0 {
				log.Info().Int("removed", removed).Msg("pruned expired audit events")
			}
		}
	}
}

// Stop halts the sweep loop.
func (s *Sweeper) Stop() {
	s.done <- true
}
