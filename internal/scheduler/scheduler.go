// Package scheduler runs report generation on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"ncaab_report/internal/report"
)

// Scheduler triggers daily report runs. Overlapping runs are skipped, not
// queued; a run that outlasts the schedule interval wins.
type Scheduler struct {
	generator *report.Generator
	spec      string
	cron      *cron.Cron
	running   atomic.Bool
}

// NewScheduler creates a new scheduler instance
func NewScheduler(generator *report.Generator, spec string) *Scheduler {
	return &Scheduler{
		generator: generator,
		spec:      spec,
		cron:      cron.New(),
	}
}

// Start starts the scheduler
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() {
		s.RunOnce(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule report run: %w", err)
	}

	s.cron.Start()
	log.Info().
		Str("schedule", s.spec).
		Msg("Report generation scheduled")
	return nil
}

// RunOnce runs one report generation, skipping if a run is in flight.
func (s *Scheduler) RunOnce(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		log.Warn().Msg("Previous report run still in progress, skipping")
		return
	}
	defer s.running.Store(false)

	log.Info().Msg("Running scheduled report generation...")
	if _, err := s.generator.Generate(ctx); err != nil {
		log.Error().Err(err).Msg("Scheduled report run failed")
	}
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	log.Info().Msg("Scheduler stopped")
}
