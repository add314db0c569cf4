// Package scheduler triggers the batch runner at fixed wall-clock times.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs one batch pass at each registered daily time. Passes are
// serialized: a trigger that fires while a pass is still running waits for
// it to finish and then runs, so two passes never overlap.
type Scheduler struct {
	Cron *cron.Cron
	job  cron.Job
}

// NewScheduler creates a Scheduler around the given batch pass.
func NewScheduler(ctx context.Context, run func(ctx context.Context)) *Scheduler {
	job := cron.NewChain(cron.DelayIfStillRunning(cron.DefaultLogger)).
		Then(cron.FuncJob(func() { run(ctx) }))
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		job:  job,
	}
}

// Register adds one daily trigger per "HH:MM" entry.
func (s *Scheduler) Register(times []string) error {
	for _, t := range times {
		spec, err := cronSpec(t)
		if err != nil {
			return err
		}
		if _, err := s.Cron.AddJob(spec, s.job); err != nil {
			return fmt.Errorf("register trigger %q: %w", t, err)
		}
		log.Printf("[INFO] daily trigger registered at %s", t)
	}
	return nil
}

// cronSpec converts a wall-clock "HH:MM" time into a seconds-aware cron spec.
func cronSpec(hhmm string) (string, error) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return "", fmt.Errorf("invalid trigger time %q: %w", hhmm, err)
	}
	return fmt.Sprintf("0 %d %d * * *", parsed.Minute(), parsed.Hour()), nil
}

// RunNow executes one batch pass immediately, sharing the non-overlap
// guard with the scheduled triggers.
func (s *Scheduler) RunNow() {
	s.job.Run()
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}
