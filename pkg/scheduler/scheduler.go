package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/umputun/podscope/pkg/processor"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner

// Runner executes one processing cycle
type Runner interface {
	Run(ctx context.Context) (*processor.RunStats, error)
}

// Scheduler drives periodic processing runs. One run executes immediately
// on start, then on every interval tick. A failed or budget-denied run is
// logged and waits for the next tick, it never stops the loop.
type Scheduler struct {
	runner   Runner
	interval time.Duration
}

// New creates a scheduler running the processor on the given interval
func New(runner Runner, interval time.Duration) *Scheduler {
	return &Scheduler{runner: runner, interval: interval}
}

// Run blocks until the context is canceled, executing processing cycles
func (s *Scheduler) Run(ctx context.Context) error {
	log.Printf("[INFO] scheduler started, interval %s", s.interval)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[INFO] scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := s.runner.Run(ctx); err != nil {
		log.Printf("[WARN] processing run skipped: %v", err)
	}
}
