package scheduler

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// Cycle is one full ingestion pass. Errors mark the cycle as failed; the
// loop itself keeps running regardless.
type Cycle func(ctx context.Context) error

// Scheduler runs a cycle immediately on start and then on a fixed interval
// forever. The interval is measured from cycle completion, so a slow cycle
// delays the next one rather than overlapping it.
type Scheduler struct {
	cycle    Cycle
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewScheduler(cycle Cycle, interval time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cycle:    cycle,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		for {
			s.runCycle()

			timer := time.NewTimer(s.interval)
			select {
			case <-s.ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// Stop cancels the loop. A pending inter-cycle wait aborts immediately; an
// in-flight cycle unwinds through its context and is waited for.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) runCycle() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Cycle panicked", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	start := time.Now()
	slog.Info("Cycle started")

	if err := s.cycle(s.ctx); err != nil {
		slog.Error("Cycle failed", "duration", time.Since(start), "error", err)
		return
	}

	slog.Info("Cycle completed", "duration", time.Since(start))
}
