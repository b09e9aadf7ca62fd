package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// JobFunc is the unit of scheduled work. The context is cancelled when
// the scheduler stops or the per-run timeout elapses.
type JobFunc func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       JobFunc
}

// Scheduler runs background jobs on fixed intervals. Each job also
// fires once immediately on Start so a restarted server catches up
// without waiting a full interval.
type Scheduler struct {
	jobs       []job
	runTimeout time.Duration
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	mu         sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		runTimeout: 5 * time.Minute,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (s *Scheduler) AddJob(name string, interval time.Duration, fn JobFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, interval: interval, fn: fn})
	slog.Info("cron job registered", "name", name, "interval", interval)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}
	slog.Info("cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all job contexts and waits for in-flight runs.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("cron scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	s.run(j)
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.run(j)
		}
	}
}

func (s *Scheduler) run(j job) {
	ctx, cancel := context.WithTimeout(s.ctx, s.runTimeout)
	defer cancel()

	start := time.Now()
	if err := j.fn(ctx); err != nil {
		slog.Error("cron job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("cron job completed", "name", j.name, "duration", time.Since(start))
}

// RunOnce executes every registered job a single time with the given
// context, bypassing the tickers.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for _, j := range s.jobs {
		if err := j.fn(ctx); err != nil {
			slog.Error("cron job failed", "name", j.name, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
