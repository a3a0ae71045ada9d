package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/echoman-project/echoman/pkg/config"
	"github.com/echoman-project/echoman/pkg/ingest"
	"github.com/echoman-project/echoman/pkg/services"
	"github.com/echoman-project/echoman/pkg/window"
	"github.com/robfig/cron/v3"
)

// Scheduler drives the batch cadence: ingestion sweeps through the day, the
// two merge stages once per window, and the metrics rollup nightly. Each
// (job, window) pair runs at most once at a time in this process.
type Scheduler struct {
	cron     *cron.Cron
	settings *config.Settings
	loc      *time.Location

	ingest  *ingest.Service
	heat    *services.HeatService
	period  *services.PeriodMergeService
	global  *services.GlobalMergeService
	metrics *services.MetricsService

	mu      sync.Mutex
	running map[string]bool
}

func New(
	settings *config.Settings,
	loc *time.Location,
	ingestSvc *ingest.Service,
	heat *services.HeatService,
	period *services.PeriodMergeService,
	global *services.GlobalMergeService,
	metrics *services.MetricsService,
) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		settings: settings,
		loc:      loc,
		ingest:   ingestSvc,
		heat:     heat,
		period:   period,
		global:   global,
		metrics:  metrics,
		running:  map[string]bool{},
	}
}

// Start registers the cron entries and launches the scheduler loop.
func (s *Scheduler) Start() error {
	entries := []struct {
		name string
		spec string
		job  func(ctx context.Context) error
	}{
		{"ingest", s.settings.IngestCron, s.runIngest},
		{"period_merge", s.settings.PeriodMergeCron, s.runPeriodMerge},
		{"global_merge", s.settings.GlobalMergeCron, s.runGlobalMerge},
		{"category_metrics", s.settings.MetricsCron, s.runMetrics},
	}
	for _, e := range entries {
		if _, err := s.cron.AddFunc(e.spec, s.wrap(e.name, e.job)); err != nil {
			return fmt.Errorf("failed to register %s job (%q): %w", e.name, e.spec, err)
		}
		slog.Info("job scheduled", "job", e.name, "cron", e.spec)
	}

	s.cron.Start()
	slog.Info("scheduler started", "timezone", s.loc.String())
	return nil
}

// Stop halts the cron loop and waits for in-flight jobs to drain.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("scheduler stopped")
}

// wrap serializes a job against itself and bounds it by the stage deadline.
func (s *Scheduler) wrap(name string, job func(ctx context.Context) error) func() {
	return func() {
		key := name + "@" + s.currentWindow().String()
		if err := s.acquire(key); err != nil {
			slog.Warn("trigger skipped", "job", name, "error", err)
			return
		}
		defer s.release(key)

		ctx, cancel := context.WithTimeout(context.Background(), s.settings.StageDeadline)
		defer cancel()

		start := time.Now()
		if err := job(ctx); err != nil {
			slog.Error("job failed", "job", name, "duration", time.Since(start), "error", err)
			return
		}
		slog.Info("job finished", "job", name, "duration", time.Since(start))
	}
}

func (s *Scheduler) acquire(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running[key] {
		return fmt.Errorf("%s: %w", key, services.ErrStageInProgress)
	}
	s.running[key] = true
	return nil
}

func (s *Scheduler) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.running, key)
}

func (s *Scheduler) currentWindow() window.Window {
	return window.ForTime(time.Now().In(s.loc))
}

func (s *Scheduler) runIngest(ctx context.Context) error {
	return s.ingest.Run(ctx)
}

// runPeriodMerge normalizes the window's heat and then runs stage 1. The
// normalizer must land first so cluster heat aggregates see final values.
func (s *Scheduler) runPeriodMerge(ctx context.Context) error {
	w := s.currentWindow()
	normalized, err := s.heat.NormalizeWindow(ctx, w)
	if err != nil {
		return fmt.Errorf("heat normalization for %s: %w", w, err)
	}
	slog.Info("window heat normalized", "window", w.String(), "items", normalized)
	return s.period.Run(ctx, w)
}

func (s *Scheduler) runGlobalMerge(ctx context.Context) error {
	return s.global.Run(ctx, s.currentWindow())
}

// runMetrics rolls up the previous calendar day.
func (s *Scheduler) runMetrics(ctx context.Context) error {
	return s.metrics.RecomputeDay(ctx, time.Now().In(s.loc).AddDate(0, 0, -1))
}
