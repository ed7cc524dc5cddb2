// Package retention prunes stored runs on a cron schedule.
package retention

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/me/jobseq/internal/config"
	"github.com/robfig/cron/v3"
)

// RunDeleter is the slice of the store the pruner needs.
type RunDeleter interface {
	DeleteRunsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Pruner deletes runs older than a maximum age.
// A tick that fires while the previous one is still running is skipped.
type Pruner struct {
	store    RunDeleter
	maxAge   time.Duration
	schedule cron.Schedule
	expr     string
	logger   *slog.Logger
	now      func() time.Time

	tick   sync.Mutex
	mu     sync.Mutex
	cron   *cron.Cron
	cancel context.CancelFunc
}

// New creates a pruner. A MaxAge of zero disables pruning, in which case the
// schedule is not parsed.
func New(st RunDeleter, cfg config.RetentionConfig, logger *slog.Logger) (*Pruner, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pruner{
		store:  st,
		maxAge: cfg.MaxAge,
		expr:   cfg.Schedule,
		logger: logger.With("component", "retention"),
		now:    time.Now,
	}
	if cfg.MaxAge > 0 {
		sched, err := parser.Parse(cfg.Schedule)
		if err != nil {
			return nil, fmt.Errorf("retention: invalid schedule %q: %w", cfg.Schedule, err)
		}
		p.schedule = sched
	}
	return p, nil
}

// Enabled reports whether the pruner deletes anything.
func (p *Pruner) Enabled() bool {
	return p.maxAge > 0
}

// RunOnce deletes runs created before now minus MaxAge and returns how many were removed.
func (p *Pruner) RunOnce(ctx context.Context) (int64, error) {
	if !p.Enabled() {
		return 0, nil
	}
	cutoff := p.now().Add(-p.maxAge)
	n, err := p.store.DeleteRunsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("retention: prune runs: %w", err)
	}
	if n > 0 {
		p.logger.Info("pruned runs", "deleted", n, "cutoff", cutoff.UTC().Format(time.RFC3339))
	}
	return n, nil
}

// Start begins pruning on the configured schedule. It is a no-op when disabled.
func (p *Pruner) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.Enabled() {
		p.logger.Info("retention disabled")
		return nil
	}
	if p.cron != nil {
		return fmt.Errorf("retention: already started")
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.cron = cron.New(cron.WithParser(parser))
	p.cron.Schedule(p.schedule, cron.FuncJob(func() { p.runTick(ctx) }))
	p.cron.Start()

	p.logger.Info("retention started", "schedule", p.expr, "max_age", p.maxAge)
	return nil
}

func (p *Pruner) runTick(ctx context.Context) {
	if !p.tick.TryLock() {
		p.logger.Warn("retention: previous prune still running, skipping tick")
		return
	}
	defer p.tick.Unlock()

	if _, err := p.RunOnce(ctx); err != nil {
		p.logger.Error("retention: prune failed", "error", err)
	}
}

// Stop halts the schedule and waits for an in-flight prune, or for ctx to end.
func (p *Pruner) Stop(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cron == nil {
		return nil
	}
	p.cancel()
	done := p.cron.Stop().Done()
	p.cron = nil

	select {
	case <-done:
		p.logger.Info("retention stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
