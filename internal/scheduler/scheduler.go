// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/merwah-go/internal/store"
)

// Job schedules.
const (
	DraftPruneSchedule    = "@every 10m"
	ActivityPruneSchedule = "@daily"
)

// Pruner drops entries idle for longer than maxAge and reports how many went.
type Pruner interface {
	Prune(maxAge time.Duration) int
}

// Config controls the housekeeping jobs.
type Config struct {
	// DraftTTL is how long an untouched form draft survives.
	DraftTTL time.Duration
	// ActivityRetention is how long activity entries are kept. Zero keeps them forever.
	ActivityRetention time.Duration
}

// Scheduler runs periodic housekeeping: pruning abandoned form drafts and
// old activity entries.
type Scheduler struct {
	db     *sql.DB
	cron   *cron.Cron
	logger *slog.Logger
	drafts []Pruner
	cfg    Config
	now    func() time.Time
}

// New creates a new scheduler instance. db may be nil, which disables
// activity pruning.
func New(db *sql.DB, logger *slog.Logger, cfg Config, drafts ...Pruner) *Scheduler {
	return &Scheduler{
		db:     db,
		cron:   cron.New(),
		logger: logger,
		drafts: drafts,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Start registers the jobs and starts the cron runner.
func (s *Scheduler) Start() error {
	if len(s.drafts) > 0 && s.cfg.DraftTTL > 0 {
		if _, err := s.cron.AddFunc(DraftPruneSchedule, func() { s.PruneDrafts() }); err != nil {
			return err
		}
	}

	if s.db != nil && s.cfg.ActivityRetention > 0 {
		_, err := s.cron.AddFunc(ActivityPruneSchedule, func() {
			if _, err := s.PruneActivity(context.Background()); err != nil {
				s.logger.Error("failed to prune activity", "error", err)
			}
		})
		if err != nil {
			return err
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// PruneDrafts drops abandoned drafts from every registry.
func (s *Scheduler) PruneDrafts() int {
	total := 0
	for _, p := range s.drafts {
		total += p.Prune(s.cfg.DraftTTL)
	}
	if total > 0 {
		s.logger.Info("pruned abandoned drafts", "count", total)
	}
	return total
}

// PruneActivity deletes activity entries older than the retention period.
func (s *Scheduler) PruneActivity(ctx context.Context) (int64, error) {
	if s.db == nil || s.cfg.ActivityRetention <= 0 {
		return 0, nil
	}

	cutoff := s.now().Add(-s.cfg.ActivityRetention).UTC().Truncate(time.Second)
	deleted, err := store.New(s.db).DeleteActivityBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.logger.Info("pruned activity", "count", deleted, "before", cutoff.Format(time.RFC3339))
	}
	return deleted, nil
}
