// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic database maintenance jobs.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/portfolio-go/internal/store"
)

// EventRetention is how long event log entries are kept.
const EventRetention = 30 * 24 * time.Hour

// Scheduler handles periodic maintenance: WAL checkpoints, query planner
// statistics, and event log pruning.
type Scheduler struct {
	db     *sql.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a new scheduler instance.
func New(db *sql.DB, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:     db,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start registers the maintenance jobs and begins the cron loop.
func (s *Scheduler) Start() error {
	// Checkpoint the WAL hourly so the main database file stays current.
	if _, err := s.cron.AddFunc("0 * * * *", func() {
		if err := s.checkpoint(); err != nil {
			s.logger.Error("wal checkpoint failed", "error", err)
		}
	}); err != nil {
		return err
	}

	// Nightly: refresh planner statistics and prune old events.
	if _, err := s.cron.AddFunc("30 3 * * *", func() {
		if err := s.optimize(); err != nil {
			s.logger.Error("database optimize failed", "error", err)
		}
		if err := s.pruneEvents(); err != nil {
			s.logger.Error("event pruning failed", "error", err)
		}
	}); err != nil {
		return err
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

// checkpoint flushes the write-ahead log into the main database file.
func (s *Scheduler) checkpoint() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `PRAGMA wal_checkpoint(TRUNCATE)`)
	return err
}

// optimize refreshes SQLite's query planner statistics.
func (s *Scheduler) optimize() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `PRAGMA optimize`)
	return err
}

// pruneEvents deletes event log entries older than the retention window.
func (s *Scheduler) pruneEvents() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().UTC().Add(-EventRetention)
	pruned, err := store.New(s.db).PruneEvents(ctx, cutoff)
	if err != nil {
		return err
	}
	if pruned > 0 {
		s.logger.Info("pruned old events", "count", pruned, "cutoff", cutoff)
	}
	return nil
}
