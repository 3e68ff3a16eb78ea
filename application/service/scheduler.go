package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/fieldworkhq/fieldwork/internal/config"
)

// Scheduler re-imports configured boards on a cron schedule so last-seen and
// active flags stay current without manual runs.
type Scheduler struct {
	importer *Importer
	cfg      config.SyncConfig
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewScheduler creates a Scheduler.
func NewScheduler(importer *Importer, cfg config.SyncConfig, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		importer: importer,
		cfg:      cfg,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start registers the periodic import and begins the schedule. It is a no-op
// when sync is disabled or no boards are configured.
func (s *Scheduler) Start(ctx context.Context) error {
	if !s.cfg.Enabled() {
		s.logger.Debug("periodic sync disabled")
		return nil
	}
	boards := s.cfg.Boards()
	if len(boards) == 0 {
		s.logger.Warn("periodic sync enabled but no boards configured")
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Schedule(), func() {
		s.logger.Info("periodic sync starting", "boards", len(boards))
		if _, err := s.importer.ImportBoards(ctx, boards, ImportOptions{}); err != nil {
			s.logger.Error("periodic sync failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule periodic sync %q: %w", s.cfg.Schedule(), err)
	}

	s.cron.Start()
	s.logger.Info("periodic sync scheduled", "schedule", s.cfg.Schedule(), "boards", len(boards))
	return nil
}

// Stop halts the schedule and waits for a running import to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
}
