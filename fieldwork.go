// Package fieldwork provides a library for importing, enriching, and
// analyzing job postings from public ATS boards.
//
// Fieldwork fetches board feeds, runs each posting through an enrichment
// pipeline (salary extraction, function and seniority classification, AI
// detection, signal and tool tagging, location resolution), and persists the
// results idempotently. It can also rebuild a board's hiring history from
// archived page captures.
//
// Basic usage:
//
//	client, err := fieldwork.New(
//	    fieldwork.WithSQLite(".fieldwork/data.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	board := config.NewBoard("carta", "Carta", "https://carta.com", "Fintech")
//	summary, err := client.Importer.ImportBoard(ctx, board, service.ImportOptions{})
//
//	jobs, err := client.Jobs.Search(ctx, service.JobFilter{Function: "engineering"})
package fieldwork

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/fieldworkhq/fieldwork/application/service"
	"github.com/fieldworkhq/fieldwork/infrastructure/greenhouse"
	"github.com/fieldworkhq/fieldwork/infrastructure/persistence"
	"github.com/fieldworkhq/fieldwork/infrastructure/wayback"
	"github.com/fieldworkhq/fieldwork/internal/config"
	"github.com/fieldworkhq/fieldwork/internal/database"
	"github.com/fieldworkhq/fieldwork/internal/log"
)

// ErrNoDatabase indicates no database was configured.
var ErrNoDatabase = errors.New("no database configured: use WithSQLite or WithDatabaseURL")

// ErrClientClosed indicates the client has already been closed.
var ErrClientClosed = errors.New("client is closed")

// Client is the main entry point for the fieldwork library.
//
// Access operations via struct fields:
//
//	client.Importer.ImportBoard(ctx, board, opts)
//	client.Jobs.Search(ctx, filter)
//	client.History.BuildTimeline(ctx, "carta", opts)
type Client struct {
	// Public service fields (direct access)
	Importer *service.Importer
	Jobs     *service.JobsService
	History  *service.HistoryService

	db        database.Database
	scheduler *service.Scheduler
	cfg       config.AppConfig
	logger    *slog.Logger
	closed    atomic.Bool
}

// New creates a new Client with the given options. Periodic sync starts
// automatically when enabled in the configuration.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	appCfg := cfg.appConfig

	logger := cfg.logger
	if logger == nil {
		logger = log.NewLogger(appCfg).Slog()
	}

	if cfg.dbURL == "" {
		return nil, ErrNoDatabase
	}

	if err := appCfg.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, cfg.dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := persistence.AutoMigrate(ctx, db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	jobStore := persistence.NewJobStore(db)
	companyStore := persistence.NewCompanyStore(db)
	snapshotStore := persistence.NewSnapshotStore(db)

	fetcher := cfg.fetcher
	live := cfg.live
	if fetcher == nil {
		boards := greenhouse.NewClient(appCfg.FetchTimeout(),
			greenhouse.WithUserAgent(appCfg.UserAgent()),
			greenhouse.WithLogger(logger),
		)
		fetcher = boards
		if live == nil {
			live = boards
		}
	}

	archive := cfg.archive
	if archive == nil {
		archive = wayback.NewClient(appCfg.ArchiveTimeout(),
			wayback.WithUserAgent(appCfg.UserAgent()),
			wayback.WithLogger(logger),
		)
	}

	client := &Client{
		db:     db,
		cfg:    appCfg,
		logger: logger,
	}

	client.Importer = service.NewImporter(fetcher, jobStore, companyStore, logger)
	client.Jobs = service.NewJobsService(jobStore, companyStore, logger)
	client.History = service.NewHistoryService(archive, live, snapshotStore, appCfg.ArchiveDelay(), logger)

	client.scheduler = service.NewScheduler(client.Importer, appCfg.Sync(), logger)
	if err := client.scheduler.Start(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("start scheduler: %w", err)
	}

	return client, nil
}

// Close stops the scheduler and releases the database connection.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	c.scheduler.Stop()

	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	c.logger.Info("fieldwork client closed")
	return nil
}

// Config returns the client's application configuration.
func (c *Client) Config() config.AppConfig {
	return c.cfg
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}
