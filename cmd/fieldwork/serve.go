package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldworkhq/fieldwork"
	"github.com/fieldworkhq/fieldwork/infrastructure/api"
	"github.com/fieldworkhq/fieldwork/internal/config"
	"github.com/fieldworkhq/fieldwork/internal/log"
)

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST                     Server host to bind to (default: 0.0.0.0)
  PORT                     Server port to listen on (default: 8080)
  DATA_DIR                 Data directory (default: ~/.fieldwork)
  DB_URL                   Database URL (default: sqlite:///{data_dir}/fieldwork.db)
  LOG_LEVEL                Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT               Log format: pretty, json (default: pretty)
  USER_AGENT               Outbound HTTP User-Agent
  FETCH_TIMEOUT_SECONDS    Board API request timeout (default: 60)
  ARCHIVE_TIMEOUT_SECONDS  Archive request timeout (default: 30)
  ARCHIVE_DELAY_SECONDS    Delay between archive fetches (default: 1.5)
  SYNC_ENABLED             Re-import boards on a schedule (default: false)
  SYNC_SCHEDULE            Cron schedule expression (default: @every 24h)
  SYNC_BOARDS              Boards as "slug|Company|url|industry;..."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if host != "" {
		cfg = config.NewAppConfig(append(configOptions(cfg), config.WithHost(host))...)
	}
	if port != 0 {
		cfg = config.NewAppConfig(append(configOptions(cfg), config.WithPort(port))...)
	}

	logger := log.NewLogger(cfg)
	logger.SetDefault()

	client, err := fieldwork.New(
		fieldwork.WithConfig(cfg),
		fieldwork.WithLogger(logger.Slog()),
	)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	server := api.NewAPIServer(client)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe(cfg.Addr())
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Slog().Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// configOptions re-expresses an AppConfig as the options that built it, so
// flag overrides can be layered on top.
func configOptions(cfg config.AppConfig) []config.AppConfigOption {
	return []config.AppConfigOption{
		config.WithHost(cfg.Host()),
		config.WithPort(cfg.Port()),
		config.WithDataDir(cfg.DataDir()),
		config.WithDBURL(cfg.DBURL()),
		config.WithLogLevel(cfg.LogLevel()),
		config.WithLogFormat(cfg.LogFormat()),
		config.WithUserAgent(cfg.UserAgent()),
		config.WithFetchTimeout(cfg.FetchTimeout()),
		config.WithArchiveTimeout(cfg.ArchiveTimeout()),
		config.WithArchiveDelay(cfg.ArchiveDelay()),
		config.WithSyncConfig(cfg.Sync()),
	}
}
