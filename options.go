package fieldwork

import (
	"fmt"
	"log/slog"

	"github.com/fieldworkhq/fieldwork/application/service"
	"github.com/fieldworkhq/fieldwork/internal/config"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	appConfig config.AppConfig
	dbURL     string
	logger    *slog.Logger
	fetcher   service.Fetcher
	archive   service.SnapshotSource
	live      service.LiveCounter
}

func newClientConfig() *clientConfig {
	return &clientConfig{appConfig: config.NewAppConfig()}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database at the given file path.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbURL = fmt.Sprintf("sqlite:///%s", path)
	}
}

// WithDatabaseURL configures the database from a connection URL
// (sqlite:///path or postgres://...).
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithConfig sets the full application configuration. The configured database
// URL is used unless overridden by WithSQLite or WithDatabaseURL.
func WithConfig(cfg config.AppConfig) Option {
	return func(c *clientConfig) {
		c.appConfig = cfg
		if c.dbURL == "" {
			c.dbURL = cfg.DBURL()
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithFetcher overrides the board feed fetcher, mainly for tests.
func WithFetcher(f service.Fetcher) Option {
	return func(c *clientConfig) {
		c.fetcher = f
	}
}

// WithSnapshotSource overrides the archive snapshot source, mainly for tests.
func WithSnapshotSource(s service.SnapshotSource) Option {
	return func(c *clientConfig) {
		c.archive = s
	}
}

// WithLiveCounter overrides the live board counter, mainly for tests.
func WithLiveCounter(l service.LiveCounter) Option {
	return func(c *clientConfig) {
		c.live = l
	}
}
