package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.fieldwork
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/fieldwork.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// UserAgent is the outbound HTTP User-Agent header.
	// Env: USER_AGENT (default: Fieldwork/1.0)
	UserAgent string `envconfig:"USER_AGENT" default:"Fieldwork/1.0"`

	// FetchTimeoutSeconds is the board API request timeout.
	// Env: FETCH_TIMEOUT_SECONDS (default: 60)
	FetchTimeoutSeconds float64 `envconfig:"FETCH_TIMEOUT_SECONDS" default:"60"`

	// ArchiveTimeoutSeconds is the archive request timeout.
	// Env: ARCHIVE_TIMEOUT_SECONDS (default: 30)
	ArchiveTimeoutSeconds float64 `envconfig:"ARCHIVE_TIMEOUT_SECONDS" default:"30"`

	// ArchiveDelaySeconds is the polite delay between archive snapshot
	// fetches.
	// Env: ARCHIVE_DELAY_SECONDS (default: 1.5)
	ArchiveDelaySeconds float64 `envconfig:"ARCHIVE_DELAY_SECONDS" default:"1.5"`

	// Sync configures periodic board re-imports.
	Sync SyncEnv `envconfig:"SYNC"`
}

// SyncEnv holds environment configuration for periodic sync.
type SyncEnv struct {
	// Enabled controls whether periodic sync is enabled.
	// Env: SYNC_ENABLED (default: false)
	Enabled bool `envconfig:"ENABLED" default:"false"`

	// Schedule is the cron schedule expression.
	// Env: SYNC_SCHEDULE (default: @every 24h)
	Schedule string `envconfig:"SCHEDULE" default:"@every 24h"`

	// Boards lists the boards to re-import, formatted
	// "slug|Company|url|industry;slug2|...".
	// Env: SYNC_BOARDS
	Boards string `envconfig:"BOARDS"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	opts := []AppConfigOption{
		WithUserAgent(e.UserAgent),
		WithFetchTimeout(time.Duration(e.FetchTimeoutSeconds * float64(time.Second))),
		WithArchiveTimeout(time.Duration(e.ArchiveTimeoutSeconds * float64(time.Second))),
		WithArchiveDelay(time.Duration(e.ArchiveDelaySeconds * float64(time.Second))),
		WithSyncConfig(NewSyncConfig().
			WithEnabled(e.Sync.Enabled).
			WithSchedule(e.Sync.Schedule).
			WithBoards(ParseBoards(e.Sync.Boards))),
	}

	if e.Host != "" {
		opts = append(opts, WithHost(e.Host))
	}
	if e.Port != 0 {
		opts = append(opts, WithPort(e.Port))
	}
	if e.DataDir != "" {
		opts = append(opts, WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		opts = append(opts, WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		opts = append(opts, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		opts = append(opts, WithLogFormat(parseLogFormat(e.LogFormat)))
	}

	return NewAppConfig(opts...)
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
