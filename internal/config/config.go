// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 8080
	DefaultLogLevel       = "INFO"
	DefaultUserAgent      = "Fieldwork/1.0"
	DefaultFetchTimeout   = 60 * time.Second
	DefaultArchiveTimeout = 30 * time.Second
	DefaultArchiveDelay   = 1500 * time.Millisecond
	DefaultSyncSchedule   = "@every 24h"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// Board identifies one ATS board to import: slug plus company metadata.
type Board struct {
	slug     string
	company  string
	url      string
	industry string
}

// NewBoard creates a Board.
func NewBoard(slug, company, url, industry string) Board {
	return Board{slug: slug, company: company, url: url, industry: industry}
}

// Slug returns the board slug.
func (b Board) Slug() string { return b.slug }

// Company returns the company display name.
func (b Board) Company() string { return b.company }

// URL returns the company website URL.
func (b Board) URL() string { return b.url }

// Industry returns the industry label, or empty.
func (b Board) Industry() string { return b.industry }

// ParseBoards parses a board list of the form
// "slug|Company|https://url|Industry;slug2|...". Industry is optional.
// Entries missing slug or company are skipped.
func ParseBoards(s string) []Board {
	var boards []Board
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.Split(entry, "|")
		if len(fields) < 2 {
			continue
		}
		board := Board{
			slug:    strings.TrimSpace(fields[0]),
			company: strings.TrimSpace(fields[1]),
		}
		if board.slug == "" || board.company == "" {
			continue
		}
		if len(fields) > 2 {
			board.url = strings.TrimSpace(fields[2])
		}
		if len(fields) > 3 {
			board.industry = strings.TrimSpace(fields[3])
		}
		boards = append(boards, board)
	}
	return boards
}

// SyncConfig configures periodic board re-imports.
type SyncConfig struct {
	enabled  bool
	schedule string
	boards   []Board
}

// NewSyncConfig creates a SyncConfig with defaults.
func NewSyncConfig() SyncConfig {
	return SyncConfig{schedule: DefaultSyncSchedule}
}

// Enabled returns whether periodic sync is enabled.
func (s SyncConfig) Enabled() bool { return s.enabled }

// Schedule returns the cron schedule expression.
func (s SyncConfig) Schedule() string { return s.schedule }

// Boards returns the boards to re-import.
func (s SyncConfig) Boards() []Board {
	result := make([]Board, len(s.boards))
	copy(result, s.boards)
	return result
}

// WithEnabled returns a new config with the specified enabled state.
func (s SyncConfig) WithEnabled(enabled bool) SyncConfig {
	s.enabled = enabled
	return s
}

// WithSchedule returns a new config with the specified schedule.
func (s SyncConfig) WithSchedule(schedule string) SyncConfig {
	if schedule != "" {
		s.schedule = schedule
	}
	return s
}

// WithBoards returns a new config with the specified boards.
func (s SyncConfig) WithBoards(boards []Board) SyncConfig {
	copied := make([]Board, len(boards))
	copy(copied, boards)
	s.boards = copied
	return s
}

// AppConfig is the immutable application configuration.
type AppConfig struct {
	host           string
	port           int
	dataDir        string
	dbURL          string
	logLevel       string
	logFormat      LogFormat
	userAgent      string
	fetchTimeout   time.Duration
	archiveTimeout time.Duration
	archiveDelay   time.Duration
	sync           SyncConfig
}

// AppConfigOption mutates an AppConfig during construction.
type AppConfigOption func(*AppConfig)

// NewAppConfig creates an AppConfig with defaults.
func NewAppConfig(options ...AppConfigOption) AppConfig {
	cfg := AppConfig{
		host:           DefaultHost,
		port:           DefaultPort,
		logLevel:       DefaultLogLevel,
		logFormat:      LogFormatPretty,
		userAgent:      DefaultUserAgent,
		fetchTimeout:   DefaultFetchTimeout,
		archiveTimeout: DefaultArchiveTimeout,
		archiveDelay:   DefaultArchiveDelay,
		sync:           NewSyncConfig(),
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithDataDir sets the data directory.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) { c.dataDir = dir }
}

// WithDBURL sets the database URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithUserAgent sets the outbound HTTP User-Agent.
func WithUserAgent(ua string) AppConfigOption {
	return func(c *AppConfig) { c.userAgent = ua }
}

// WithFetchTimeout sets the board API request timeout.
func WithFetchTimeout(d time.Duration) AppConfigOption {
	return func(c *AppConfig) { c.fetchTimeout = d }
}

// WithArchiveTimeout sets the archive request timeout.
func WithArchiveTimeout(d time.Duration) AppConfigOption {
	return func(c *AppConfig) { c.archiveTimeout = d }
}

// WithArchiveDelay sets the polite delay between archive snapshot fetches.
func WithArchiveDelay(d time.Duration) AppConfigOption {
	return func(c *AppConfig) { c.archiveDelay = d }
}

// WithSyncConfig sets the periodic sync configuration.
func WithSyncConfig(sync SyncConfig) AppConfigOption {
	return func(c *AppConfig) { c.sync = sync }
}

// Host returns the server host.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port.
func (c AppConfig) Port() int { return c.port }

// Addr returns the host:port bind address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// DataDir returns the data directory, defaulting to ~/.fieldwork.
func (c AppConfig) DataDir() string {
	if c.dataDir != "" {
		return c.dataDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fieldwork"
	}
	return filepath.Join(home, ".fieldwork")
}

// DBURL returns the database URL, defaulting to SQLite under the data dir.
func (c AppConfig) DBURL() string {
	if c.dbURL != "" {
		return c.dbURL
	}
	return fmt.Sprintf("sqlite:///%s", filepath.Join(c.DataDir(), "fieldwork.db"))
}

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// UserAgent returns the outbound HTTP User-Agent.
func (c AppConfig) UserAgent() string { return c.userAgent }

// FetchTimeout returns the board API request timeout.
func (c AppConfig) FetchTimeout() time.Duration { return c.fetchTimeout }

// ArchiveTimeout returns the archive request timeout.
func (c AppConfig) ArchiveTimeout() time.Duration { return c.archiveTimeout }

// ArchiveDelay returns the delay between archive snapshot fetches.
func (c AppConfig) ArchiveDelay() time.Duration { return c.archiveDelay }

// Sync returns the periodic sync configuration.
func (c AppConfig) Sync() SyncConfig { return c.sync }

// EnsureDataDir creates the data directory if it does not exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir(), 0o755)
}
