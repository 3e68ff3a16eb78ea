// Package wayback fetches archived board pages from the Internet Archive.
package wayback

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fieldworkhq/fieldwork/domain/history"
)

// Archive endpoints.
const (
	DefaultCDXURL = "https://web.archive.org/cdx/search/cdx"
	DefaultRawURL = "https://web.archive.org/web"
)

// cdxLimit caps how many index rows one query returns.
const cdxLimit = 5000

// boardURLTemplates are the board page URL shapes that have hosted Greenhouse
// boards over time. Older snapshots live under the first, newer ones under
// the second.
var boardURLTemplates = []string{
	"boards.greenhouse.io/%s",
	"job-boards.greenhouse.io/%s",
}

// Client queries the archive CDX index and fetches archived page bodies.
type Client struct {
	httpClient *http.Client
	cdxURL     string
	rawURL     string
	userAgent  string
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithCDXURL overrides the CDX index endpoint, mainly for tests.
func WithCDXURL(cdxURL string) ClientOption {
	return func(c *Client) { c.cdxURL = cdxURL }
}

// WithRawURL overrides the raw snapshot endpoint, mainly for tests.
func WithRawURL(rawURL string) ClientOption {
	return func(c *Client) { c.rawURL = rawURL }
}

// WithUserAgent sets the outbound User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates an archive client.
func NewClient(timeout time.Duration, options ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		cdxURL:     DefaultCDXURL,
		rawURL:     DefaultRawURL,
		logger:     slog.Default(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// ListSnapshots queries the CDX index for every board URL shape and returns
// the usable snapshots (HTTP 200 captures with a parseable timestamp) from
// all of them combined.
func (c *Client) ListSnapshots(ctx context.Context, board string) ([]history.Snapshot, error) {
	var all []history.Snapshot
	for _, template := range boardURLTemplates {
		snapshots, err := c.listForTemplate(ctx, template, board)
		if err != nil {
			return nil, fmt.Errorf("list snapshots for %q: %w", fmt.Sprintf(template, board), err)
		}
		all = append(all, snapshots...)
	}
	return all, nil
}

// FetchSnapshot downloads the raw archived body for one snapshot. The id_
// flag asks the archive for the original capture without its replay banner.
func (c *Client) FetchSnapshot(ctx context.Context, board string, snap history.Snapshot) (string, error) {
	target := fmt.Sprintf(snap.URLTemplate(), board)
	endpoint := fmt.Sprintf("%s/%sid_/https://%s", c.rawURL, snap.Timestamp(), target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create snapshot request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch snapshot %s of %q: %w", snap.Timestamp(), board, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch snapshot %s of %q: unexpected status %d", snap.Timestamp(), board, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read snapshot %s of %q: %w", snap.Timestamp(), board, err)
	}
	return string(body), nil
}

func (c *Client) listForTemplate(ctx context.Context, template, board string) ([]history.Snapshot, error) {
	target := fmt.Sprintf(template, board)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cdxURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create index request: %w", err)
	}
	q := url.Values{}
	q.Set("url", target)
	q.Set("output", "text")
	q.Set("fl", "timestamp,statuscode,length")
	q.Set("filter", "statuscode:200")
	q.Set("matchType", "exact")
	q.Set("limit", strconv.Itoa(cdxLimit))
	req.URL.RawQuery = q.Encode()
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("query index: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read index response: %w", err)
	}

	var snapshots []history.Snapshot
	for _, line := range strings.Split(string(body), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		if fields[1] != "200" {
			continue
		}
		length, err := strconv.Atoi(fields[2])
		if err != nil {
			length = 0
		}
		if snap, ok := history.NewSnapshot(fields[0], length, template); ok {
			snapshots = append(snapshots, snap)
		}
	}

	c.logger.Debug("queried archive index", "url", target, "snapshots", len(snapshots))
	return snapshots, nil
}
