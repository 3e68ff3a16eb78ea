// Package greenhouse fetches job postings from the Greenhouse public boards
// API.
package greenhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fieldworkhq/fieldwork/domain/posting"
)

// DefaultBaseURL is the public boards API root.
const DefaultBaseURL = "https://boards-api.greenhouse.io/v1"

// pageSize is the maximum page size the boards API accepts.
const pageSize = 500

// Client fetches postings for one or more boards.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithUserAgent sets the outbound User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a boards API client.
func NewClient(timeout time.Duration, options ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    DefaultBaseURL,
		logger:     slog.Default(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

type jobsResponse struct {
	Jobs []jobJSON `json:"jobs"`
	Meta metaJSON  `json:"meta"`
}

type metaJSON struct {
	Total int `json:"total"`
}

type jobJSON struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	UpdatedAt   string           `json:"updated_at"`
	AbsoluteURL string           `json:"absolute_url"`
	Content     string           `json:"content"`
	Location    locationJSON     `json:"location"`
	Departments []departmentJSON `json:"departments"`
}

type locationJSON struct {
	Name string `json:"name"`
}

type departmentJSON struct {
	Name string `json:"name"`
}

// FetchBoard downloads every posting for a board, paging until the reported
// total is reached. The API ships posting content HTML-escaped; it is
// unescaped here so downstream stages see real markup.
func (c *Client) FetchBoard(ctx context.Context, board string) ([]posting.RawPosting, error) {
	var all []posting.RawPosting

	for page := 1; ; page++ {
		resp, err := c.fetchPage(ctx, board, page)
		if err != nil {
			return nil, err
		}
		if len(resp.Jobs) == 0 {
			break
		}

		for _, j := range resp.Jobs {
			department := ""
			if len(j.Departments) > 0 {
				department = j.Departments[0].Name
			}
			all = append(all, posting.NewRawPosting(
				strconv.FormatInt(j.ID, 10),
				j.Title,
				department,
				j.Location.Name,
				j.UpdatedAt,
				j.AbsoluteURL,
				html.UnescapeString(j.Content),
			))
		}

		c.logger.Debug("fetched board page",
			"board", board, "page", page, "postings", len(all), "total", resp.Meta.Total)

		if resp.Meta.Total > 0 && len(all) >= resp.Meta.Total {
			break
		}
	}

	return all, nil
}

// CountLive returns the board's current open-role count as reported by the
// API.
func (c *Client) CountLive(ctx context.Context, board string) (int, error) {
	resp, err := c.fetchPage(ctx, board, 1)
	if err != nil {
		return 0, err
	}
	if resp.Meta.Total > 0 {
		return resp.Meta.Total, nil
	}
	return len(resp.Jobs), nil
}

func (c *Client) fetchPage(ctx context.Context, board string, page int) (jobsResponse, error) {
	endpoint := fmt.Sprintf("%s/boards/%s/jobs", c.baseURL, url.PathEscape(board))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return jobsResponse{}, fmt.Errorf("create board request: %w", err)
	}
	q := req.URL.Query()
	q.Set("content", "true")
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(pageSize))
	req.URL.RawQuery = q.Encode()
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return jobsResponse{}, fmt.Errorf("fetch board %q page %d: %w", board, page, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return jobsResponse{}, fmt.Errorf("fetch board %q page %d: unexpected status %d", board, page, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return jobsResponse{}, fmt.Errorf("read board %q response: %w", board, err)
	}

	var parsed jobsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return jobsResponse{}, fmt.Errorf("parse board %q response: %w", board, err)
	}
	return parsed, nil
}
