package greenhouse

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchBoardSinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/boards/acme/jobs", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("content"))
		assert.Equal(t, "Fieldwork/1.0", r.Header.Get("User-Agent"))

		fmt.Fprint(w, `{
			"jobs": [
				{
					"id": 4012345,
					"title": "Senior Backend Engineer",
					"updated_at": "2025-03-14T09:30:00-04:00",
					"absolute_url": "https://example.com/jobs/4012345",
					"content": "&lt;p&gt;Build services in Go.&lt;/p&gt;",
					"location": {"name": "Remote - US"},
					"departments": [{"name": "Engineering"}]
				}
			],
			"meta": {"total": 1}
		}`)
	}))
	defer server.Close()

	client := NewClient(5*time.Second, WithBaseURL(server.URL), WithUserAgent("Fieldwork/1.0"))
	postings, err := client.FetchBoard(context.Background(), "acme")
	require.NoError(t, err)
	require.Len(t, postings, 1)

	p := postings[0]
	assert.Equal(t, "4012345", p.SourceID())
	assert.Equal(t, "Senior Backend Engineer", p.Title())
	assert.Equal(t, "Engineering", p.Department())
	assert.Equal(t, "Remote - US", p.Location())
	assert.Equal(t, "https://example.com/jobs/4012345", p.URL())
	// API content arrives HTML-escaped; the client unescapes it.
	assert.Equal(t, "<p>Build services in Go.</p>", p.Content())
}

func TestFetchBoardPagesUntilTotal(t *testing.T) {
	var pagesServed []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pagesServed = append(pagesServed, page)
		switch page {
		case "1":
			fmt.Fprint(w, `{"jobs": [{"id": 1, "title": "A"}, {"id": 2, "title": "B"}], "meta": {"total": 3}}`)
		default:
			fmt.Fprint(w, `{"jobs": [{"id": 3, "title": "C"}], "meta": {"total": 3}}`)
		}
	}))
	defer server.Close()

	client := NewClient(5*time.Second, WithBaseURL(server.URL))
	postings, err := client.FetchBoard(context.Background(), "acme")
	require.NoError(t, err)
	assert.Len(t, postings, 3)
	assert.Equal(t, []string{"1", "2"}, pagesServed)
}

func TestFetchBoardStopsOnEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, `{"jobs": [{"id": 1, "title": "A"}], "meta": {"total": 0}}`)
			return
		}
		fmt.Fprint(w, `{"jobs": [], "meta": {"total": 0}}`)
	}))
	defer server.Close()

	client := NewClient(5*time.Second, WithBaseURL(server.URL))
	postings, err := client.FetchBoard(context.Background(), "acme")
	require.NoError(t, err)
	assert.Len(t, postings, 1)
}

func TestFetchBoardErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(5*time.Second, WithBaseURL(server.URL))
	_, err := client.FetchBoard(context.Background(), "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchBoardMissingDepartment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"jobs": [{"id": 1, "title": "A", "departments": []}], "meta": {"total": 1}}`)
	}))
	defer server.Close()

	client := NewClient(5*time.Second, WithBaseURL(server.URL))
	postings, err := client.FetchBoard(context.Background(), "acme")
	require.NoError(t, err)
	require.Len(t, postings, 1)
	assert.Empty(t, postings[0].Department())
}

func TestCountLive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"jobs": [{"id": 1, "title": "A"}], "meta": {"total": 42}}`)
	}))
	defer server.Close()

	client := NewClient(5*time.Second, WithBaseURL(server.URL))
	count, err := client.CountLive(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestCountLiveFallsBackToJobCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"jobs": [{"id": 1, "title": "A"}, {"id": 2, "title": "B"}], "meta": {"total": 0}}`)
	}))
	defer server.Close()

	client := NewClient(5*time.Second, WithBaseURL(server.URL))
	count, err := client.CountLive(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
