// Package mcp provides Model Context Protocol server functionality.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fieldworkhq/fieldwork/application/service"
	"github.com/fieldworkhq/fieldwork/domain/history"
	"github.com/fieldworkhq/fieldwork/domain/job"
)

// JobSearcher answers job queries for MCP tools.
type JobSearcher interface {
	Search(ctx context.Context, filter service.JobFilter) ([]job.Job, error)
	Count(ctx context.Context, filter service.JobFilter) (int64, error)
	CompanyStats(ctx context.Context, name string) (service.CompanyStats, error)
}

// TimelineLookup retrieves stored hiring timelines for MCP tools.
type TimelineLookup interface {
	StoredTimeline(ctx context.Context, board string, frequency history.Frequency) (history.Timeline, error)
}

// Server wraps the MCP server with job-market tools.
type Server struct {
	mcpServer *server.MCPServer
	jobs      JobSearcher
	timelines TimelineLookup
	logger    *slog.Logger
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(jobs JobSearcher, timelines TimelineLookup, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		jobs:      jobs,
		timelines: timelines,
		logger:    logger,
	}

	mcpServer := server.NewMCPServer(
		"fieldwork",
		version,
		server.WithToolCapabilities(true),
	)
	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	searchTool := mcp.NewTool("search_jobs",
		mcp.WithDescription("Search imported job postings by company, function, seniority, and location"),
		mcp.WithString("company",
			mcp.Description("Filter by company name"),
		),
		mcp.WithString("function",
			mcp.Description("Filter by job function (sales, engineering, data, product, marketing, finance, people, legal, operations, other)"),
		),
		mcp.WithString("seniority",
			mcp.Description("Filter by seniority tier (c_level, vp, director, manager, senior, mid, entry, ...)"),
		),
		mcp.WithString("state",
			mcp.Description("Filter by two-letter US state code"),
		),
		mcp.WithBoolean("remote",
			mcp.Description("Filter by remote postings"),
		),
		mcp.WithBoolean("ai",
			mcp.Description("Filter by postings mentioning AI/ML"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results to return (default: 20)"),
		),
	)
	mcpServer.AddTool(searchTool, s.handleSearchJobs)

	statsTool := mcp.NewTool("company_stats",
		mcp.WithDescription("Get a company's hiring aggregate: total, active, remote, and AI posting counts"),
		mcp.WithString("company",
			mcp.Required(),
			mcp.Description("The company name"),
		),
	)
	mcpServer.AddTool(statsTool, s.handleCompanyStats)

	timelineTool := mcp.NewTool("hiring_timeline",
		mcp.WithDescription("Get a board's archived hiring timeline: open-role counts over time with peak and trough"),
		mcp.WithString("board",
			mcp.Required(),
			mcp.Description("The board slug"),
		),
	)
	mcpServer.AddTool(timelineTool, s.handleHiringTimeline)
}

func (s *Server) handleSearchJobs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := service.JobFilter{
		Company:   request.GetString("company", ""),
		Function:  request.GetString("function", ""),
		Seniority: request.GetString("seniority", ""),
		State:     request.GetString("state", ""),
		Limit:     request.GetInt("limit", 20),
	}
	if remote := request.GetBool("remote", false); remote {
		filter.Remote = &remote
	}
	if ai := request.GetBool("ai", false); ai {
		filter.AIMention = &ai
	}

	jobs, err := s.jobs.Search(ctx, filter)
	if err != nil {
		s.logger.Error("job search failed", slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	total, err := s.jobs.Count(ctx, filter)
	if err != nil {
		total = int64(len(jobs))
	}

	type jobResult struct {
		ID        int64    `json:"id"`
		Title     string   `json:"title"`
		Company   string   `json:"company"`
		Function  string   `json:"function"`
		Seniority string   `json:"seniority"`
		Location  string   `json:"location"`
		Remote    bool     `json:"remote"`
		SalaryMin *float64 `json:"salary_min,omitempty"`
		SalaryMax *float64 `json:"salary_max,omitempty"`
		URL       string   `json:"url"`
	}

	results := make([]jobResult, len(jobs))
	for i, j := range jobs {
		e := j.Enrichment()
		results[i] = jobResult{
			ID:        j.ID(),
			Title:     j.Title(),
			Company:   j.CompanyName(),
			Function:  string(e.Function()),
			Seniority: string(e.Seniority()),
			Location:  j.LocationRaw(),
			Remote:    e.Location().IsRemote(),
			SalaryMin: e.SalaryMin(),
			SalaryMax: e.SalaryMax(),
			URL:       j.SourceURL(),
		}
	}

	payload := map[string]any{"total": total, "jobs": results}
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleCompanyStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("company")
	if err != nil {
		return mcp.NewToolResultError("company is required"), nil
	}

	stats, err := s.jobs.CompanyStats(ctx, name)
	if err != nil {
		s.logger.Error("company stats failed", slog.String("company", name), slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("failed to get company stats: %v", err)), nil
	}

	payload := map[string]any{
		"name":        stats.Company.Name(),
		"industry":    stats.Company.Industry(),
		"url":         stats.Company.URL(),
		"total_jobs":  stats.Company.TotalPostings(),
		"active_jobs": stats.ActiveJobs,
		"remote_jobs": stats.RemoteJobs,
		"ai_jobs":     stats.AIJobs,
		"updated_at":  stats.Company.UpdatedAt(),
	}
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleHiringTimeline(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	board, err := request.RequireString("board")
	if err != nil {
		return mcp.NewToolResultError("board is required"), nil
	}

	if s.timelines == nil {
		return mcp.NewToolResultError("timeline lookup not configured"), nil
	}

	timeline, err := s.timelines.StoredTimeline(ctx, board, history.FrequencyMonthly)
	if err != nil {
		s.logger.Error("timeline lookup failed", slog.String("board", board), slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("failed to get timeline: %v", err)), nil
	}

	type pointResult struct {
		Date      string `json:"date"`
		OpenRoles int    `json:"open_roles"`
	}

	points := timeline.Points()
	series := make([]pointResult, len(points))
	for i, p := range points {
		series[i] = pointResult{Date: p.Date(), OpenRoles: p.OpenRoles()}
	}

	payload := map[string]any{"board": board, "points": series}
	if peak, ok := timeline.Peak(); ok {
		payload["peak"] = pointResult{Date: peak.Date(), OpenRoles: peak.OpenRoles()}
	}
	if trough, ok := timeline.Trough(); ok {
		payload["trough"] = pointResult{Date: trough.Date(), OpenRoles: trough.OpenRoles()}
	}
	if current, ok := timeline.Current(); ok {
		payload["current"] = pointResult{Date: current.Date(), OpenRoles: current.OpenRoles()}
	}

	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// MCPServer returns the underlying MCP server for stdio serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
