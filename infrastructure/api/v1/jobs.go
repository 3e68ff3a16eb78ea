// Package v1 provides the v1 HTTP API routers.
package v1

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fieldworkhq/fieldwork"
	"github.com/fieldworkhq/fieldwork/application/service"
	"github.com/fieldworkhq/fieldwork/domain/job"
	"github.com/fieldworkhq/fieldwork/infrastructure/api/middleware"
)

// JobResponse is the wire shape of one job.
type JobResponse struct {
	ID         int64    `json:"id"`
	Source     string   `json:"source"`
	SourceID   string   `json:"source_id"`
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	URL        string   `json:"url"`
	Location   string   `json:"location"`
	Metro      string   `json:"metro,omitempty"`
	State      string   `json:"state,omitempty"`
	Remote     bool     `json:"remote"`
	Function   string   `json:"function"`
	Seniority  string   `json:"seniority"`
	SalaryMin  *float64 `json:"salary_min,omitempty"`
	SalaryMax  *float64 `json:"salary_max,omitempty"`
	HasAI      bool     `json:"has_ai_mention"`
	AINative   bool     `json:"is_ai_native_role"`
	AITerms    []string `json:"ai_terms,omitempty"`
	Signals    []string `json:"signals,omitempty"`
	Tools      []string `json:"tools,omitempty"`
	DatePosted string   `json:"date_posted,omitempty"`
	Active     bool     `json:"active"`
}

// JobListResponse is the wire shape of a job search result.
type JobListResponse struct {
	Total int64         `json:"total"`
	Jobs  []JobResponse `json:"jobs"`
}

func buildJobResponse(j job.Job) JobResponse {
	e := j.Enrichment()
	loc := e.Location()

	var signals []string
	for _, t := range e.Signals() {
		signals = append(signals, t.ID())
	}
	var tools []string
	for _, t := range e.Tools() {
		tools = append(tools, t.ID())
	}

	return JobResponse{
		ID:         j.ID(),
		Source:     j.Source(),
		SourceID:   j.SourceID(),
		Title:      j.Title(),
		Company:    j.CompanyName(),
		URL:        j.SourceURL(),
		Location:   j.LocationRaw(),
		Metro:      loc.Metro(),
		State:      loc.State(),
		Remote:     loc.IsRemote(),
		Function:   string(e.Function()),
		Seniority:  string(e.Seniority()),
		SalaryMin:  e.SalaryMin(),
		SalaryMax:  e.SalaryMax(),
		HasAI:      e.HasAIMention(),
		AINative:   e.IsAINativeRole(),
		AITerms:    e.AITerms(),
		Signals:    signals,
		Tools:      tools,
		DatePosted: e.DatePosted(),
		Active:     j.Active(),
	}
}

// JobsRouter handles job query endpoints.
type JobsRouter struct {
	client *fieldwork.Client
	logger *slog.Logger
}

// NewJobsRouter creates a new JobsRouter.
func NewJobsRouter(client *fieldwork.Client) *JobsRouter {
	return &JobsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for job endpoints.
func (r *JobsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Get("/{id}", r.Get)

	return router
}

// List handles GET /api/v1/jobs.
func (r *JobsRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	filter := buildJobFilter(req)

	jobs, err := r.client.Jobs.Search(ctx, filter)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	total, err := r.client.Jobs.Count(ctx, filter)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	response := JobListResponse{Total: total, Jobs: make([]JobResponse, len(jobs))}
	for i, j := range jobs {
		response.Jobs[i] = buildJobResponse(j)
	}
	middleware.WriteJSON(w, http.StatusOK, response)
}

// Get handles GET /api/v1/jobs/{id}.
func (r *JobsRouter) Get(w http.ResponseWriter, req *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		middleware.WriteBadRequest(w, "invalid job id")
		return
	}

	j, err := r.client.Jobs.Get(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, buildJobResponse(j))
}

func buildJobFilter(req *http.Request) service.JobFilter {
	q := req.URL.Query()

	filter := service.JobFilter{
		Company:   q.Get("company"),
		Function:  q.Get("function"),
		Seniority: q.Get("seniority"),
		State:     q.Get("state"),
		Metro:     q.Get("metro"),
		Limit:     50,
	}
	if v := q.Get("remote"); v != "" {
		remote := v == "true" || v == "1"
		filter.Remote = &remote
	}
	if v := q.Get("ai"); v != "" {
		ai := v == "true" || v == "1"
		filter.AIMention = &ai
	}
	if v := q.Get("active"); v == "true" || v == "1" {
		filter.ActiveOnly = true
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
		filter.Offset = v
	}
	return filter
}
