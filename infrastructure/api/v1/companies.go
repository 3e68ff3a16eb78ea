package v1

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fieldworkhq/fieldwork"
	"github.com/fieldworkhq/fieldwork/infrastructure/api/middleware"
)

// CompanyResponse is the wire shape of one company aggregate.
type CompanyResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Industry   string    `json:"industry,omitempty"`
	IsTech     bool      `json:"is_tech"`
	TotalJobs  int       `json:"total_job_postings"`
	URL        string    `json:"url,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
	ActiveJobs *int64    `json:"active_jobs,omitempty"`
	RemoteJobs *int64    `json:"remote_jobs,omitempty"`
	AIJobs     *int64    `json:"ai_jobs,omitempty"`
}

// CompaniesRouter handles company query endpoints.
type CompaniesRouter struct {
	client *fieldwork.Client
	logger *slog.Logger
}

// NewCompaniesRouter creates a new CompaniesRouter.
func NewCompaniesRouter(client *fieldwork.Client) *CompaniesRouter {
	return &CompaniesRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for company endpoints.
func (r *CompaniesRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Get("/{name}", r.Get)

	return router
}

// List handles GET /api/v1/companies.
func (r *CompaniesRouter) List(w http.ResponseWriter, req *http.Request) {
	companies, err := r.client.Jobs.Companies(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	response := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		response[i] = CompanyResponse{
			ID:        c.ID(),
			Name:      c.Name(),
			Industry:  c.Industry(),
			IsTech:    c.IsTech(),
			TotalJobs: c.TotalPostings(),
			URL:       c.URL(),
			UpdatedAt: c.UpdatedAt(),
		}
	}
	middleware.WriteJSON(w, http.StatusOK, response)
}

// Get handles GET /api/v1/companies/{name}, returning the aggregate plus
// live counts.
func (r *CompaniesRouter) Get(w http.ResponseWriter, req *http.Request) {
	stats, err := r.client.Jobs.CompanyStats(req.Context(), chi.URLParam(req, "name"))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	c := stats.Company
	response := CompanyResponse{
		ID:         c.ID(),
		Name:       c.Name(),
		Industry:   c.Industry(),
		IsTech:     c.IsTech(),
		TotalJobs:  c.TotalPostings(),
		URL:        c.URL(),
		UpdatedAt:  c.UpdatedAt(),
		ActiveJobs: &stats.ActiveJobs,
		RemoteJobs: &stats.RemoteJobs,
		AIJobs:     &stats.AIJobs,
	}
	middleware.WriteJSON(w, http.StatusOK, response)
}
