package v1

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fieldworkhq/fieldwork"
	"github.com/fieldworkhq/fieldwork/application/service"
	"github.com/fieldworkhq/fieldwork/domain/history"
	"github.com/fieldworkhq/fieldwork/infrastructure/api/middleware"
)

// TimelinePointResponse is the wire shape of one timeline data point.
type TimelinePointResponse struct {
	Date        string         `json:"date"`
	Timestamp   string         `json:"timestamp"`
	OpenRoles   int            `json:"open_roles"`
	Format      string         `json:"format"`
	Departments map[string]int `json:"departments,omitempty"`
}

// TimelineResponse is the wire shape of a board hiring timeline.
type TimelineResponse struct {
	Board   string                  `json:"board"`
	Points  []TimelinePointResponse `json:"points"`
	Peak    *TimelinePointResponse  `json:"peak,omitempty"`
	Trough  *TimelinePointResponse  `json:"trough,omitempty"`
	Current *TimelinePointResponse  `json:"current,omitempty"`
}

func buildTimelineResponse(t history.Timeline) TimelineResponse {
	points := t.Points()
	response := TimelineResponse{
		Board:  t.Board(),
		Points: make([]TimelinePointResponse, len(points)),
	}
	for i, p := range points {
		response.Points[i] = buildPointResponse(p)
	}
	if peak, ok := t.Peak(); ok {
		r := buildPointResponse(peak)
		response.Peak = &r
	}
	if trough, ok := t.Trough(); ok {
		r := buildPointResponse(trough)
		response.Trough = &r
	}
	if current, ok := t.Current(); ok {
		r := buildPointResponse(current)
		response.Current = &r
	}
	return response
}

func buildPointResponse(p history.TimelinePoint) TimelinePointResponse {
	return TimelinePointResponse{
		Date:        p.Date(),
		Timestamp:   p.Timestamp(),
		OpenRoles:   p.OpenRoles(),
		Format:      string(p.Format()),
		Departments: p.Departments(),
	}
}

// HistoryRouter handles board hiring-history endpoints.
type HistoryRouter struct {
	client *fieldwork.Client
	logger *slog.Logger
}

// NewHistoryRouter creates a new HistoryRouter.
func NewHistoryRouter(client *fieldwork.Client) *HistoryRouter {
	return &HistoryRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for history endpoints.
func (r *HistoryRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{board}", r.Get)
	router.Post("/{board}", r.Rebuild)

	return router
}

// Get handles GET /api/v1/history/{board}, returning the stored timeline.
func (r *HistoryRouter) Get(w http.ResponseWriter, req *http.Request) {
	board := chi.URLParam(req, "board")

	timeline, err := r.client.History.StoredTimeline(req.Context(), board, history.FrequencyMonthly)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, buildTimelineResponse(timeline))
}

// Rebuild handles POST /api/v1/history/{board}, fetching archive snapshots
// and rebuilding the stored timeline. This walks the public archive with a
// polite delay, so it can take a while for boards with a long history.
func (r *HistoryRouter) Rebuild(w http.ResponseWriter, req *http.Request) {
	board := chi.URLParam(req, "board")
	q := req.URL.Query()

	opts := service.HistoryOptions{
		Frequency: history.ParseFrequency(q.Get("frequency")),
	}
	if v := q.Get("start"); v != "" {
		start, err := time.Parse("2006-01-02", v)
		if err != nil {
			middleware.WriteBadRequest(w, "invalid start date, expected YYYY-MM-DD")
			return
		}
		opts.Start = start
	}
	if v := q.Get("end"); v != "" {
		end, err := time.Parse("2006-01-02", v)
		if err != nil {
			middleware.WriteBadRequest(w, "invalid end date, expected YYYY-MM-DD")
			return
		}
		opts.End = end
	}

	timeline, err := r.client.History.BuildTimeline(req.Context(), board, opts)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, buildTimelineResponse(timeline))
}
