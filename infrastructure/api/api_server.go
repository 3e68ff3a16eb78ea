package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fieldworkhq/fieldwork"
	apimiddleware "github.com/fieldworkhq/fieldwork/infrastructure/api/middleware"
	v1 "github.com/fieldworkhq/fieldwork/infrastructure/api/v1"
	mcpinternal "github.com/fieldworkhq/fieldwork/internal/mcp"
)

// APIServer provides an HTTP API backed by a fieldwork Client.
type APIServer struct {
	client *fieldwork.Client
	server *Server
	logger *slog.Logger
}

// NewAPIServer creates a new APIServer wired to the given fieldwork Client.
func NewAPIServer(client *fieldwork.Client) *APIServer {
	return &APIServer{
		client: client,
		logger: client.Logger(),
	}
}

// mountRoutes wires up all v1 API routes on the given router.
func (a *APIServer) mountRoutes(router chi.Router) {
	jobsRouter := v1.NewJobsRouter(a.client)
	companiesRouter := v1.NewCompaniesRouter(a.client)
	historyRouter := v1.NewHistoryRouter(a.client)

	router.Use(apimiddleware.Logging(a.logger))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(60 * time.Second))

		r.Mount("/jobs", jobsRouter.Routes())
		r.Mount("/companies", companiesRouter.Routes())
	})

	// History rebuilds walk the public archive and routinely outlive the
	// standard request timeout, so the group carries a longer one.
	router.Route("/api/v1/history", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(10 * time.Minute))
		r.Mount("/", historyRouter.Routes())
	})

	// MCP endpoint. No timeout middleware: MCP uses streaming responses,
	// which chi's Timeout middleware breaks by wrapping the ResponseWriter.
	mcpSrv := mcpinternal.NewServer(a.client.Jobs, a.client.History, "1.0.0", a.logger)
	httpHandler := server.NewStreamableHTTPServer(mcpSrv.MCPServer())
	router.Mount("/mcp", httpHandler)
}

// ListenAndServe starts the HTTP server on the given address.
func (a *APIServer) ListenAndServe(addr string) error {
	srv := NewServer(addr, a.logger)
	a.server = &srv

	a.mountRoutes(srv.Router())
	return srv.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// Handler returns a fully-routed handler for use with custom servers.
func (a *APIServer) Handler() http.Handler {
	router := chi.NewRouter()
	a.mountRoutes(router)
	return router
}
