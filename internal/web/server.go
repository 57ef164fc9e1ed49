package web

import (
	"embed"
	"net/http"
	"time"

	"github.com/drover-cli/drover/internal/web/jobs"
	"github.com/drover-cli/drover/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed static/*
var staticFS embed.FS

// Server is the HTTP server for the Drover web application.
type Server struct {
	router  chi.Router
	addr    string
	roster  []types.Account
	manager *jobs.Manager
}

// NewServer builds a new Server with middleware and routes configured. The
// roster is the account list loaded at startup; newBatch builds a batch for
// each submitted job.
func NewServer(addr string, roster []types.Account, newBatch jobs.BatchFactory) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		addr:    addr,
		roster:  roster,
		manager: jobs.NewManager(newBatch),
	}

	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.registerRoutes()

	return s
}

// Start begins listening on the configured address.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the chi.Router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}
