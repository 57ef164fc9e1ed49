package web

import (
	"encoding/json"
	"io/fs"
	"net/http"

	"github.com/drover-cli/drover/internal/web/api"
	"github.com/drover-cli/drover/internal/web/pages"
	"github.com/go-chi/chi/v5"
)

// registerRoutes mounts all route groups on the server's router.
func (s *Server) registerRoutes() {
	pageHandlers := pages.NewPageHandlers(s.manager, s.roster)
	apiHandlers := api.NewHandlers(s.manager, s.roster)

	// Page routes
	s.router.Get("/", pageHandlers.Index)
	s.router.Get("/batches", pageHandlers.BatchList)
	s.router.Get("/batches/{id}", pageHandlers.BatchDetail)

	// Health check
	s.router.Get("/health", s.handleHealth)

	// REST API
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/batches", apiHandlers.CreateBatch)
		r.Get("/batches", apiHandlers.ListBatches)
		r.Get("/batches/{id}", apiHandlers.GetBatch)
		r.Get("/batches/{id}/report", apiHandlers.GetBatchReport)
		r.Delete("/batches/{id}", apiHandlers.DeleteBatch)
	})

	// Embedded static files
	staticSub, _ := fs.Sub(staticFS, "static")
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
