package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dgallion1/elementnamer/internal/config"
	"github.com/dgallion1/elementnamer/internal/table"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the HTTP API server for elementnamer.
type Server struct {
	router chi.Router
	table  *table.Table
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server. The table is shared
// read-only across requests.
func NewServer(tbl *table.Table, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		table: tbl,
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	if s.cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Get("/api/decompose", s.handleDecompose)
		r.Get("/api/decompose/{word}", s.handleDecompose)
		r.Get("/api/elements", s.handleListElements)
		r.Get("/api/elements/{symbol}", s.handleGetElement)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"elements": s.table.Len(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
