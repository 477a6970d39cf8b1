// Package httpapi exposes the maintenance tracker over a JSON HTTP API.
package httpapi

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/albertocester96/programma-manutenzioni/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server wires the entity handlers onto a chi router.
type Server struct {
	Maintenances service.MaintenanceService
	Equipment    service.EquipmentService
	Categories   service.CategoryService

	// DB is pinged by the connection check endpoint; optional.
	DB     *sql.DB
	Logger *slog.Logger
}

// Router builds the full API route tree.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if s.Logger != nil {
		r.Use(requestLogger(s.Logger))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", s.ping)
		r.Route("/maintenances", NewMaintenanceHandler(s.Maintenances).Routes)
		r.Route("/equipment", NewEquipmentHandler(s.Equipment, s.Maintenances).Routes)
		r.Route("/categories", NewCategoryHandler(s.Categories).Routes)
	})

	return r
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	if s.DB != nil {
		if err := s.DB.PingContext(r.Context()); err != nil {
			writeErr(w, http.StatusServiceUnavailable, "database unreachable: "+err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// requestLogger logs one line per request with method, path, status and
// duration.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("http_request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
